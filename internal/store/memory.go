package store

import (
	"context"
	"sync"

	"marketpay/internal/models"
)

// MemoryDirectory is a process-local AccountDirectory. Writes are
// last-write-wins; the mutex only guards the map structure itself.
type MemoryDirectory struct {
	mu      sync.RWMutex
	records map[string]*models.AccountRecord
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{records: make(map[string]*models.AccountRecord)}
}

func (d *MemoryDirectory) Put(_ context.Context, rec *models.AccountRecord) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	cp := *rec
	d.records[rec.UID] = &cp
	return nil
}

func (d *MemoryDirectory) Get(_ context.Context, uid string) (*models.AccountRecord, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rec, ok := d.records[uid]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (d *MemoryDirectory) FindByAccountID(_ context.Context, accountID string) (*models.AccountRecord, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, rec := range d.records {
		if rec.StripeAccountID == accountID {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// MemorySessions is a process-local OnboardingSessions store.
type MemorySessions struct {
	mu       sync.RWMutex
	sessions map[string]*models.OnboardingSession
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{sessions: make(map[string]*models.OnboardingSession)}
}

func (s *MemorySessions) Put(_ context.Context, session *models.OnboardingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	s.sessions[session.UID] = &cp
	return nil
}

func (s *MemorySessions) Get(_ context.Context, uid string) (*models.OnboardingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[uid]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *session
	return &cp, nil
}

func (s *MemorySessions) FindByAccountID(_ context.Context, accountID string) (*models.OnboardingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, session := range s.sessions {
		if session.AccountID == accountID {
			cp := *session
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// MemoryCatalog is a process-local ProductCatalog. List preserves
// insertion order.
type MemoryCatalog struct {
	mu       sync.RWMutex
	order    []string
	products map[string]*models.Product
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{products: make(map[string]*models.Product)}
}

func (c *MemoryCatalog) Add(_ context.Context, p *models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.products[p.ID]; !exists {
		c.order = append(c.order, p.ID)
	}
	cp := *p
	c.products[p.ID] = &cp
	return nil
}

func (c *MemoryCatalog) Get(_ context.Context, id string) (*models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (c *MemoryCatalog) List(_ context.Context) ([]*models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*models.Product, 0, len(c.order))
	for _, id := range c.order {
		cp := *c.products[id]
		out = append(out, &cp)
	}
	return out, nil
}

// MemoryPaymentLog is a process-local PaymentLog.
type MemoryPaymentLog struct {
	mu      sync.RWMutex
	records map[string]*models.PaymentRecord
}

func NewMemoryPaymentLog() *MemoryPaymentLog {
	return &MemoryPaymentLog{records: make(map[string]*models.PaymentRecord)}
}

func (l *MemoryPaymentLog) Record(_ context.Context, rec *models.PaymentRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := *rec
	l.records[rec.PaymentIntentID] = &cp
	return nil
}

func (l *MemoryPaymentLog) Get(_ context.Context, paymentIntentID string) (*models.PaymentRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, ok := l.records[paymentIntentID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (l *MemoryPaymentLog) List(_ context.Context) ([]*models.PaymentRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*models.PaymentRecord, 0, len(l.records))
	for _, rec := range l.records {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}
