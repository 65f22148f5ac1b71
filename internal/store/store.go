// Package store holds the injected state stores. The in-memory
// implementations are the default; Redis-backed variants of the account
// directory and payment log can be swapped in without touching the
// services that consume them.
package store

import (
	"context"
	"errors"

	"marketpay/internal/models"
)

// ErrNotFound is returned when a key has no record.
var ErrNotFound = errors.New("record not found")

// AccountDirectory maps internal user ids to connected-account records.
type AccountDirectory interface {
	Put(ctx context.Context, rec *models.AccountRecord) error
	Get(ctx context.Context, uid string) (*models.AccountRecord, error)
	FindByAccountID(ctx context.Context, accountID string) (*models.AccountRecord, error)
}

// OnboardingSessions tracks custom-flow onboarding state per user.
type OnboardingSessions interface {
	Put(ctx context.Context, session *models.OnboardingSession) error
	Get(ctx context.Context, uid string) (*models.OnboardingSession, error)
	FindByAccountID(ctx context.Context, accountID string) (*models.OnboardingSession, error)
}

// ProductCatalog is the purchasable-items list.
type ProductCatalog interface {
	Add(ctx context.Context, p *models.Product) error
	Get(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
}

// PaymentLog records completed payments, keyed by payment intent id.
type PaymentLog interface {
	Record(ctx context.Context, rec *models.PaymentRecord) error
	Get(ctx context.Context, paymentIntentID string) (*models.PaymentRecord, error)
	List(ctx context.Context) ([]*models.PaymentRecord, error)
}
