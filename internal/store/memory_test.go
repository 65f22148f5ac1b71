package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketpay/internal/models"
)

func TestMemoryDirectory(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDirectory()

	t.Run("missing uid", func(t *testing.T) {
		_, err := d.Get(ctx, "user_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		rec := &models.AccountRecord{UID: "user_1", StripeAccountID: "acct_1", IsActive: true}
		assert.NoError(t, d.Put(ctx, rec))

		got, err := d.Get(ctx, "user_1")
		assert.NoError(t, err)
		assert.Equal(t, "acct_1", got.StripeAccountID)
	})

	t.Run("find by account id", func(t *testing.T) {
		got, err := d.FindByAccountID(ctx, "acct_1")
		assert.NoError(t, err)
		assert.Equal(t, "user_1", got.UID)

		_, err = d.FindByAccountID(ctx, "acct_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		got, _ := d.Get(ctx, "user_1")
		got.IsActive = false

		again, _ := d.Get(ctx, "user_1")
		assert.True(t, again.IsActive)
	})

	t.Run("last write wins", func(t *testing.T) {
		assert.NoError(t, d.Put(ctx, &models.AccountRecord{UID: "user_1", StripeAccountID: "acct_1", ChargesEnabled: true}))
		got, _ := d.Get(ctx, "user_1")
		assert.True(t, got.ChargesEnabled)
	})
}

func TestMemoryCatalog_ListOrder(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalog()

	for i := 1; i <= 3; i++ {
		assert.NoError(t, c.Add(ctx, &models.Product{ID: fmt.Sprintf("prod_%d", i), Name: "P", Price: 100}))
	}
	// Re-adding an existing id keeps its original position.
	assert.NoError(t, c.Add(ctx, &models.Product{ID: "prod_1", Name: "P1", Price: 200}))

	products, err := c.List(ctx)
	assert.NoError(t, err)
	if assert.Len(t, products, 3) {
		assert.Equal(t, "prod_1", products[0].ID)
		assert.Equal(t, int64(200), products[0].Price)
		assert.Equal(t, "prod_3", products[2].ID)
	}
}

func TestMemoryPaymentLog(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryPaymentLog()

	_, err := l.Get(ctx, "pi_missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, l.Record(ctx, &models.PaymentRecord{PaymentIntentID: "pi_1", Amount: 9900}))
	got, err := l.Get(ctx, "pi_1")
	assert.NoError(t, err)
	assert.Equal(t, int64(9900), got.Amount)

	records, err := l.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestMemoryDirectory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	d := NewMemoryDirectory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			uid := fmt.Sprintf("user_%d", i%10)
			_ = d.Put(ctx, &models.AccountRecord{UID: uid, StripeAccountID: "acct_" + uid})
			_, _ = d.Get(ctx, uid)
			_, _ = d.FindByAccountID(ctx, "acct_"+uid)
		}(i)
	}
	wg.Wait()

	got, err := d.Get(ctx, "user_0")
	assert.NoError(t, err)
	assert.Equal(t, "acct_user_0", got.StripeAccountID)
}
