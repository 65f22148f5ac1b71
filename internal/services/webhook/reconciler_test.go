package webhook

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	stripe "github.com/stripe/stripe-go/v72"

	"marketpay/internal/apperr"
	"marketpay/internal/models"
	"marketpay/internal/provider/providertest"
	"marketpay/internal/store"
)

func newTestReconciler(t *testing.T) (*Reconciler, *providertest.MockClient, *store.MemoryDirectory, *store.MemoryPaymentLog) {
	t.Helper()
	mockClient := new(providertest.MockClient)
	directory := store.NewMemoryDirectory()
	payments := store.NewMemoryPaymentLog()
	return NewReconciler(mockClient, directory, payments), mockClient, directory, payments
}

func accountEvent(t *testing.T, eventType, accountID string, chargesEnabled, detailsSubmitted, payoutsEnabled bool) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"id":                accountID,
		"object":            "account",
		"charges_enabled":   chargesEnabled,
		"details_submitted": detailsSubmitted,
		"payouts_enabled":   payoutsEnabled,
	})
	assert.NoError(t, err)
	return stripe.Event{
		Type:    eventType,
		Account: accountID,
		Data:    &stripe.EventData{Raw: raw},
	}
}

func TestHandle_SignatureFailure(t *testing.T) {
	r, mockClient, _, _ := newTestReconciler(t)
	mockClient.On("ConstructEvent", mock.Anything, "bad-sig").
		Return(stripe.Event{}, apperr.Signature("signature verification failed"))

	err := r.Handle(context.Background(), []byte(`{"type":"account.updated"}`), "bad-sig")

	assert.True(t, apperr.IsKind(err, apperr.KindSignature))
}

func TestHandle_AccountUpdated(t *testing.T) {
	ctx := context.Background()

	t.Run("copies capability flags onto the record", func(t *testing.T) {
		r, mockClient, directory, _ := newTestReconciler(t)
		_ = directory.Put(ctx, &models.AccountRecord{
			UID:             "user_1",
			StripeAccountID: "acct_1",
			IsActive:        true,
		})
		event := accountEvent(t, EventAccountUpdated, "acct_1", true, true, true)
		mockClient.On("ConstructEvent", mock.Anything, "sig").Return(event, nil)

		err := r.Handle(ctx, []byte(`{}`), "sig")
		assert.NoError(t, err)

		rec, err := directory.FindByAccountID(ctx, "acct_1")
		assert.NoError(t, err)
		assert.True(t, rec.ChargesEnabled)
		assert.True(t, rec.DetailsSubmitted)
		assert.True(t, rec.PayoutsEnabled)
		assert.False(t, rec.LastUpdated.IsZero())
	})

	t.Run("redelivery is idempotent", func(t *testing.T) {
		r, mockClient, directory, _ := newTestReconciler(t)
		_ = directory.Put(ctx, &models.AccountRecord{UID: "user_1", StripeAccountID: "acct_1"})
		event := accountEvent(t, EventAccountUpdated, "acct_1", true, true, false)
		mockClient.On("ConstructEvent", mock.Anything, "sig").Return(event, nil)

		assert.NoError(t, r.Handle(ctx, []byte(`{}`), "sig"))
		assert.NoError(t, r.Handle(ctx, []byte(`{}`), "sig"))

		rec, _ := directory.FindByAccountID(ctx, "acct_1")
		assert.True(t, rec.ChargesEnabled)
		assert.False(t, rec.PayoutsEnabled)
	})

	t.Run("unknown account is skipped, not failed", func(t *testing.T) {
		r, mockClient, _, _ := newTestReconciler(t)
		event := accountEvent(t, EventAccountUpdated, "acct_stranger", true, true, true)
		mockClient.On("ConstructEvent", mock.Anything, "sig").Return(event, nil)

		assert.NoError(t, r.Handle(ctx, []byte(`{}`), "sig"))
	})
}

func TestHandle_Deauthorized(t *testing.T) {
	ctx := context.Background()
	r, mockClient, directory, _ := newTestReconciler(t)
	_ = directory.Put(ctx, &models.AccountRecord{
		UID:             "user_1",
		StripeAccountID: "acct_1",
		IsActive:        true,
	})
	event := stripe.Event{
		Type:    EventApplicationDeauthorized,
		Account: "acct_1",
		Data:    &stripe.EventData{Raw: json.RawMessage(`{"id":"ca_app"}`)},
	}
	mockClient.On("ConstructEvent", mock.Anything, "sig").Return(event, nil)

	err := r.Handle(ctx, []byte(`{}`), "sig")
	assert.NoError(t, err)

	rec, err := directory.FindByAccountID(ctx, "acct_1")
	assert.NoError(t, err)
	assert.False(t, rec.IsActive)
	if assert.NotNil(t, rec.DisconnectedAt) {
		assert.WithinDuration(t, time.Now().UTC(), *rec.DisconnectedAt, time.Minute)
	}
}

func TestHandle_UnknownEventType(t *testing.T) {
	r, mockClient, _, _ := newTestReconciler(t)
	mockClient.On("ConstructEvent", mock.Anything, "sig").Return(stripe.Event{
		Type: "balance.available",
		Data: &stripe.EventData{Raw: json.RawMessage(`{}`)},
	}, nil)

	assert.NoError(t, r.Handle(context.Background(), []byte(`{}`), "sig"))
}

func TestHandle_LogOnlyEvents(t *testing.T) {
	for _, eventType := range []string{
		EventApplicationAuthorized,
		EventExternalAccountCreated,
		EventCapabilityUpdated,
		EventPersonUpdated,
	} {
		t.Run(eventType, func(t *testing.T) {
			r, mockClient, _, _ := newTestReconciler(t)
			mockClient.On("ConstructEvent", mock.Anything, "sig").Return(stripe.Event{
				Type:    eventType,
				Account: "acct_1",
				Data:    &stripe.EventData{Raw: json.RawMessage(`{"id":"acct_1"}`)},
			}, nil)

			assert.NoError(t, r.Handle(context.Background(), []byte(`{}`), "sig"))
		})
	}
}

func TestHandle_CheckoutCompleted(t *testing.T) {
	ctx := context.Background()

	sessionEvent := func(t *testing.T, metadata map[string]string, withIntent bool) stripe.Event {
		t.Helper()
		payload := map[string]interface{}{
			"id":             "cs_done",
			"object":         "checkout.session",
			"amount_total":   9900,
			"currency":       "brl",
			"payment_status": "paid",
			"metadata":       metadata,
			"customer_details": map[string]interface{}{
				"email": "buyer@example.com",
			},
		}
		if withIntent {
			payload["payment_intent"] = "pi_done"
		}
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		return stripe.Event{
			Type: EventCheckoutCompleted,
			Data: &stripe.EventData{Raw: raw},
		}
	}

	t.Run("records the payment", func(t *testing.T) {
		r, mockClient, _, payments := newTestReconciler(t)
		event := sessionEvent(t, map[string]string{
			"productId":       "prod_001",
			"stripeAccountId": "acct_1",
			"platformFee":     "990",
		}, true)
		mockClient.On("ConstructEvent", mock.Anything, "sig").Return(event, nil)
		mockClient.On("GetAccount", mock.Anything, "acct_1").Return(&stripe.Account{ID: "acct_1"}, nil)
		mockClient.On("GetPaymentIntent", mock.Anything, "pi_done").
			Return(&stripe.PaymentIntent{ID: "pi_done", Status: stripe.PaymentIntentStatusSucceeded}, nil)

		err := r.Handle(ctx, []byte(`{}`), "sig")
		assert.NoError(t, err)

		rec, err := payments.Get(ctx, "pi_done")
		assert.NoError(t, err)
		assert.Equal(t, "cs_done", rec.SessionID)
		assert.Equal(t, int64(9900), rec.Amount)
		assert.Equal(t, int64(990), rec.PlatformFee)
		assert.Equal(t, "succeeded", rec.Status)
		assert.Equal(t, "buyer@example.com", rec.CustomerEmail)
		assert.Equal(t, "acct_1", rec.SellerAccountID)
	})

	t.Run("incomplete metadata is skipped", func(t *testing.T) {
		r, mockClient, _, payments := newTestReconciler(t)
		event := sessionEvent(t, map[string]string{"productId": "prod_001"}, true)
		mockClient.On("ConstructEvent", mock.Anything, "sig").Return(event, nil)

		assert.NoError(t, r.Handle(ctx, []byte(`{}`), "sig"))

		records, _ := payments.List(ctx)
		assert.Empty(t, records)
		mockClient.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
	})

	t.Run("unresolvable seller is skipped", func(t *testing.T) {
		r, mockClient, _, payments := newTestReconciler(t)
		event := sessionEvent(t, map[string]string{
			"productId":       "prod_001",
			"stripeAccountId": "acct_gone",
		}, false)
		mockClient.On("ConstructEvent", mock.Anything, "sig").Return(event, nil)
		mockClient.On("GetAccount", mock.Anything, "acct_gone").
			Return(nil, apperr.NotFound("no such account"))

		assert.NoError(t, r.Handle(ctx, []byte(`{}`), "sig"))

		records, _ := payments.List(ctx)
		assert.Empty(t, records)
	})
}
