package connect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	stripe "github.com/stripe/stripe-go/v72"

	"marketpay/internal/apperr"
	"marketpay/internal/models"
	"marketpay/internal/provider/providertest"
	"marketpay/internal/store"
)

func newTestService(t *testing.T) (Service, *providertest.MockClient, *store.MemoryDirectory) {
	t.Helper()
	mockClient := new(providertest.MockClient)
	directory := store.NewMemoryDirectory()
	svc := NewService(mockClient, directory, Config{
		AppURL:              "http://localhost:3000",
		DefaultCountry:      "BR",
		DefaultBusinessType: "individual",
	})
	return svc, mockClient, directory
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects missing email or uid", func(t *testing.T) {
		svc, mockClient, _ := newTestService(t)

		for _, in := range []CreateAccountInput{
			{UID: "user_1"},
			{Email: "seller@example.com"},
			{},
		} {
			_, err := svc.CreateAccount(ctx, in)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		}
		mockClient.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	})

	t.Run("creates account, link, and directory record", func(t *testing.T) {
		svc, mockClient, directory := newTestService(t)
		mockClient.On("CreateAccount", mock.Anything, mock.MatchedBy(func(p *stripe.AccountParams) bool {
			return *p.Type == "standard" && *p.Email == "seller@example.com" &&
				*p.Country == "BR" && p.Metadata["user_id"] == "user_1"
		})).Return(&stripe.Account{ID: "acct_new"}, nil)
		mockClient.On("CreateAccountLink", mock.Anything, mock.MatchedBy(func(p *stripe.AccountLinkParams) bool {
			return *p.Account == "acct_new" && *p.Type == "account_onboarding"
		})).Return(&stripe.AccountLink{URL: "https://connect.example/onboard"}, nil)

		result, err := svc.CreateAccount(ctx, CreateAccountInput{
			Email: "seller@example.com",
			UID:   "user_1",
			Name:  "Seller One",
		})

		assert.NoError(t, err)
		assert.Equal(t, "acct_new", result.AccountID)
		assert.Equal(t, "https://connect.example/onboard", result.OnboardingURL)

		rec, err := directory.Get(ctx, "user_1")
		assert.NoError(t, err)
		assert.Equal(t, "acct_new", rec.StripeAccountID)
		assert.True(t, rec.IsActive)
		mockClient.AssertExpectations(t)
	})

	t.Run("existing uid gets a fresh link, not a second account", func(t *testing.T) {
		svc, mockClient, directory := newTestService(t)
		_ = directory.Put(ctx, &models.AccountRecord{
			UID:             "user_1",
			StripeAccountID: "acct_existing",
			ChargesEnabled:  true,
		})
		mockClient.On("CreateAccountLink", mock.Anything, mock.MatchedBy(func(p *stripe.AccountLinkParams) bool {
			return *p.Account == "acct_existing"
		})).Return(&stripe.AccountLink{URL: "https://connect.example/again"}, nil)

		result, err := svc.CreateAccount(ctx, CreateAccountInput{
			Email: "seller@example.com",
			UID:   "user_1",
		})

		assert.NoError(t, err)
		assert.Equal(t, "acct_existing", result.AccountID)
		assert.True(t, result.Status.ChargesEnabled)
		mockClient.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	})
}

func TestGetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects malformed account id", func(t *testing.T) {
		svc, mockClient, _ := newTestService(t)

		_, err := svc.GetStatus(ctx, "user_1")
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		mockClient.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
	})

	t.Run("reads live from the provider", func(t *testing.T) {
		svc, mockClient, _ := newTestService(t)
		mockClient.On("GetAccount", mock.Anything, "acct_1").Return(&stripe.Account{
			ID:               "acct_1",
			Type:             stripe.AccountTypeStandard,
			ChargesEnabled:   true,
			DetailsSubmitted: true,
			PayoutsEnabled:   false,
			Email:            "seller@example.com",
			Country:          "BR",
			Requirements: &stripe.AccountRequirements{
				CurrentlyDue: []string{"external_account"},
			},
		}, nil)

		result, err := svc.GetStatus(ctx, "acct_1")
		assert.NoError(t, err)
		assert.True(t, result.Status.ChargesEnabled)
		assert.False(t, result.Status.PayoutsEnabled)
		assert.True(t, result.CanReceivePayments)
		assert.Equal(t, []string{"external_account"}, result.Requirements.CurrentlyDue)
	})

	t.Run("missing account maps to not found", func(t *testing.T) {
		svc, mockClient, _ := newTestService(t)
		mockClient.On("GetAccount", mock.Anything, "acct_gone").
			Return(nil, apperr.NotFound("no such account"))

		_, err := svc.GetStatus(ctx, "acct_gone")
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestRefreshOnboardingLink(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown uid", func(t *testing.T) {
		svc, mockClient, _ := newTestService(t)

		_, err := svc.RefreshOnboardingLink(ctx, "user_missing")
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
		mockClient.AssertNotCalled(t, "CreateAccountLink", mock.Anything, mock.Anything)
	})

	t.Run("issues a new link for the recorded account", func(t *testing.T) {
		svc, mockClient, directory := newTestService(t)
		_ = directory.Put(ctx, &models.AccountRecord{UID: "user_1", StripeAccountID: "acct_1"})
		mockClient.On("CreateAccountLink", mock.Anything, mock.MatchedBy(func(p *stripe.AccountLinkParams) bool {
			return *p.Account == "acct_1"
		})).Return(&stripe.AccountLink{URL: "https://connect.example/refresh"}, nil)

		result, err := svc.RefreshOnboardingLink(ctx, "user_1")
		assert.NoError(t, err)
		assert.Equal(t, "acct_1", result.AccountID)
		assert.Equal(t, "https://connect.example/refresh", result.OnboardingURL)
	})
}
