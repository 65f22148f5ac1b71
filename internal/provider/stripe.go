package provider

import (
	"context"
	"io"
	"net/http"
	"time"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/account"
	"github.com/stripe/stripe-go/v72/accountlink"
	"github.com/stripe/stripe-go/v72/bankaccount"
	session "github.com/stripe/stripe-go/v72/checkout/session"
	"github.com/stripe/stripe-go/v72/file"
	"github.com/stripe/stripe-go/v72/paymentintent"
	"github.com/stripe/stripe-go/v72/webhook"
)

const requestTimeout = 30 * time.Second

// StripeClient implements Client over the real Stripe SDK.
type StripeClient struct {
	webhookSecret string
}

// NewStripeClient configures the SDK with the API key, the webhook
// secret, and an HTTP client with an explicit timeout instead of the
// transport default.
func NewStripeClient(apiKey, webhookSecret string) *StripeClient {
	httpClient := &http.Client{Timeout: requestTimeout}
	cfg := &stripe.BackendConfig{HTTPClient: httpClient}
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, cfg))
	stripe.SetBackend(stripe.UploadsBackend, stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg))
	stripe.Key = apiKey

	return &StripeClient{webhookSecret: webhookSecret}
}

func (c *StripeClient) CreateAccount(ctx context.Context, params *stripe.AccountParams) (*stripe.Account, error) {
	params.Context = ctx
	acct, err := account.New(params)
	return acct, translate(err)
}

func (c *StripeClient) GetAccount(ctx context.Context, accountID string) (*stripe.Account, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx
	acct, err := account.GetByID(accountID, params)
	return acct, translate(err)
}

func (c *StripeClient) UpdateAccount(ctx context.Context, accountID string, params *stripe.AccountParams) (*stripe.Account, error) {
	params.Context = ctx
	acct, err := account.Update(accountID, params)
	return acct, translate(err)
}

func (c *StripeClient) CreateBankAccount(ctx context.Context, params *stripe.BankAccountParams) (*stripe.BankAccount, error) {
	params.Context = ctx
	ba, err := bankaccount.New(params)
	return ba, translate(err)
}

func (c *StripeClient) CreateAccountLink(ctx context.Context, params *stripe.AccountLinkParams) (*stripe.AccountLink, error) {
	params.Context = ctx
	link, err := accountlink.New(params)
	return link, translate(err)
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx
	sess, err := session.New(params)
	return sess, translate(err)
}

func (c *StripeClient) GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	sess, err := session.Get(sessionID, params)
	return sess, translate(err)
}

func (c *StripeClient) CreatePaymentIntent(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	params.Context = ctx
	pi, err := paymentintent.New(params)
	return pi, translate(err)
}

func (c *StripeClient) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := paymentintent.Get(paymentIntentID, params)
	return pi, translate(err)
}

func (c *StripeClient) ConfirmPaymentIntent(ctx context.Context, paymentIntentID string, params *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error) {
	params.Context = ctx
	pi, err := paymentintent.Confirm(paymentIntentID, params)
	return pi, translate(err)
}

// UploadFile uploads a verification document on behalf of the
// connected account.
func (c *StripeClient) UploadFile(ctx context.Context, accountID, filename, purpose string, reader io.Reader) (*stripe.File, error) {
	params := &stripe.FileParams{
		Purpose:    stripe.String(purpose),
		FileReader: reader,
		Filename:   stripe.String(filename),
	}
	params.Context = ctx
	params.SetStripeAccount(accountID)
	f, err := file.New(params)
	return f, translate(err)
}

// ConstructEvent verifies the webhook signature over the exact raw
// bytes received and parses the event. Must be called before any other
// handling of the payload.
func (c *StripeClient) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
	if err != nil {
		return stripe.Event{}, translateSignature(err)
	}
	return event, nil
}
