// Package provider wraps the Stripe SDK behind a narrow interface.
// It is the single seam where provider error shapes are translated
// into the apperr taxonomy, and the only package that touches
// stripe-go's package-level state.
package provider

import (
	"context"
	"io"

	stripe "github.com/stripe/stripe-go/v72"
)

// Client is the capability surface consumed from the payment provider.
type Client interface {
	CreateAccount(ctx context.Context, params *stripe.AccountParams) (*stripe.Account, error)
	GetAccount(ctx context.Context, accountID string) (*stripe.Account, error)
	UpdateAccount(ctx context.Context, accountID string, params *stripe.AccountParams) (*stripe.Account, error)
	CreateBankAccount(ctx context.Context, params *stripe.BankAccountParams) (*stripe.BankAccount, error)
	CreateAccountLink(ctx context.Context, params *stripe.AccountLinkParams) (*stripe.AccountLink, error)

	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error)

	CreatePaymentIntent(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, paymentIntentID string) (*stripe.PaymentIntent, error)
	ConfirmPaymentIntent(ctx context.Context, paymentIntentID string, params *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error)

	UploadFile(ctx context.Context, accountID, filename, purpose string, file io.Reader) (*stripe.File, error)

	ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error)
}
