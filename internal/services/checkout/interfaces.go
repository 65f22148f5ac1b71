package checkout

import "context"

// Service creates fee-split charges against connected accounts,
// either through hosted checkout sessions or direct payment intents.
type Service interface {
	CreateCheckoutSession(ctx context.Context, in SessionInput) (*SessionResult, error)
	CreatePaymentIntent(ctx context.Context, in IntentInput) (*IntentResult, error)
	ConfirmPayment(ctx context.Context, paymentIntentID, paymentMethodID string) (*ConfirmResult, error)
	CheckStatus(ctx context.Context, sessionID, paymentIntentID string) (*StatusResult, error)
}
