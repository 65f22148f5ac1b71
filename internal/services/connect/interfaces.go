package connect

import "context"

// Service manages connected accounts through the hosted onboarding flow.
type Service interface {
	CreateAccount(ctx context.Context, in CreateAccountInput) (*CreateAccountResult, error)
	GetStatus(ctx context.Context, stripeAccountID string) (*StatusResult, error)
	RefreshOnboardingLink(ctx context.Context, uid string) (*LinkResult, error)
}
