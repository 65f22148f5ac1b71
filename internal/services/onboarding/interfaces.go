package onboarding

import "context"

// Service drives the custom (API-based) onboarding flow. Steps only
// move forward: after every update the outstanding step is recomputed
// from the provider's currently-due requirements.
type Service interface {
	CreateCustomAccount(ctx context.Context, in CreateCustomAccountInput) (*CustomAccountResult, error)
	UpdateBasicInfo(ctx context.Context, accountID string, in BasicInfoInput) (*StepResult, error)
	UpdatePersonalInfo(ctx context.Context, accountID string, in PersonalInfoInput) (*StepResult, error)
	AddBankAccount(ctx context.Context, accountID string, in BankAccountInput) (*StepResult, error)
	AcceptTerms(ctx context.Context, accountID string, in TermsInput) (*StepResult, error)
	UploadDocument(ctx context.Context, accountID string, in DocumentInput) (*StepResult, error)
	GetRequirements(ctx context.Context, accountID string) (*RequirementsResult, error)
	GetProgress(ctx context.Context, accountID string) (*ProgressResult, error)
}
