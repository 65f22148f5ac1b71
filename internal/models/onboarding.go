package models

import "time"

// Step is a stage of the custom (API-driven) onboarding flow.
type Step string

const (
	StepBasicInfo       Step = "basic_info"
	StepPersonalInfo    Step = "personal_info"
	StepBankAccount     Step = "bank_account"
	StepTermsAcceptance Step = "terms_acceptance"
	StepComplete        Step = "complete"
)

// StepOrder is the forward-only sequence of onboarding steps.
var StepOrder = []Step{StepBasicInfo, StepPersonalInfo, StepBankAccount, StepTermsAcceptance}

// OnboardingSession tracks a user's progress through the custom flow.
// CurrentStep is derived from the provider's currently-due requirement
// list, never from client-asserted progress.
type OnboardingSession struct {
	UID         string    `json:"uid"`
	AccountID   string    `json:"account_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CurrentStep Step      `json:"current_step"`
	CreatedAt   time.Time `json:"created_at"`
}
