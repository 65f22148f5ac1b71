package onboarding

import (
	"io"

	"marketpay/internal/models"
)

// Config holds the settings the onboarding service needs.
type Config struct {
	DefaultCountry      string
	DefaultBusinessType string
	DefaultCurrency     string
}

// CreateCustomAccountInput starts an API-driven onboarding flow.
type CreateCustomAccountInput struct {
	Email        string `json:"email" validate:"required,email"`
	UID          string `json:"uid" validate:"required"`
	Country      string `json:"country"`
	BusinessType string `json:"business_type"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
}

// CustomAccountResult is the outcome of creating a custom account.
type CustomAccountResult struct {
	AccountID    string               `json:"accountId"`
	CurrentStep  models.Step          `json:"currentStep"`
	Requirements models.Requirements  `json:"onboardingSteps"`
	Status       models.AccountStatus `json:"status"`
}

// BasicInfoInput carries the business-profile step fields.
type BasicInfoInput struct {
	BusinessName       string `json:"business_name"`
	BusinessURL        string `json:"business_url"`
	ProductDescription string `json:"product_description"`
	SupportPhone       string `json:"support_phone"`
	SupportEmail       string `json:"support_email"`
	BusinessType       string `json:"business_type"`
}

// PersonalInfoInput carries the individual step fields, including the
// date-of-birth triplet and the national tax id (CPF).
type PersonalInfoInput struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	DOBDay            int64  `json:"dob_day"`
	DOBMonth          int64  `json:"dob_month"`
	DOBYear           int64  `json:"dob_year"`
	TaxID             string `json:"cpf"`
	AddressLine1      string `json:"address_line1"`
	AddressLine2      string `json:"address_line2"`
	AddressCity       string `json:"address_city"`
	AddressState      string `json:"address_state"`
	AddressPostalCode string `json:"address_postal_code"`
}

// BankAccountInput carries the external payout account fields.
type BankAccountInput struct {
	AccountHolderName string `json:"account_holder_name" validate:"required"`
	AccountHolderType string `json:"account_holder_type"`
	RoutingNumber     string `json:"routing_number" validate:"required"`
	AccountNumber     string `json:"account_number" validate:"required"`
}

// TermsInput records the caller context of a terms acceptance.
type TermsInput struct {
	IP        string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}

// DocumentInput binds an uploaded file to a verification slot.
type DocumentInput struct {
	DocumentType string // "identity_front" or "identity_back"
	Filename     string
	Reader       io.Reader
}

// StepResult is returned by every onboarding step operation. NextStep
// is recomputed from the provider's requirements, never taken from the
// caller.
type StepResult struct {
	AccountID         string               `json:"accountId"`
	ExternalAccountID string               `json:"externalAccountId,omitempty"`
	FileID            string               `json:"fileId,omitempty"`
	Requirements      models.Requirements  `json:"requirements"`
	NextStep          models.Step          `json:"nextStep"`
	Status            models.AccountStatus `json:"status"`
}

// RequirementsResult is the live requirements snapshot.
type RequirementsResult struct {
	AccountID    string               `json:"accountId"`
	CurrentStep  models.Step          `json:"currentStep"`
	Requirements models.Requirements  `json:"requirements"`
	Status       models.AccountStatus `json:"status"`
	Capabilities map[string]string    `json:"capabilities,omitempty"`
}

// Progress summarizes onboarding completion.
type Progress struct {
	CompletionPercentage int         `json:"completionPercentage"`
	CompletedSteps       int         `json:"completedSteps"`
	TotalSteps           int         `json:"totalSteps"`
	CurrentStep          models.Step `json:"currentStep"`
}

// ProgressResult is the onboarding progress summary.
type ProgressResult struct {
	AccountID    string               `json:"accountId"`
	Progress     Progress             `json:"progress"`
	Requirements models.Requirements  `json:"requirements"`
	Status       models.AccountStatus `json:"status"`
	IsComplete   bool                 `json:"is_complete"`
}
