package connect

import (
	"time"

	"marketpay/internal/models"
)

// Config holds the settings the connect service needs.
type Config struct {
	AppURL              string
	DefaultCountry      string
	DefaultBusinessType string
}

// CreateAccountInput is the request to onboard a seller.
type CreateAccountInput struct {
	Email        string `json:"email" validate:"required,email"`
	UID          string `json:"uid" validate:"required"`
	Country      string `json:"country"`
	BusinessType string `json:"business_type"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
}

// CreateAccountResult is the outcome of onboarding a seller.
type CreateAccountResult struct {
	AccountID     string               `json:"accountId"`
	OnboardingURL string               `json:"onboardingUrl"`
	Status        models.AccountStatus `json:"status"`
}

// StatusResult is the live account status read from the provider.
type StatusResult struct {
	AccountID          string               `json:"accountId"`
	Status             models.AccountStatus `json:"status"`
	Requirements       models.Requirements  `json:"requirements"`
	AccountType        string               `json:"account_type"`
	BusinessType       string               `json:"business_type"`
	Email              string               `json:"email"`
	Country            string               `json:"country"`
	Created            time.Time            `json:"created"`
	CanReceivePayments bool                 `json:"canReceivePayments"`
	DashboardURL       string               `json:"dashboardUrl"`
}

// LinkResult carries a fresh onboarding link.
type LinkResult struct {
	AccountID     string `json:"accountId"`
	OnboardingURL string `json:"onboardingUrl"`
}
