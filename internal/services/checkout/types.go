package checkout

import (
	"time"

	"marketpay/internal/models"
)

// Config holds the settings the checkout service needs.
type Config struct {
	FrontendURL     string
	FeePercent      float64
	DefaultCurrency string
}

// SessionInput is a hosted-checkout request. The product is resolved
// from the catalog by ProductID; when it is not cataloged, the ad-hoc
// Name/Price fields describe it instead.
type SessionInput struct {
	ProductID       string   `json:"productId" validate:"required"`
	StripeAccountID string   `json:"stripeAccountId" validate:"required"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	Description     string   `json:"description"`
	Images          []string `json:"images"`
	Quantity        int64    `json:"quantity"`
	SuccessURL      string   `json:"successUrl"`
	CancelURL       string   `json:"cancelUrl"`
}

// SessionResult is the created hosted-checkout session.
type SessionResult struct {
	SessionID   string    `json:"sessionId"`
	CheckoutURL string    `json:"checkoutUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// IntentInput is a direct payment-intent request. Amount (minor units)
// is required when ProductID is not in the catalog.
type IntentInput struct {
	ProductID       string `json:"productId" validate:"required"`
	StripeAccountID string `json:"stripeAccountId" validate:"required"`
	Quantity        int64  `json:"quantity"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	CustomerID      string `json:"customerId"`
}

// IntentResult carries the client secret for client-side confirmation.
type IntentResult struct {
	ClientSecret    string              `json:"clientSecret"`
	PaymentIntentID string              `json:"paymentIntentId"`
	Amount          int64               `json:"amount"`
	Currency        string              `json:"currency"`
	Fees            models.FeeBreakdown `json:"fees"`
}

// ConfirmResult is the outcome of a confirmation attempt. A
// requires_action status is not terminal: the caller must complete
// client-side authentication and confirm again.
type ConfirmResult struct {
	PaymentIntentID string `json:"paymentIntentId"`
	Status          string `json:"status"`
	RequiresAction  bool   `json:"requiresAction,omitempty"`
	ClientSecret    string `json:"clientSecret,omitempty"`
}

// StatusResult is the normalized status of a session or intent.
type StatusResult struct {
	SessionID       string            `json:"sessionId,omitempty"`
	PaymentIntentID string            `json:"paymentIntentId,omitempty"`
	Status          string            `json:"status"`
	Amount          int64             `json:"amount"`
	Currency        string            `json:"currency"`
	CustomerID      string            `json:"customer,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}
