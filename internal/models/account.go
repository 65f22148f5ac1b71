package models

import "time"

// AccountRecord is the local view of a seller's connected account,
// keyed by the internal user id. StripeAccountID is immutable once set;
// the capability flags are mutated only by the creation response and by
// webhook reconciliation.
type AccountRecord struct {
	UID              string     `json:"uid"`
	Email            string     `json:"email"`
	Name             string     `json:"name,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	StripeAccountID  string     `json:"stripe_account_id"`
	ChargesEnabled   bool       `json:"charges_enabled"`
	DetailsSubmitted bool       `json:"details_submitted"`
	PayoutsEnabled   bool       `json:"payouts_enabled"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	LastUpdated      time.Time  `json:"last_updated"`
	DisconnectedAt   *time.Time `json:"disconnected_at,omitempty"`
}

// AccountStatus mirrors the three capability flags reported to clients.
type AccountStatus struct {
	ChargesEnabled   bool `json:"charges_enabled"`
	DetailsSubmitted bool `json:"details_submitted"`
	PayoutsEnabled   bool `json:"payouts_enabled"`
}

// Requirements is the provider's outstanding-requirements snapshot for
// a connected account.
type Requirements struct {
	CurrentlyDue        []string `json:"currently_due"`
	EventuallyDue       []string `json:"eventually_due,omitempty"`
	PastDue             []string `json:"past_due"`
	PendingVerification []string `json:"pending_verification,omitempty"`
	DisabledReason      string   `json:"disabled_reason,omitempty"`
	CurrentDeadline     int64    `json:"current_deadline,omitempty"`
}
