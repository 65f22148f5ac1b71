package provider

import (
	stripe "github.com/stripe/stripe-go/v72"

	"marketpay/internal/models"
)

// StatusOf extracts the three capability flags from a provider account.
func StatusOf(acct *stripe.Account) models.AccountStatus {
	return models.AccountStatus{
		ChargesEnabled:   acct.ChargesEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
		PayoutsEnabled:   acct.PayoutsEnabled,
	}
}

// RequirementsOf extracts the outstanding-requirements snapshot from a
// provider account. Accounts without requirements yield the zero value.
func RequirementsOf(acct *stripe.Account) models.Requirements {
	if acct.Requirements == nil {
		return models.Requirements{}
	}
	return models.Requirements{
		CurrentlyDue:        acct.Requirements.CurrentlyDue,
		EventuallyDue:       acct.Requirements.EventuallyDue,
		PastDue:             acct.Requirements.PastDue,
		PendingVerification: acct.Requirements.PendingVerification,
		DisabledReason:      string(acct.Requirements.DisabledReason),
		CurrentDeadline:     acct.Requirements.CurrentDeadline,
	}
}
