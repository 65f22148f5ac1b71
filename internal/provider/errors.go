package provider

import (
	"errors"

	stripe "github.com/stripe/stripe-go/v72"

	"marketpay/internal/apperr"
)

// translate converts the SDK's duck-typed errors into the taxonomy.
// resource_missing means the referenced object does not exist upstream;
// everything else from the provider passes its message through.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var se *stripe.Error
	if errors.As(err, &se) {
		if se.Code == stripe.ErrorCodeResourceMissing {
			return apperr.NotFound("%s", se.Msg).WithCode(string(se.Code))
		}
		return apperr.Upstream("%s", se.Msg).
			WithCode(string(se.Code)).
			WithDeclineCode(string(se.DeclineCode))
	}
	return apperr.Upstream("%s", err.Error())
}

func translateSignature(err error) error {
	return apperr.Signature("webhook signature verification failed: %v", err)
}
