// Package webhook applies the provider's asynchronous events to the
// account directory and the payment log. Events arrive decoupled from
// any request/response cycle; the provider retries on non-2xx, so no
// internal retry happens here.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	stripe "github.com/stripe/stripe-go/v72"

	"marketpay/internal/apperr"
	"marketpay/internal/models"
	"marketpay/internal/provider"
	"marketpay/internal/store"
)

// Event types the reconciler dispatches on.
const (
	EventAccountUpdated          = "account.updated"
	EventApplicationAuthorized   = "account.application.authorized"
	EventApplicationDeauthorized = "account.application.deauthorized"
	EventExternalAccountCreated  = "account.external_account.created"
	EventCapabilityUpdated       = "capability.updated"
	EventPersonUpdated           = "person.updated"
	EventCheckoutCompleted       = "checkout.session.completed"
)

// Reconciler verifies and applies webhook events.
type Reconciler struct {
	provider  provider.Client
	directory store.AccountDirectory
	payments  store.PaymentLog
}

// NewReconciler creates a webhook reconciler.
func NewReconciler(p provider.Client, directory store.AccountDirectory, payments store.PaymentLog) *Reconciler {
	return &Reconciler{provider: p, directory: directory, payments: payments}
}

// Handle verifies the signature over the exact raw bytes received,
// then dispatches by event type. Signature verification happens before
// any parsing of the body. Redelivery is not deduplicated: every
// mutation is last-write-wins on absolute fields.
func (r *Reconciler) Handle(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := r.provider.ConstructEvent(payload, sigHeader)
	if err != nil {
		return err
	}

	log.Printf("received webhook event: %s", event.Type)

	switch event.Type {
	case EventAccountUpdated:
		return r.handleAccountUpdated(ctx, event)
	case EventApplicationDeauthorized:
		return r.handleDeauthorized(ctx, event)
	case EventApplicationAuthorized:
		log.Printf("application authorized for account: %s", eventAccountID(event))
		return nil
	case EventExternalAccountCreated:
		log.Printf("external account added to account: %s", eventAccountID(event))
		return nil
	case EventCapabilityUpdated:
		log.Printf("capability updated for account: %s", eventAccountID(event))
		return nil
	case EventPersonUpdated:
		log.Printf("person updated for account: %s", eventAccountID(event))
		return nil
	case EventCheckoutCompleted:
		return r.handleCheckoutCompleted(ctx, event)
	default:
		log.Printf("unhandled event type: %s", event.Type)
		return nil
	}
}

// handleAccountUpdated copies the three capability flags onto the
// matching directory record. An account with no local record is logged
// and skipped.
func (r *Reconciler) handleAccountUpdated(ctx context.Context, event stripe.Event) error {
	var acct stripe.Account
	if err := json.Unmarshal(event.Data.Raw, &acct); err != nil {
		return apperr.Internal("malformed account.updated payload: %v", err)
	}

	rec, err := r.directory.FindByAccountID(ctx, acct.ID)
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("no user found for account: %s", acct.ID)
		return nil
	}
	if err != nil {
		return err
	}

	wasChargesEnabled := rec.ChargesEnabled
	rec.ChargesEnabled = acct.ChargesEnabled
	rec.DetailsSubmitted = acct.DetailsSubmitted
	rec.PayoutsEnabled = acct.PayoutsEnabled
	rec.LastUpdated = time.Now().UTC()
	if err := r.directory.Put(ctx, rec); err != nil {
		return err
	}

	if acct.ChargesEnabled && !wasChargesEnabled {
		log.Printf("user %s can now receive payments", rec.UID)
	}
	return nil
}

// handleDeauthorized marks the matching record inactive.
func (r *Reconciler) handleDeauthorized(ctx context.Context, event stripe.Event) error {
	accountID := eventAccountID(event)
	log.Printf("application deauthorized for account: %s", accountID)

	rec, err := r.directory.FindByAccountID(ctx, accountID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	rec.IsActive = false
	rec.DisconnectedAt = &now
	return r.directory.Put(ctx, rec)
}

// handleCheckoutCompleted records the completed payment in the payment
// log. Incomplete metadata or an unresolvable seller is logged and
// skipped rather than failed, so the provider does not redeliver a
// payload this process can never apply.
func (r *Reconciler) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return apperr.Internal("malformed checkout.session.completed payload: %v", err)
	}

	productID := sess.Metadata["productId"]
	sellerID := sess.Metadata["stripeAccountId"]
	if productID == "" || sellerID == "" {
		log.Printf("incomplete metadata on checkout session %s", sess.ID)
		return nil
	}

	if _, err := r.provider.GetAccount(ctx, sellerID); err != nil {
		log.Printf("failed to resolve seller account %s: %v", sellerID, err)
		return nil
	}

	rec := &models.PaymentRecord{
		SessionID:       sess.ID,
		Amount:          sess.AmountTotal,
		Currency:        string(sess.Currency),
		SellerAccountID: sellerID,
		ProductID:       productID,
		CreatedAt:       time.Now().UTC(),
	}
	if fee, err := strconv.ParseInt(sess.Metadata["platformFee"], 10, 64); err == nil {
		rec.PlatformFee = fee
	}
	if sess.CustomerDetails != nil {
		rec.CustomerEmail = sess.CustomerDetails.Email
	}

	if sess.PaymentIntent != nil {
		pi, err := r.provider.GetPaymentIntent(ctx, sess.PaymentIntent.ID)
		if err != nil {
			return err
		}
		rec.PaymentIntentID = pi.ID
		rec.Status = string(pi.Status)
	} else {
		rec.PaymentIntentID = sess.ID
		rec.Status = string(sess.PaymentStatus)
	}

	return r.payments.Record(ctx, rec)
}

// eventAccountID returns the connected account an event refers to,
// preferring the event's account field over the payload object id.
func eventAccountID(event stripe.Event) string {
	if event.Account != "" {
		return event.Account
	}
	var obj struct {
		ID      string `json:"id"`
		Account string `json:"account"`
	}
	if err := json.Unmarshal(event.Data.Raw, &obj); err != nil {
		return ""
	}
	if obj.Account != "" {
		return obj.Account
	}
	return obj.ID
}
