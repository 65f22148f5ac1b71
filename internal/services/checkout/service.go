package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	stripe "github.com/stripe/stripe-go/v72"

	"marketpay/internal/apperr"
	"marketpay/internal/models"
	"marketpay/internal/provider"
	"marketpay/internal/store"
)

type service struct {
	provider provider.Client
	catalog  store.ProductCatalog
	cfg      Config
}

// NewService creates a new checkout service.
func NewService(p provider.Client, catalog store.ProductCatalog, cfg Config) Service {
	return &service{provider: p, catalog: catalog, cfg: cfg}
}

// CreateCheckoutSession creates a hosted checkout session with the
// platform fee routed to the platform and the remainder transferred to
// the connected account.
func (s *service) CreateCheckoutSession(ctx context.Context, in SessionInput) (*SessionResult, error) {
	if in.ProductID == "" || in.StripeAccountID == "" {
		return nil, apperr.Validation("productId and stripeAccountId are required")
	}

	product, err := s.resolveProduct(ctx, in)
	if err != nil {
		return nil, err
	}

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	if err := s.requireChargesEnabled(ctx, in.StripeAccountID); err != nil {
		return nil, err
	}

	fees := SplitFee(product.Price*quantity, s.cfg.FeePercent)

	successURL := in.SuccessURL
	if successURL == "" {
		successURL = s.cfg.FrontendURL + "/Confirmation_Payment"
	}
	cancelURL := in.CancelURL
	if cancelURL == "" {
		cancelURL = s.cfg.FrontendURL + "/Cancel_Payment"
	}

	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name:        stripe.String(product.Name),
		Description: stripe.String(product.Description),
	}
	if len(product.Images) > 0 {
		productData.Images = stripe.StringSlice(product.Images)
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(s.cfg.DefaultCurrency),
					ProductData: productData,
					UnitAmount:  stripe.Int64(product.Price),
				},
				Quantity: stripe.Int64(quantity),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			ApplicationFeeAmount: stripe.Int64(fees.PlatformFeeAmount),
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(in.StripeAccountID),
			},
		},
	}
	params.AddMetadata("productId", product.ID)
	params.AddMetadata("stripeAccountId", in.StripeAccountID)
	params.AddMetadata("platformFee", strconv.FormatInt(fees.PlatformFeeAmount, 10))

	sess, err := s.provider.CreateCheckoutSession(ctx, params)
	if err != nil {
		return nil, err
	}

	return &SessionResult{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
		ExpiresAt:   time.Unix(sess.ExpiresAt, 0).UTC(),
	}, nil
}

// CreatePaymentIntent creates a direct payment intent with the same
// fee split and precondition as the hosted flow. The returned client
// secret is confirmed client-side.
func (s *service) CreatePaymentIntent(ctx context.Context, in IntentInput) (*IntentResult, error) {
	if in.ProductID == "" || in.StripeAccountID == "" {
		return nil, apperr.Validation("productId and stripeAccountId are required")
	}

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	amount := in.Amount
	if product, err := s.catalog.Get(ctx, in.ProductID); err == nil {
		amount = product.Price * quantity
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if amount <= 0 {
		return nil, apperr.Validation("amount is required for products not in the catalog")
	}

	if err := s.requireChargesEnabled(ctx, in.StripeAccountID); err != nil {
		return nil, err
	}

	currency := in.Currency
	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}

	fees := SplitFee(amount, s.cfg.FeePercent)

	params := &stripe.PaymentIntentParams{
		Amount:               stripe.Int64(amount),
		Currency:             stripe.String(currency),
		PaymentMethodTypes:   stripe.StringSlice([]string{"card"}),
		ApplicationFeeAmount: stripe.Int64(fees.PlatformFeeAmount),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(in.StripeAccountID),
		},
		SetupFutureUsage: stripe.String("on_session"),
	}
	if in.CustomerID != "" {
		params.Customer = stripe.String(in.CustomerID)
	}
	params.AddMetadata("productId", in.ProductID)
	params.AddMetadata("stripeAccountId", in.StripeAccountID)
	params.AddMetadata("platformFee", strconv.FormatInt(fees.PlatformFeeAmount, 10))

	pi, err := s.provider.CreatePaymentIntent(ctx, params)
	if err != nil {
		return nil, err
	}

	return &IntentResult{
		ClientSecret:    pi.ClientSecret,
		PaymentIntentID: pi.ID,
		Amount:          amount,
		Currency:        currency,
		Fees:            fees,
	}, nil
}

// ConfirmPayment confirms a payment intent server-side. succeeded is
// terminal success; requires_action sends the caller back for
// client-side authentication; anything else is a failure carrying the
// provider's decline code when present.
func (s *service) ConfirmPayment(ctx context.Context, paymentIntentID, paymentMethodID string) (*ConfirmResult, error) {
	if paymentIntentID == "" {
		return nil, apperr.Validation("paymentIntentId is required")
	}

	params := &stripe.PaymentIntentConfirmParams{}
	if paymentMethodID != "" {
		params.PaymentMethod = stripe.String(paymentMethodID)
	}

	pi, err := s.provider.ConfirmPaymentIntent(ctx, paymentIntentID, params)
	if err != nil {
		return nil, err
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return &ConfirmResult{PaymentIntentID: pi.ID, Status: string(pi.Status)}, nil
	case stripe.PaymentIntentStatusRequiresAction:
		return &ConfirmResult{
			PaymentIntentID: pi.ID,
			Status:          string(pi.Status),
			RequiresAction:  true,
			ClientSecret:    pi.ClientSecret,
		}, nil
	default:
		failure := apperr.Upstream("payment not completed: status %s", pi.Status)
		if pi.LastPaymentError != nil {
			failure = failure.WithCode(string(pi.LastPaymentError.Code)).
				WithDeclineCode(string(pi.LastPaymentError.DeclineCode))
		}
		return nil, failure
	}
}

// CheckStatus looks up a session or a payment intent. Exactly one of
// the two identifiers must be supplied.
func (s *service) CheckStatus(ctx context.Context, sessionID, paymentIntentID string) (*StatusResult, error) {
	if (sessionID == "") == (paymentIntentID == "") {
		return nil, apperr.Validation("exactly one of sessionId or paymentIntentId is required")
	}

	if sessionID != "" {
		sess, err := s.provider.GetCheckoutSession(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		result := &StatusResult{
			SessionID: sess.ID,
			Status:    string(sess.PaymentStatus),
			Amount:    sess.AmountTotal,
			Currency:  string(sess.Currency),
			Metadata:  sess.Metadata,
		}
		if sess.Customer != nil {
			result.CustomerID = sess.Customer.ID
		}
		if sess.PaymentIntent != nil {
			result.PaymentIntentID = sess.PaymentIntent.ID
		}
		return result, nil
	}

	pi, err := s.provider.GetPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}
	return &StatusResult{
		PaymentIntentID: pi.ID,
		Status:          string(pi.Status),
		Amount:          pi.Amount,
		Currency:        string(pi.Currency),
		Metadata:        pi.Metadata,
	}, nil
}

// resolveProduct prefers the catalog entry for ProductID and falls
// back to the request's ad-hoc product description. Ad-hoc prices
// arrive in major units and are converted once.
func (s *service) resolveProduct(ctx context.Context, in SessionInput) (*models.Product, error) {
	product, err := s.catalog.Get(ctx, in.ProductID)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if in.Name == "" || in.Price <= 0 {
		return nil, apperr.NotFound("product %s not found", in.ProductID)
	}

	description := in.Description
	if description == "" {
		description = "Product available for purchase"
	}
	images := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		if img != "" {
			images = append(images, img)
		}
	}

	return &models.Product{
		ID:          in.ProductID,
		Name:        in.Name,
		Description: description,
		Price:       int64(math.Round(in.Price * 100)),
		Images:      images,
	}, nil
}

// requireChargesEnabled verifies against a live provider read that the
// connected account can accept charges. The cached directory is never
// trusted for this check.
func (s *service) requireChargesEnabled(ctx context.Context, accountID string) error {
	acct, err := s.provider.GetAccount(ctx, accountID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return apperr.NotFound("connected account %s not found", accountID)
		}
		return fmt.Errorf("verifying account %s: %w", accountID, err)
	}
	if !acct.ChargesEnabled {
		return apperr.Validation("account cannot accept payments yet: onboarding is not complete")
	}
	return nil
}
