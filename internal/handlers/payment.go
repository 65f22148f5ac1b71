package handlers

import (
	"github.com/gofiber/fiber/v2"

	"marketpay/internal/services/checkout"
	"marketpay/internal/utils/response"
)

type PaymentHandler struct {
	service checkout.Service
}

func NewPaymentHandler(svc checkout.Service) *PaymentHandler {
	return &PaymentHandler{service: svc}
}

// CreateCheckoutSession creates a hosted checkout session.
func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	in, err := BindAndValidate[checkout.SessionInput](c)
	if err != nil {
		return nil
	}

	result, err := h.service.CreateCheckoutSession(c.Context(), *in)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, fiber.Map{
		"sessionId":   result.SessionID,
		"checkoutUrl": result.CheckoutURL,
		"expiresAt":   result.ExpiresAt,
	})
}

// CreatePaymentIntent creates a direct payment intent.
func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	in, err := BindAndValidate[checkout.IntentInput](c)
	if err != nil {
		return nil
	}

	result, err := h.service.CreatePaymentIntent(c.Context(), *in)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, fiber.Map{
		"clientSecret":    result.ClientSecret,
		"paymentIntentId": result.PaymentIntentID,
		"amount":          result.Amount,
		"currency":        result.Currency,
		"fees":            result.Fees,
	})
}

// ConfirmPayment confirms a payment intent server-side.
func (h *PaymentHandler) ConfirmPayment(c *fiber.Ctx) error {
	var in struct {
		PaymentIntentID string `json:"paymentIntentId"`
		PaymentMethodID string `json:"paymentMethodId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	result, err := h.service.ConfirmPayment(c.Context(), in.PaymentIntentID, in.PaymentMethodID)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, fiber.Map{
		"paymentIntentId": result.PaymentIntentID,
		"status":          result.Status,
		"requiresAction":  result.RequiresAction,
		"clientSecret":    result.ClientSecret,
	})
}

// CheckStatus looks up a checkout session (path param) or a payment
// intent (query param). Exactly one must be supplied.
func (h *PaymentHandler) CheckStatus(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	paymentIntentID := c.Query("paymentIntentId")

	result, err := h.service.CheckStatus(c.Context(), sessionID, paymentIntentID)
	if err != nil {
		return response.FromError(c, err)
	}

	payload := fiber.Map{
		"status":   result.Status,
		"amount":   result.Amount,
		"currency": result.Currency,
	}
	if result.SessionID != "" {
		payload["sessionId"] = result.SessionID
	}
	if result.PaymentIntentID != "" {
		payload["paymentIntentId"] = result.PaymentIntentID
	}
	if result.CustomerID != "" {
		payload["customer"] = result.CustomerID
	}
	if len(result.Metadata) > 0 {
		payload["metadata"] = result.Metadata
	}
	return response.OK(c, payload)
}
