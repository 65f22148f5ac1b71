package handlers

import (
	"github.com/gofiber/fiber/v2"

	"marketpay/internal/apperr"
	"marketpay/internal/services/webhook"
	"marketpay/internal/utils/response"
)

type WebhookHandler struct {
	reconciler *webhook.Reconciler
}

func NewWebhookHandler(r *webhook.Reconciler) *WebhookHandler {
	return &WebhookHandler{reconciler: r}
}

// Handle receives provider events. The raw request body is passed
// through untouched for signature verification. A signature mismatch
// is a 400; any other handler failure is a 500 so the provider
// redelivers on its own schedule.
func (h *WebhookHandler) Handle(c *fiber.Ctx) error {
	err := h.reconciler.Handle(c.Context(), c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		if apperr.IsKind(err, apperr.KindSignature) {
			return response.Fail(c, fiber.StatusBadRequest, err.Error())
		}
		return response.Fail(c, fiber.StatusInternalServerError, "error processing webhook event")
	}
	return c.JSON(fiber.Map{"received": true})
}
