package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"services": fiber.Map{
			"stripe_connect":    "active",
			"stripe_onboarding": "active",
			"payments":          "active",
			"webhooks":          "active",
		},
	})
}

// APIDocs lists the exposed endpoints.
func APIDocs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    "Marketpay API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"stripe_connect": fiber.Map{
				"POST /api/stripe/connect/create-account":          "Create standard connected account",
				"GET /api/stripe/connect/status/:stripeAccountId":  "Get live account status",
				"POST /api/stripe/connect/refresh-onboarding/:uid": "Refresh onboarding link",
			},
			"stripe_onboarding": fiber.Map{
				"POST /api/stripe/onboarding/create-custom-account":             "Create custom account for API onboarding",
				"PUT /api/stripe/onboarding/accounts/:id/basic-info":            "Update basic business info",
				"PUT /api/stripe/onboarding/accounts/:id/personal-info":         "Update personal info",
				"POST /api/stripe/onboarding/accounts/:id/bank-account":         "Add bank account",
				"POST /api/stripe/onboarding/accounts/:id/accept-terms":         "Accept terms of service",
				"POST /api/stripe/onboarding/accounts/:id/upload-document":      "Upload verification document",
				"GET /api/stripe/onboarding/accounts/:id/requirements":          "Get account requirements",
				"GET /api/stripe/onboarding/accounts/:id/progress":              "Get onboarding progress",
			},
			"payments": fiber.Map{
				"POST /api/payments/create-checkout-session": "Create hosted checkout session",
				"POST /api/payments/create-payment-intent":   "Create direct payment intent",
				"POST /api/payments/confirm-payment":         "Confirm a payment intent",
				"GET /api/payments/status/:sessionId":        "Check payment status",
				"POST /api/payments/add-product":             "Add catalog product",
				"GET /api/payments/products":                 "List catalog products",
			},
			"webhooks": fiber.Map{
				"POST /webhook": "Provider event callback (raw body)",
			},
		},
	})
}
