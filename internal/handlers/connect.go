package handlers

import (
	"github.com/gofiber/fiber/v2"

	"marketpay/internal/services/connect"
	"marketpay/internal/utils/response"
)

type ConnectHandler struct {
	service connect.Service
}

func NewConnectHandler(svc connect.Service) *ConnectHandler {
	return &ConnectHandler{service: svc}
}

// CreateAccount onboards a seller through the hosted flow.
func (h *ConnectHandler) CreateAccount(c *fiber.Ctx) error {
	in, err := BindAndValidate[connect.CreateAccountInput](c)
	if err != nil {
		return nil
	}

	result, err := h.service.CreateAccount(c.Context(), *in)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, fiber.Map{
		"accountId":     result.AccountID,
		"onboardingUrl": result.OnboardingURL,
		"status":        result.Status,
	})
}

// GetStatus reports the live account status.
func (h *ConnectHandler) GetStatus(c *fiber.Ctx) error {
	result, err := h.service.GetStatus(c.Context(), c.Params("stripeAccountId"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, fiber.Map{
		"accountId":          result.AccountID,
		"status":             result.Status,
		"requirements":       result.Requirements,
		"account_type":       result.AccountType,
		"business_type":      result.BusinessType,
		"email":              result.Email,
		"country":            result.Country,
		"created":            result.Created,
		"canReceivePayments": result.CanReceivePayments,
		"dashboardUrl":       result.DashboardURL,
	})
}

// RefreshOnboardingLink issues a fresh onboarding link.
func (h *ConnectHandler) RefreshOnboardingLink(c *fiber.Ctx) error {
	result, err := h.service.RefreshOnboardingLink(c.Context(), c.Params("uid"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, fiber.Map{
		"accountId":     result.AccountID,
		"onboardingUrl": result.OnboardingURL,
	})
}
