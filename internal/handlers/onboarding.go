package handlers

import (
	"github.com/gofiber/fiber/v2"

	"marketpay/internal/services/onboarding"
	"marketpay/internal/utils/response"
)

// 10MB, the upload limit of the original service.
const maxDocumentSize = 10 * 1024 * 1024

type OnboardingHandler struct {
	service onboarding.Service
}

func NewOnboardingHandler(svc onboarding.Service) *OnboardingHandler {
	return &OnboardingHandler{service: svc}
}

// CreateCustomAccount starts an API-driven onboarding flow.
func (h *OnboardingHandler) CreateCustomAccount(c *fiber.Ctx) error {
	in, err := BindAndValidate[onboarding.CreateCustomAccountInput](c)
	if err != nil {
		return nil
	}

	result, err := h.service.CreateCustomAccount(c.Context(), *in)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, fiber.Map{
		"accountId":       result.AccountID,
		"onboardingSteps": result.Requirements,
		"currentStep":     result.CurrentStep,
		"status":          result.Status,
	})
}

// UpdateBasicInfo sets the business profile.
func (h *OnboardingHandler) UpdateBasicInfo(c *fiber.Ctx) error {
	in, err := BindAndValidate[onboarding.BasicInfoInput](c)
	if err != nil {
		return nil
	}

	result, err := h.service.UpdateBasicInfo(c.Context(), c.Params("accountId"), *in)
	if err != nil {
		return response.FromError(c, err)
	}
	return stepResponse(c, result)
}

// UpdatePersonalInfo sets the individual's identity fields.
func (h *OnboardingHandler) UpdatePersonalInfo(c *fiber.Ctx) error {
	in, err := BindAndValidate[onboarding.PersonalInfoInput](c)
	if err != nil {
		return nil
	}

	result, err := h.service.UpdatePersonalInfo(c.Context(), c.Params("accountId"), *in)
	if err != nil {
		return response.FromError(c, err)
	}
	return stepResponse(c, result)
}

// AddBankAccount attaches an external payout account.
func (h *OnboardingHandler) AddBankAccount(c *fiber.Ctx) error {
	in, err := BindAndValidate[onboarding.BankAccountInput](c)
	if err != nil {
		return nil
	}

	result, err := h.service.AddBankAccount(c.Context(), c.Params("accountId"), *in)
	if err != nil {
		return response.FromError(c, err)
	}
	return stepResponse(c, result)
}

// AcceptTerms records the terms acceptance with the caller's IP and
// user agent when the body does not carry them.
func (h *OnboardingHandler) AcceptTerms(c *fiber.Ctx) error {
	var in onboarding.TermsInput
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return response.BadRequest(c, "invalid request format")
	}
	if in.IP == "" {
		in.IP = c.IP()
	}
	if in.UserAgent == "" {
		in.UserAgent = c.Get(fiber.HeaderUserAgent)
	}

	result, err := h.service.AcceptTerms(c.Context(), c.Params("accountId"), in)
	if err != nil {
		return response.FromError(c, err)
	}
	return stepResponse(c, result)
}

// UploadDocument forwards a multipart verification document.
func (h *OnboardingHandler) UploadDocument(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		return response.BadRequest(c, "no file was uploaded")
	}
	if fileHeader.Size > maxDocumentSize {
		return response.BadRequest(c, "file exceeds the 10MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "could not read uploaded file")
	}
	defer file.Close()

	result, err := h.service.UploadDocument(c.Context(), c.Params("accountId"), onboarding.DocumentInput{
		DocumentType: c.FormValue("document_type"),
		Filename:     fileHeader.Filename,
		Reader:       file,
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, fiber.Map{
		"accountId":    result.AccountID,
		"fileId":       result.FileID,
		"requirements": result.Requirements,
		"status":       result.Status,
	})
}

// GetRequirements reports the live requirements snapshot.
func (h *OnboardingHandler) GetRequirements(c *fiber.Ctx) error {
	result, err := h.service.GetRequirements(c.Context(), c.Params("accountId"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, fiber.Map{
		"accountId":    result.AccountID,
		"currentStep":  result.CurrentStep,
		"requirements": result.Requirements,
		"status":       result.Status,
		"capabilities": result.Capabilities,
	})
}

// GetProgress reports the onboarding completion summary.
func (h *OnboardingHandler) GetProgress(c *fiber.Ctx) error {
	result, err := h.service.GetProgress(c.Context(), c.Params("accountId"))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, fiber.Map{
		"accountId":    result.AccountID,
		"progress":     result.Progress,
		"requirements": result.Requirements,
		"status":       result.Status,
		"is_complete":  result.IsComplete,
	})
}

func stepResponse(c *fiber.Ctx, result *onboarding.StepResult) error {
	payload := fiber.Map{
		"accountId":    result.AccountID,
		"requirements": result.Requirements,
		"nextStep":     result.NextStep,
		"status":       result.Status,
	}
	if result.ExternalAccountID != "" {
		payload["externalAccountId"] = result.ExternalAccountID
	}
	return response.OK(c, payload)
}
