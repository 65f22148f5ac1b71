package onboarding

import (
	"strings"

	"marketpay/internal/models"
)

// stepCategories maps requirement-category substrings to the
// onboarding step that clears them, in fixed priority order.
var stepCategories = []struct {
	category string
	step     models.Step
}{
	{"tos_acceptance", models.StepTermsAcceptance},
	{"external_account", models.StepBankAccount},
	{"individual", models.StepPersonalInfo},
	{"business_profile", models.StepBasicInfo},
}

// InferStep derives the outstanding onboarding step from the
// provider's currently-due requirement list. The first category match
// in priority order wins; no match means onboarding is complete.
func InferStep(currentlyDue []string) models.Step {
	for _, sc := range stepCategories {
		if containsCategory(currentlyDue, sc.category) {
			return sc.step
		}
	}
	return models.StepComplete
}

// CompletedSteps counts how many of the four step categories no longer
// appear in the currently-due list.
func CompletedSteps(currentlyDue []string) int {
	completed := 0
	for _, sc := range stepCategories {
		if !containsCategory(currentlyDue, sc.category) {
			completed++
		}
	}
	return completed
}

func containsCategory(requirements []string, category string) bool {
	for _, req := range requirements {
		if strings.Contains(req, category) {
			return true
		}
	}
	return false
}
