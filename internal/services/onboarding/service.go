package onboarding

import (
	"context"
	"errors"
	"log"
	"time"

	stripe "github.com/stripe/stripe-go/v72"

	"marketpay/internal/apperr"
	"marketpay/internal/models"
	"marketpay/internal/provider"
	"marketpay/internal/store"
)

const appName = "marketpay"

type service struct {
	provider provider.Client
	sessions store.OnboardingSessions
	cfg      Config
}

// NewService creates a new custom-onboarding service.
func NewService(p provider.Client, sessions store.OnboardingSessions, cfg Config) Service {
	return &service{provider: p, sessions: sessions, cfg: cfg}
}

// CreateCustomAccount creates a custom connected account with the
// card-payments and transfers capabilities requested, and opens an
// onboarding session at the first step.
func (s *service) CreateCustomAccount(ctx context.Context, in CreateCustomAccountInput) (*CustomAccountResult, error) {
	if in.Email == "" || in.UID == "" {
		return nil, apperr.Validation("email and user ID are required")
	}

	country := in.Country
	if country == "" {
		country = s.cfg.DefaultCountry
	}
	businessType := in.BusinessType
	if businessType == "" {
		businessType = s.cfg.DefaultBusinessType
	}

	params := &stripe.AccountParams{
		Type:         stripe.String("custom"),
		Email:        stripe.String(in.Email),
		Country:      stripe.String(country),
		BusinessType: stripe.String(businessType),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		},
	}
	params.AddMetadata("user_id", in.UID)
	params.AddMetadata("app_name", appName)
	params.AddMetadata("onboarding_type", "custom")

	acct, err := s.provider.CreateAccount(ctx, params)
	if err != nil {
		return nil, err
	}

	session := &models.OnboardingSession{
		UID:         in.UID,
		AccountID:   acct.ID,
		Email:       in.Email,
		Name:        in.Name,
		Phone:       in.Phone,
		CurrentStep: models.StepBasicInfo,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	return &CustomAccountResult{
		AccountID:    acct.ID,
		CurrentStep:  models.StepBasicInfo,
		Requirements: provider.RequirementsOf(acct),
		Status:       provider.StatusOf(acct),
	}, nil
}

// UpdateBasicInfo sets the account's business profile.
func (s *service) UpdateBasicInfo(ctx context.Context, accountID string, in BasicInfoInput) (*StepResult, error) {
	params := &stripe.AccountParams{
		BusinessProfile: &stripe.AccountBusinessProfileParams{
			Name:               stripe.String(in.BusinessName),
			URL:                stripe.String(in.BusinessURL),
			ProductDescription: stripe.String(in.ProductDescription),
			SupportPhone:       stripe.String(in.SupportPhone),
			SupportEmail:       stripe.String(in.SupportEmail),
		},
	}
	if in.BusinessType != "" {
		params.BusinessType = stripe.String(in.BusinessType)
	}

	acct, err := s.provider.UpdateAccount(ctx, accountID, params)
	if err != nil {
		return nil, err
	}
	return s.stepResult(ctx, acct), nil
}

// UpdatePersonalInfo sets the individual's identity fields.
func (s *service) UpdatePersonalInfo(ctx context.Context, accountID string, in PersonalInfoInput) (*StepResult, error) {
	params := &stripe.AccountParams{
		Individual: &stripe.PersonParams{
			FirstName: stripe.String(in.FirstName),
			LastName:  stripe.String(in.LastName),
			Email:     stripe.String(in.Email),
			Phone:     stripe.String(in.Phone),
			DOB: &stripe.DOBParams{
				Day:   stripe.Int64(in.DOBDay),
				Month: stripe.Int64(in.DOBMonth),
				Year:  stripe.Int64(in.DOBYear),
			},
			IDNumber: stripe.String(in.TaxID),
			Address: &stripe.AccountAddressParams{
				Line1:      stripe.String(in.AddressLine1),
				Line2:      stripe.String(in.AddressLine2),
				City:       stripe.String(in.AddressCity),
				State:      stripe.String(in.AddressState),
				PostalCode: stripe.String(in.AddressPostalCode),
				Country:    stripe.String(s.cfg.DefaultCountry),
			},
		},
	}

	acct, err := s.provider.UpdateAccount(ctx, accountID, params)
	if err != nil {
		return nil, err
	}
	return s.stepResult(ctx, acct), nil
}

// AddBankAccount attaches an external payout account.
func (s *service) AddBankAccount(ctx context.Context, accountID string, in BankAccountInput) (*StepResult, error) {
	holderType := in.AccountHolderType
	if holderType == "" {
		holderType = "individual"
	}

	ba, err := s.provider.CreateBankAccount(ctx, &stripe.BankAccountParams{
		Account:           stripe.String(accountID),
		Country:           stripe.String(s.cfg.DefaultCountry),
		Currency:          stripe.String(s.cfg.DefaultCurrency),
		AccountHolderName: stripe.String(in.AccountHolderName),
		AccountHolderType: stripe.String(holderType),
		RoutingNumber:     stripe.String(in.RoutingNumber),
		AccountNumber:     stripe.String(in.AccountNumber),
	})
	if err != nil {
		return nil, err
	}

	acct, err := s.provider.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	result := s.stepResult(ctx, acct)
	result.ExternalAccountID = ba.ID
	return result, nil
}

// AcceptTerms records the terms-of-service acceptance with the
// caller's IP and user agent.
func (s *service) AcceptTerms(ctx context.Context, accountID string, in TermsInput) (*StepResult, error) {
	params := &stripe.AccountParams{
		TOSAcceptance: &stripe.AccountTOSAcceptanceParams{
			Date:      stripe.Int64(time.Now().Unix()),
			IP:        stripe.String(in.IP),
			UserAgent: stripe.String(in.UserAgent),
		},
	}

	acct, err := s.provider.UpdateAccount(ctx, accountID, params)
	if err != nil {
		return nil, err
	}
	return s.stepResult(ctx, acct), nil
}

// UploadDocument uploads an identity document on behalf of the
// connected account and binds it to the front or back slot.
func (s *service) UploadDocument(ctx context.Context, accountID string, in DocumentInput) (*StepResult, error) {
	if in.DocumentType != "identity_front" && in.DocumentType != "identity_back" {
		return nil, apperr.Validation("document_type must be identity_front or identity_back")
	}

	f, err := s.provider.UploadFile(ctx, accountID, in.Filename, "identity_document", in.Reader)
	if err != nil {
		return nil, err
	}

	doc := &stripe.PersonVerificationDocumentParams{}
	if in.DocumentType == "identity_front" {
		doc.Front = stripe.String(f.ID)
	} else {
		doc.Back = stripe.String(f.ID)
	}
	params := &stripe.AccountParams{
		Individual: &stripe.PersonParams{
			Verification: &stripe.PersonVerificationParams{Document: doc},
		},
	}

	acct, err := s.provider.UpdateAccount(ctx, accountID, params)
	if err != nil {
		return nil, err
	}
	result := s.stepResult(ctx, acct)
	result.FileID = f.ID
	return result, nil
}

// GetRequirements reads the account live and reports the outstanding
// step derived from its currently-due list.
func (s *service) GetRequirements(ctx context.Context, accountID string) (*RequirementsResult, error) {
	acct, err := s.provider.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	reqs := provider.RequirementsOf(acct)
	result := &RequirementsResult{
		AccountID:    acct.ID,
		CurrentStep:  InferStep(reqs.CurrentlyDue),
		Requirements: reqs,
		Status:       provider.StatusOf(acct),
	}
	if acct.Capabilities != nil {
		result.Capabilities = map[string]string{
			"card_payments": string(acct.Capabilities.CardPayments),
			"transfers":     string(acct.Capabilities.Transfers),
		}
	}
	return result, nil
}

// GetProgress summarizes how many of the four steps are cleared.
func (s *service) GetProgress(ctx context.Context, accountID string) (*ProgressResult, error) {
	acct, err := s.provider.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	reqs := provider.RequirementsOf(acct)
	completed := CompletedSteps(reqs.CurrentlyDue)
	total := len(models.StepOrder)

	current := models.StepComplete
	if completed < total {
		current = models.StepOrder[completed]
	}

	return &ProgressResult{
		AccountID: acct.ID,
		Progress: Progress{
			CompletionPercentage: completed * 100 / total,
			CompletedSteps:       completed,
			TotalSteps:           total,
			CurrentStep:          current,
		},
		Requirements: reqs,
		Status:       provider.StatusOf(acct),
		IsComplete:   completed == total && acct.DetailsSubmitted,
	}, nil
}

// stepResult shapes an updated account into a step response and keeps
// the onboarding session's step in sync when one exists.
func (s *service) stepResult(ctx context.Context, acct *stripe.Account) *StepResult {
	reqs := provider.RequirementsOf(acct)
	next := InferStep(reqs.CurrentlyDue)

	session, err := s.sessions.FindByAccountID(ctx, acct.ID)
	if err == nil {
		session.CurrentStep = next
		if putErr := s.sessions.Put(ctx, session); putErr != nil {
			log.Printf("failed to update onboarding session for %s: %v", acct.ID, putErr)
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("failed to load onboarding session for %s: %v", acct.ID, err)
	}

	return &StepResult{
		AccountID:    acct.ID,
		Requirements: reqs,
		NextStep:     next,
		Status:       provider.StatusOf(acct),
	}
}
