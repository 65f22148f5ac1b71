package connect

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	stripe "github.com/stripe/stripe-go/v72"

	"marketpay/internal/apperr"
	"marketpay/internal/models"
	"marketpay/internal/provider"
	"marketpay/internal/store"
)

const (
	accountIDPrefix = "acct_"
	appName         = "marketpay"
	dashboardURL    = "https://dashboard.stripe.com/account"
)

type service struct {
	provider  provider.Client
	directory store.AccountDirectory
	cfg       Config
}

// NewService creates a new connected-account service.
func NewService(p provider.Client, directory store.AccountDirectory, cfg Config) Service {
	return &service{provider: p, directory: directory, cfg: cfg}
}

// CreateAccount creates a standard connected account plus a hosted
// onboarding link and records the account in the directory. A uid that
// already has a record gets a fresh link for the existing account
// instead of a second provider account.
func (s *service) CreateAccount(ctx context.Context, in CreateAccountInput) (*CreateAccountResult, error) {
	if in.Email == "" || in.UID == "" {
		return nil, apperr.Validation("email and user ID are required")
	}

	if existing, err := s.directory.Get(ctx, in.UID); err == nil {
		return s.relink(ctx, in.UID, existing)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
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
		Type:         stripe.String("standard"),
		Email:        stripe.String(in.Email),
		Country:      stripe.String(country),
		BusinessType: stripe.String(businessType),
	}
	params.AddMetadata("user_id", in.UID)
	params.AddMetadata("app_name", appName)

	acct, err := s.provider.CreateAccount(ctx, params)
	if err != nil {
		return nil, err
	}

	link, err := s.provider.CreateAccountLink(ctx, s.linkParams(acct.ID, in.UID))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := &models.AccountRecord{
		UID:              in.UID,
		Email:            in.Email,
		Name:             in.Name,
		Phone:            in.Phone,
		StripeAccountID:  acct.ID,
		ChargesEnabled:   acct.ChargesEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
		PayoutsEnabled:   acct.PayoutsEnabled,
		IsActive:         true,
		CreatedAt:        now,
		LastUpdated:      now,
	}
	if err := s.directory.Put(ctx, rec); err != nil {
		return nil, err
	}

	return &CreateAccountResult{
		AccountID:     acct.ID,
		OnboardingURL: link.URL,
		Status:        provider.StatusOf(acct),
	}, nil
}

// relink reuses the recorded account for a uid that onboarded before.
func (s *service) relink(ctx context.Context, uid string, rec *models.AccountRecord) (*CreateAccountResult, error) {
	log.Printf("uid %s already has account %s, issuing a fresh onboarding link", uid, rec.StripeAccountID)
	link, err := s.provider.CreateAccountLink(ctx, s.linkParams(rec.StripeAccountID, uid))
	if err != nil {
		return nil, err
	}
	return &CreateAccountResult{
		AccountID:     rec.StripeAccountID,
		OnboardingURL: link.URL,
		Status: models.AccountStatus{
			ChargesEnabled:   rec.ChargesEnabled,
			DetailsSubmitted: rec.DetailsSubmitted,
			PayoutsEnabled:   rec.PayoutsEnabled,
		},
	}, nil
}

// GetStatus reads the account live from the provider. The local
// directory is never consulted here, so the reported status cannot be
// stale.
func (s *service) GetStatus(ctx context.Context, stripeAccountID string) (*StatusResult, error) {
	if !strings.HasPrefix(stripeAccountID, accountIDPrefix) {
		return nil, apperr.Validation("invalid account id: must start with %q", accountIDPrefix)
	}

	acct, err := s.provider.GetAccount(ctx, stripeAccountID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.NotFound("account not found")
		}
		return nil, err
	}

	return &StatusResult{
		AccountID:          stripeAccountID,
		Status:             provider.StatusOf(acct),
		Requirements:       provider.RequirementsOf(acct),
		AccountType:        string(acct.Type),
		BusinessType:       string(acct.BusinessType),
		Email:              acct.Email,
		Country:            acct.Country,
		Created:            time.Unix(acct.Created, 0).UTC(),
		CanReceivePayments: acct.ChargesEnabled,
		DashboardURL:       dashboardURL,
	}, nil
}

// RefreshOnboardingLink issues a new onboarding link for a user whose
// account exists but whose onboarding is incomplete.
func (s *service) RefreshOnboardingLink(ctx context.Context, uid string) (*LinkResult, error) {
	rec, err := s.directory.Get(ctx, uid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("user not found or no account connected")
	}
	if err != nil {
		return nil, err
	}

	link, err := s.provider.CreateAccountLink(ctx, s.linkParams(rec.StripeAccountID, uid))
	if err != nil {
		return nil, err
	}
	return &LinkResult{AccountID: rec.StripeAccountID, OnboardingURL: link.URL}, nil
}

func (s *service) linkParams(accountID, uid string) *stripe.AccountLinkParams {
	return &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(fmt.Sprintf("%s/stripe/reauth?uid=%s", s.cfg.AppURL, uid)),
		ReturnURL:  stripe.String(fmt.Sprintf("%s/stripe/return?uid=%s", s.cfg.AppURL, uid)),
		Type:       stripe.String("account_onboarding"),
	}
}
