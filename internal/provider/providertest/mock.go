// Package providertest provides a testify mock of provider.Client for
// service and handler tests.
package providertest

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	stripe "github.com/stripe/stripe-go/v72"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) CreateAccount(ctx context.Context, params *stripe.AccountParams) (*stripe.Account, error) {
	args := m.Called(ctx, params)
	acct, _ := args.Get(0).(*stripe.Account)
	return acct, args.Error(1)
}

func (m *MockClient) GetAccount(ctx context.Context, accountID string) (*stripe.Account, error) {
	args := m.Called(ctx, accountID)
	acct, _ := args.Get(0).(*stripe.Account)
	return acct, args.Error(1)
}

func (m *MockClient) UpdateAccount(ctx context.Context, accountID string, params *stripe.AccountParams) (*stripe.Account, error) {
	args := m.Called(ctx, accountID, params)
	acct, _ := args.Get(0).(*stripe.Account)
	return acct, args.Error(1)
}

func (m *MockClient) CreateBankAccount(ctx context.Context, params *stripe.BankAccountParams) (*stripe.BankAccount, error) {
	args := m.Called(ctx, params)
	ba, _ := args.Get(0).(*stripe.BankAccount)
	return ba, args.Error(1)
}

func (m *MockClient) CreateAccountLink(ctx context.Context, params *stripe.AccountLinkParams) (*stripe.AccountLink, error) {
	args := m.Called(ctx, params)
	link, _ := args.Get(0).(*stripe.AccountLink)
	return link, args.Error(1)
}

func (m *MockClient) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, params)
	sess, _ := args.Get(0).(*stripe.CheckoutSession)
	return sess, args.Error(1)
}

func (m *MockClient) GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	sess, _ := args.Get(0).(*stripe.CheckoutSession)
	return sess, args.Error(1)
}

func (m *MockClient) CreatePaymentIntent(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, params)
	pi, _ := args.Get(0).(*stripe.PaymentIntent)
	return pi, args.Error(1)
}

func (m *MockClient) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, paymentIntentID)
	pi, _ := args.Get(0).(*stripe.PaymentIntent)
	return pi, args.Error(1)
}

func (m *MockClient) ConfirmPaymentIntent(ctx context.Context, paymentIntentID string, params *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, paymentIntentID, params)
	pi, _ := args.Get(0).(*stripe.PaymentIntent)
	return pi, args.Error(1)
}

func (m *MockClient) UploadFile(ctx context.Context, accountID, filename, purpose string, reader io.Reader) (*stripe.File, error) {
	args := m.Called(ctx, accountID, filename, purpose, reader)
	f, _ := args.Get(0).(*stripe.File)
	return f, args.Error(1)
}

func (m *MockClient) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	args := m.Called(payload, sigHeader)
	event, _ := args.Get(0).(stripe.Event)
	return event, args.Error(1)
}
