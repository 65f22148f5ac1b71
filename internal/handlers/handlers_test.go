package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	stripe "github.com/stripe/stripe-go/v72"

	"marketpay/internal/apperr"
	"marketpay/internal/provider/providertest"
	"marketpay/internal/services/checkout"
	"marketpay/internal/services/connect"
	"marketpay/internal/services/product"
	"marketpay/internal/services/webhook"
	"marketpay/internal/store"
)

// testApp wires the handlers over memory stores and a mocked provider.
func testApp(t *testing.T, mockClient *providertest.MockClient) (*fiber.App, *store.MemoryDirectory) {
	t.Helper()

	directory := store.NewMemoryDirectory()
	payments := store.NewMemoryPaymentLog()
	catalog := store.NewMemoryCatalog()
	assert.NoError(t, product.SeedDemo(context.Background(), catalog))

	connectService := connect.NewService(mockClient, directory, connect.Config{
		AppURL:              "http://localhost:3000",
		DefaultCountry:      "BR",
		DefaultBusinessType: "individual",
	})
	checkoutService := checkout.NewService(mockClient, catalog, checkout.Config{
		FrontendURL:     "http://localhost:8080",
		FeePercent:      10,
		DefaultCurrency: "brl",
	})
	reconciler := webhook.NewReconciler(mockClient, directory, payments)

	app := fiber.New()
	app.Post("/webhook", NewWebhookHandler(reconciler).Handle)
	connectHandler := NewConnectHandler(connectService)
	app.Post("/api/stripe/connect/create-account", connectHandler.CreateAccount)
	app.Get("/api/stripe/connect/status/:stripeAccountId", connectHandler.GetStatus)
	paymentHandler := NewPaymentHandler(checkoutService)
	app.Post("/api/payments/create-checkout-session", paymentHandler.CreateCheckoutSession)
	app.Get("/api/payments/status/:sessionId", paymentHandler.CheckStatus)

	return app, directory
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	data, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(data, &decoded))
	return resp.StatusCode, decoded
}

// The seller lifecycle: onboard, get rejected while charges are
// disabled, receive the enabling event, then sell.
func TestSellerLifecycle(t *testing.T) {
	mockClient := new(providertest.MockClient)
	app, directory := testApp(t, mockClient)

	// Onboard: a fresh account has charges disabled.
	mockClient.On("CreateAccount", mock.Anything, mock.Anything).
		Return(&stripe.Account{ID: "acct_seller", ChargesEnabled: false}, nil).Once()
	mockClient.On("CreateAccountLink", mock.Anything, mock.Anything).
		Return(&stripe.AccountLink{URL: "https://connect.example/onboard"}, nil).Once()

	status, body := postJSON(t, app, "/api/stripe/connect/create-account", fiber.Map{
		"email": "seller@example.com",
		"uid":   "user_1",
	})
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "acct_seller", body["accountId"])

	// Checkout against the not-yet-enabled account is rejected.
	mockClient.On("GetAccount", mock.Anything, "acct_seller").
		Return(&stripe.Account{ID: "acct_seller", ChargesEnabled: false}, nil).Once()

	status, body = postJSON(t, app, "/api/payments/create-checkout-session", fiber.Map{
		"productId":       "prod_001",
		"stripeAccountId": "acct_seller",
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "onboarding is not complete")
	mockClient.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)

	// The provider reports onboarding finished.
	raw, _ := json.Marshal(map[string]interface{}{
		"id":                "acct_seller",
		"object":            "account",
		"charges_enabled":   true,
		"details_submitted": true,
		"payouts_enabled":   true,
	})
	mockClient.On("ConstructEvent", mock.Anything, "valid-sig").Return(stripe.Event{
		Type:    "account.updated",
		Account: "acct_seller",
		Data:    &stripe.EventData{Raw: raw},
	}, nil).Once()

	req := httptest.NewRequest("POST", "/webhook", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Stripe-Signature", "valid-sig")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()

	rec, err := directory.Get(context.Background(), "user_1")
	assert.NoError(t, err)
	assert.True(t, rec.ChargesEnabled)

	// Checkout now goes through.
	mockClient.On("GetAccount", mock.Anything, "acct_seller").
		Return(&stripe.Account{ID: "acct_seller", ChargesEnabled: true}, nil).Once()
	mockClient.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(p *stripe.CheckoutSessionParams) bool {
		return *p.PaymentIntentData.ApplicationFeeAmount == 990
	})).Return(&stripe.CheckoutSession{
		ID:  "cs_live",
		URL: "https://checkout.example/cs_live",
	}, nil).Once()

	status, body = postJSON(t, app, "/api/payments/create-checkout-session", fiber.Map{
		"productId":       "prod_001",
		"stripeAccountId": "acct_seller",
	})
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "cs_live", body["sessionId"])
	mockClient.AssertExpectations(t)
}

func TestCreateAccount_ValidationEnvelope(t *testing.T) {
	mockClient := new(providertest.MockClient)
	app, _ := testApp(t, mockClient)

	status, body := postJSON(t, app, "/api/stripe/connect/create-account", fiber.Map{
		"email": "not-an-email",
		"uid":   "user_1",
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, false, body["success"])
	mockClient.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestWebhook_BadSignature(t *testing.T) {
	mockClient := new(providertest.MockClient)
	app, _ := testApp(t, mockClient)

	mockClient.On("ConstructEvent", mock.Anything, "bad-sig").
		Return(stripe.Event{}, apperr.Signature("signature verification failed"))

	req := httptest.NewRequest("POST", "/webhook", bytes.NewReader([]byte(`{"type":"account.updated"}`)))
	req.Header.Set("Stripe-Signature", "bad-sig")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	resp.Body.Close()
}

func TestWebhook_ProcessingFailureIs500(t *testing.T) {
	mockClient := new(providertest.MockClient)
	app, _ := testApp(t, mockClient)

	mockClient.On("ConstructEvent", mock.Anything, "valid-sig").Return(stripe.Event{
		Type: "account.updated",
		Data: &stripe.EventData{Raw: json.RawMessage(`{not-json`)},
	}, nil)

	req := httptest.NewRequest("POST", "/webhook", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Stripe-Signature", "valid-sig")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	resp.Body.Close()
}

func TestCheckStatus_SessionPath(t *testing.T) {
	mockClient := new(providertest.MockClient)
	app, _ := testApp(t, mockClient)

	mockClient.On("GetCheckoutSession", mock.Anything, "cs_1").Return(&stripe.CheckoutSession{
		ID:            "cs_1",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal:   9900,
		Currency:      "brl",
	}, nil)

	req := httptest.NewRequest("GET", "/api/payments/status/cs_1", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "paid", body["status"])
	assert.Equal(t, "cs_1", body["sessionId"])
}
