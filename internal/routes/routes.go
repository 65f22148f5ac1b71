// Package routes defines the API routing configuration.
// It wires stores, services, and handlers together and registers all
// HTTP routes.
package routes

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"marketpay/internal/config"
	"marketpay/internal/handlers"
	"marketpay/internal/provider"
	"marketpay/internal/services/checkout"
	"marketpay/internal/services/connect"
	"marketpay/internal/services/onboarding"
	"marketpay/internal/services/product"
	"marketpay/internal/services/webhook"
	"marketpay/internal/store"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, cfg config.Settings) {
	// Provider adapter: the only place the Stripe SDK is configured.
	stripeClient := provider.NewStripeClient(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	// Stores: in-memory by default, Redis-backed directory and payment
	// log when REDIS_URL is set.
	var directory store.AccountDirectory = store.NewMemoryDirectory()
	var payments store.PaymentLog = store.NewMemoryPaymentLog()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		client := redis.NewClient(opts)
		directory = store.NewRedisDirectory(client)
		payments = store.NewRedisPaymentLog(client)
		log.Println("✅ Using Redis-backed account directory and payment log")
	}
	sessions := store.NewMemorySessions()
	catalog := store.NewMemoryCatalog()
	if err := product.SeedDemo(context.Background(), catalog); err != nil {
		log.Printf("failed to seed demo products: %v", err)
	}

	// Services.
	connectService := connect.NewService(stripeClient, directory, connect.Config{
		AppURL:              cfg.AppURL,
		DefaultCountry:      cfg.DefaultCountry,
		DefaultBusinessType: cfg.DefaultBusinessType,
	})
	onboardingService := onboarding.NewService(stripeClient, sessions, onboarding.Config{
		DefaultCountry:      cfg.DefaultCountry,
		DefaultBusinessType: cfg.DefaultBusinessType,
		DefaultCurrency:     cfg.DefaultCurrency,
	})
	checkoutService := checkout.NewService(stripeClient, catalog, checkout.Config{
		FrontendURL:     cfg.FrontendURL,
		FeePercent:      float64(cfg.PlatformFeePercent),
		DefaultCurrency: cfg.DefaultCurrency,
	})
	productService := product.NewService(catalog)
	reconciler := webhook.NewReconciler(stripeClient, directory, payments)

	// Handlers.
	connectHandler := handlers.NewConnectHandler(connectService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	paymentHandler := handlers.NewPaymentHandler(checkoutService)
	productHandler := handlers.NewProductHandler(productService)
	webhookHandler := handlers.NewWebhookHandler(reconciler)

	// Webhook first: raw body, no API prefix.
	app.Post("/webhook", webhookHandler.Handle)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")
	api.Get("/docs", handlers.APIDocs)

	setupConnectRoutes(api, connectHandler)
	setupOnboardingRoutes(api, onboardingHandler)
	setupPaymentRoutes(api, paymentHandler, productHandler)

	// 404 handler with a hint, registered last.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success":            false,
			"message":            "Endpoint not found",
			"availableEndpoints": "/api/docs",
		})
	})
}

func setupConnectRoutes(router fiber.Router, h *handlers.ConnectHandler) {
	connect := router.Group("/stripe/connect")
	connect.Post("/create-account", h.CreateAccount)
	connect.Get("/status/:stripeAccountId", h.GetStatus)
	connect.Post("/refresh-onboarding/:uid", h.RefreshOnboardingLink)
}

func setupOnboardingRoutes(router fiber.Router, h *handlers.OnboardingHandler) {
	onboarding := router.Group("/stripe/onboarding")
	onboarding.Post("/create-custom-account", h.CreateCustomAccount)

	accounts := onboarding.Group("/accounts/:accountId")
	accounts.Put("/basic-info", h.UpdateBasicInfo)
	accounts.Put("/personal-info", h.UpdatePersonalInfo)
	accounts.Post("/bank-account", h.AddBankAccount)
	accounts.Post("/accept-terms", h.AcceptTerms)
	accounts.Post("/upload-document", h.UploadDocument)
	accounts.Get("/requirements", h.GetRequirements)
	accounts.Get("/progress", h.GetProgress)
}

func setupPaymentRoutes(router fiber.Router, h *handlers.PaymentHandler, p *handlers.ProductHandler) {
	payments := router.Group("/payments")
	payments.Post("/create-checkout-session", h.CreateCheckoutSession)
	payments.Post("/create-payment-intent", h.CreatePaymentIntent)
	payments.Post("/confirm-payment", h.ConfirmPayment)
	payments.Get("/status", h.CheckStatus)
	payments.Get("/status/:sessionId", h.CheckStatus)
	payments.Post("/add-product", p.AddProduct)
	payments.Get("/products", p.ListProducts)

	// Aliases kept for clients of the original native-payment routes.
	native := router.Group("/native-payments")
	native.Post("/create-payment-intent", h.CreatePaymentIntent)
	native.Post("/confirm-payment-intent", h.ConfirmPayment)
}
