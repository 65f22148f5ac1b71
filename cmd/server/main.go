// Package main is the entry point for the application.
// It loads configuration, sets up the HTTP server, and starts
// listening for requests.
package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"marketpay/internal/config"
	"marketpay/internal/routes"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	cfg := config.Load()
	if cfg.StripeSecretKey == "" {
		log.Fatal("STRIPE_SECRET_KEY is required")
	}
	if cfg.StripeWebhookSecret == "" {
		log.Println("⚠️ STRIPE_WEBHOOK_SECRET is not set, webhook verification will fail")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName: "marketpay",
	})

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Stripe-Signature",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Rate-limit the account creation endpoints.
	accountLimiter := limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"success": false,
				"message": "Too many requests. Please try again later.",
			})
		},
	}
	app.Use("/api/stripe/connect/create-account", limiter.New(accountLimiter))
	app.Use("/api/stripe/onboarding/create-custom-account", limiter.New(accountLimiter))

	// Routes
	routes.SetupRoutes(app, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
