package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// Settings holds all runtime configuration for the service.
type Settings struct {
	Port        string
	AppURL      string
	FrontendURL string
	CORSOrigin  string

	StripeSecretKey     string
	StripeWebhookSecret string
	PlatformFeePercent  int

	DefaultCountry      string
	DefaultBusinessType string
	DefaultCurrency     string

	RedisURL string
}

// Load assembles Settings from the environment. Call LoadEnv first.
func Load() Settings {
	return Settings{
		Port:        GetEnv("PORT", "3000"),
		AppURL:      GetEnv("APP_URL", "http://localhost:3000"),
		FrontendURL: GetEnv("FRONTEND_APP_URL", "http://localhost:8080"),
		CORSOrigin:  GetEnv("CORS_ORIGIN", "http://localhost:8080"),

		StripeSecretKey:     GetEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: GetEnv("STRIPE_WEBHOOK_SECRET", ""),
		PlatformFeePercent:  GetIntEnv("PLATFORM_FEE_PERCENT", 10),

		DefaultCountry:      GetEnv("DEFAULT_COUNTRY", "BR"),
		DefaultBusinessType: GetEnv("DEFAULT_BUSINESS_TYPE", "individual"),
		DefaultCurrency:     GetEnv("DEFAULT_CURRENCY", "brl"),

		RedisURL: GetEnv("REDIS_URL", ""),
	}
}
