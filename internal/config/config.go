package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultPaymentLink = "https://razorpay.me/@gateprep?amount=CVDUr6Uxp2FOGZGwAHntNg%3D%3D"

// Config holds all application configuration
type Config struct {
	BotToken    string
	AdminID     int64
	Port        string
	PaymentLink string
	DataDir     string
	DatabaseURL string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		Port:        getEnv("PORT", "8080"),
		PaymentLink: getEnv("PAYMENT_LINK", defaultPaymentLink),
		DataDir:     getEnv("DATA_DIR", "data"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	rawAdminID := os.Getenv("ADMIN_ID")
	if rawAdminID == "" {
		return nil, fmt.Errorf("ADMIN_ID is required")
	}
	adminID, err := strconv.ParseInt(rawAdminID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_ID must be an integer: %w", err)
	}
	cfg.AdminID = adminID

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
