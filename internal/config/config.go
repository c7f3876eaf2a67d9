package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Billing  BillingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	BillingLogFilePath string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type BillingConfig struct {
	// StrictChurnWindow bounds the churn cancellation filter to the current
	// month. Off by default to preserve the original open-ended window.
	StrictChurnWindow bool
	// MetricsCacheTTLSeconds controls how long dashboard metrics are cached
	// per business before recomputation.
	MetricsCacheTTLSeconds int
	// ReceiptEmails toggles payment receipt emails after billing runs.
	ReceiptEmails bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			BillingLogFilePath: getEnv("BILLING_LOG_FILE_PATH", "logs/billing.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "SubHub"),
		},
		Billing: BillingConfig{
			StrictChurnWindow:      getEnvAsBool("BILLING_STRICT_CHURN_WINDOW", false),
			MetricsCacheTTLSeconds: getEnvAsInt("METRICS_CACHE_TTL_SECONDS", 60),
			ReceiptEmails:          getEnvAsBool("BILLING_RECEIPT_EMAILS", false),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
