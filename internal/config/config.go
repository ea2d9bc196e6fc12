package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string
	JWTSecret string
	Port      string
	Env       string
	// ReceiptDir is where vote receipt QR images are written.
	ReceiptDir string
	// PhotoDir is where candidate photos are stored.
	PhotoDir      string
	MaxUploadSize int64
	OTPTTL        time.Duration
	LogLevel      string
}

func NewConfigFromEnv() (*Config, error) {
	maxUploadSize, _ := strconv.ParseInt(getenv("MAX_UPLOAD_SIZE", "10485760"), 10, 64)
	otpTTLMinutes, _ := strconv.Atoi(getenv("OTP_TTL_MINUTES", "5"))
	if otpTTLMinutes <= 0 {
		otpTTLMinutes = 5
	}

	cfg := &Config{
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPass:        getenv("DB_PASSWORD", "postgres"),
		DBName:        getenv("DB_NAME", "electionsdb"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		JWTSecret:     getenv("JWT_SECRET", ""),
		Port:          getenv("PORT", "3000"),
		Env:           getenv("ENV", "development"),
		ReceiptDir:    getenv("RECEIPT_DIR", "./uploads/receipts"),
		PhotoDir:      getenv("PHOTO_DIR", "./uploads/candidates"),
		MaxUploadSize: maxUploadSize,
		OTPTTL:        time.Duration(otpTTLMinutes) * time.Minute,
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
