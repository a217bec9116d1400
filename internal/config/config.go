package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	PostgresURL string
	JWTSecret   string

	AppName    string
	AppBaseURL string

	// membership id prefix, e.g. "BRIPAN" -> BRIPAN042
	MembershipIDPrefix string

	Gateway GatewayConfig
	Storage StorageConfig
	SMTP    SMTPConfig
}

// GatewayConfig points at the Paystack-style verification API.
type GatewayConfig struct {
	BaseURL   string
	SecretKey string
}

type StorageConfig struct {
	BaseURL string
	APIKey  string
	Folder  string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

func Load(logger *logrus.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment")
	}

	smtpPort, _ := strconv.Atoi(envOr("SMTP_PORT", "587"))

	return &Config{
		Port:               envOr("PORT", "8080"),
		PostgresURL:        os.Getenv("POSTGRES_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AppName:            envOr("APP_NAME", "MemberPay"),
		AppBaseURL:         envOr("APP_BASE_URL", "http://localhost:8080"),
		MembershipIDPrefix: envOr("MEMBERSHIP_ID_PREFIX", "MP"),
		Gateway: GatewayConfig{
			BaseURL:   envOr("GATEWAY_BASE_URL", "https://api.paystack.co"),
			SecretKey: os.Getenv("GATEWAY_SECRET_KEY"),
		},
		Storage: StorageConfig{
			BaseURL: os.Getenv("STORAGE_BASE_URL"),
			APIKey:  os.Getenv("STORAGE_API_KEY"),
			Folder:  envOr("STORAGE_FOLDER", "memberpay/api"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     envOr("SMTP_FROM", "no-reply@memberpay.local"),
			FromName: envOr("SMTP_FROM_NAME", "MemberPay"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
