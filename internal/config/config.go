package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT (backend-minted access/refresh tokens)
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Identity provider (external OIDC issuer for sign-in token exchange)
	IdentityJWKSURL string
	IdentityIssuer  string

	// Payment provider (Checkout-style sessions)
	PaymentAPIKey     string
	PaymentAPIURL     string
	PaymentSuccessURL string
	PaymentCancelURL  string
	PaymentTimeout    time.Duration

	// Admin bootstrap
	AdminEmails string
	AdminToken  string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "scholarstreams"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),

		IdentityJWKSURL: getEnv("IDENTITY_JWKS_URL", ""),
		IdentityIssuer:  getEnv("IDENTITY_ISSUER", ""),

		PaymentAPIKey:     getEnv("PAYMENT_API_KEY", ""),
		PaymentAPIURL:     getEnv("PAYMENT_API_URL", "https://api.stripe.com/v1"),
		PaymentSuccessURL: getEnv("PAYMENT_SUCCESS_URL", "https://scholarstreams.app/payment/success"),
		PaymentCancelURL:  getEnv("PAYMENT_CANCEL_URL", "https://scholarstreams.app/payment/cancel"),
		PaymentTimeout:    parseDuration(getEnv("PAYMENT_TIMEOUT", "30s")),

		AdminEmails: getEnv("ADMIN_EMAILS", ""),
		AdminToken:  getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}
