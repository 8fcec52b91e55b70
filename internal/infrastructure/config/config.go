package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	MongoURI      string
	DBName        string
	JWTSecret     string
	PaymentSecret string
	Port          string
	TokenExpiry   time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		MongoURI:      getEnv("MONGODB_URI", ""),
		DBName:        getEnv("MONGODB_DB_NAME", "frasa-id-lms"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		PaymentSecret: getEnv("PAYMENT_SECRET", ""),
		Port:          getEnv("PORT", "5000"),
		TokenExpiry:   time.Hour * time.Duration(getEnvAsInt("TOKEN_EXPIRY_HOURS", 24)),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetTokenExpiry returns the fixed expiry applied to issued credentials.
func (c *Config) GetTokenExpiry() time.Duration {
	return c.TokenExpiry
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
