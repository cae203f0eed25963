package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ridwanfathin/invoice-generator-service/internal/domain"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Storage configuration
	DatabaseURL string

	// Rendering configuration
	OutputDir string
	LogoPath  string
	Issuer    domain.Issuer
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Using environment variables.")
	}

	config := &Config{
		// Server configuration
		Port:         getEnvInt("PORT", 8080),
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT", 30)) * time.Second,

		// Storage configuration
		DatabaseURL: os.Getenv("POSTGRES_DB_URL"),

		// Rendering configuration
		OutputDir: getEnvString("INVOICE_OUTPUT_DIR", "invoices"),
		LogoPath:  getEnvString("INVOICE_LOGO_PATH", "images/logo.png"),
		Issuer: domain.Issuer{
			Name:    getEnvString("ISSUER_NAME", "InAndOut Graphics"),
			Email:   getEnvString("ISSUER_EMAIL", "inandoutgraphics@gmail.com"),
			Phone:   getEnvString("ISSUER_PHONE", "786-246-9041"),
			Address: getEnvString("ISSUER_ADDRESS", "316 East 92nd St"),
		},
	}

	// Validate critical configuration
	validateConfig(config)

	return config, nil
}

// validateConfig checks if critical configuration values are set and logs warnings if they're missing
func validateConfig(config *Config) {
	if config.DatabaseURL == "" {
		log.Println("Warning: POSTGRES_DB_URL is not set. Invoice storage will fail.")
	}

	if _, err := os.Stat(config.LogoPath); err != nil {
		log.Printf("Note: logo %s is not readable; documents will be rendered without a logo.", config.LogoPath)
	}
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
