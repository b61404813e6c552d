package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all runtime configuration for the application.
type AppConfig struct {
	Port         string
	DBPath       string
	SecretKey    string
	Timezone     string
	LogLevel     string
	Environment  string
	CookieSecure bool

	// Google Sheets activity log. Disabled when the credentials file or
	// spreadsheet ID is unset.
	SheetsCredentialsFile string
	SheetsSpreadsheetID   string
	SheetsWorksheet       string
}

// Load reads configuration from environment variables and a .env file when
// one is present. godotenv never overrides variables already set in the
// environment.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port:                  getEnv("PORT", "8080"),
		DBPath:                getEnv("DB_PATH", filepath.Join("data", "petal.db")),
		SecretKey:             os.Getenv("SECRET_KEY"),
		Timezone:              getEnv("TZ", "UTC"),
		LogLevel:              strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment:           strings.ToLower(getEnv("ENVIRONMENT", "development")),
		CookieSecure:          getEnv("COOKIE_SECURE", "") == "1",
		SheetsCredentialsFile: os.Getenv("SHEETS_CREDENTIALS_FILE"),
		SheetsSpreadsheetID:   os.Getenv("SHEETS_SPREADSHEET_ID"),
		SheetsWorksheet:       getEnv("SHEETS_WORKSHEET", "Activity"),
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is not set")
	}

	return cfg, nil
}

// SheetsEnabled reports whether the activity sink has enough configuration
// to be constructed.
func (cfg *AppConfig) SheetsEnabled() bool {
	return cfg.SheetsCredentialsFile != "" && cfg.SheetsSpreadsheetID != ""
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
