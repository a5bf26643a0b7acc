package config

import (
	"errors"
	"os"
)

// Config holds all runtime configuration, loaded from the environment.
// Callers are expected to run godotenv.Load() before Load.
type Config struct {
	Port        string
	Environment string

	// Database. Driver is "postgres" or "sqlite"; DatabaseURL is a DSN for
	// the chosen driver (postgres URL, or sqlite file path).
	DBDriver    string
	DatabaseURL string

	// Session signing secret. Required.
	SessionSecret string

	LogLevel string
	LogFile  string

	TemplateGlob string
	StaticDir    string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		Environment:   getEnvOrDefault("ENVIRONMENT", "development"),
		DBDriver:      getEnvOrDefault("DB_DRIVER", "postgres"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		LogFile:       getEnvOrDefault("LOG_FILE", "server.log"),
		TemplateGlob:  getEnvOrDefault("TEMPLATE_GLOB", "web/templates/*.html"),
		StaticDir:     getEnvOrDefault("STATIC_DIR", "web/static"),
	}

	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnvOrDefault returns environment variable or default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
