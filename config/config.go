// Package config loads service configuration from environment variables.
//
// Environment variables:
//   - PORT: HTTP listen port (default: 8080)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - AUTH_TOKEN: Bearer token required on the translate endpoint (empty = no auth)
//   - DATABASE_PATH: SQLite database file path (default: ./translations.db)
//   - REDIS_URL: Redis connection URL for the edge tier (empty = in-memory edge cache)
//   - EDGE_TTL: Edge cache TTL in seconds (default: 86400)
//   - OPENAI_API_KEY: OpenAI API key (required)
//   - OPENAI_MODEL: OpenAI model (default: gpt-4o-mini)
//   - OPENAI_BASE_URL: Custom OpenAI-compatible endpoint (optional)
//   - RATE_LIMIT_RPM: Provider requests per minute (0 = unlimited)
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration values for the translation service.
type Config struct {
	Port     string
	LogLevel string

	AuthToken string

	DatabasePath string

	RedisURL string
	EdgeTTL  int

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	RateLimitRPM int
}

// Load creates a Config from environment variables with defaults applied.
// Call Validate before use.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AuthToken:     os.Getenv("AUTH_TOKEN"),
		DatabasePath:  getEnv("DATABASE_PATH", "./translations.db"),
		RedisURL:      os.Getenv("REDIS_URL"),
		EdgeTTL:       getEnvInt("EDGE_TTL", 86400),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		RateLimitRPM:  getEnvInt("RATE_LIMIT_RPM", 0),
	}
}

// Validate checks that required values are present and sane.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %w", err)
	}
	if c.EdgeTTL < 0 {
		return fmt.Errorf("EDGE_TTL must not be negative")
	}
	if c.RateLimitRPM < 0 {
		return fmt.Errorf("RATE_LIMIT_RPM must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
