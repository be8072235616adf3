package config

import (
	"os"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Suggest endpoint
	SuggestBaseURL string
	SuggestTimeout time.Duration
	DefaultMarket  string // gl country code used when the form sends none

	// Modifier table override file (optional)
	ModifiersFile string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE
	SiteTagline string // env: SITE_TAGLINE
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:            getEnv("ENV", "development"),
		ServerAddr:     getEnv("SERVER_ADDR", ":3000"),
		SuggestBaseURL: getEnv("SUGGEST_BASE_URL", "https://suggestqueries.google.com/complete/search"),
		SuggestTimeout: getDuration("SUGGEST_TIMEOUT", 4*time.Second),
		DefaultMarket:  getEnv("DEFAULT_MARKET", "US"),
		ModifiersFile:  getEnv("MODIFIERS_FILE", "modifiers.yaml"),

		SiteTitle:   getEnv("SITE_TITLE", "Keyword Suggestion Engine"),
		SiteTagline: getEnv("SITE_TAGLINE", "Answer-the-public-style keyword ideas from autosuggest data"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
