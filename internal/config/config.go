// Package config handles application configuration loading from
// environment variables, with .env file support for development. It
// provides the centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the
// environment. Immutable after Load.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// SiteURL is the public base URL, used for feed and sitemap links.
	SiteURL string

	// Content store (Cosmic bucket) credentials
	CosmicBucketSlug string
	CosmicReadKey    string
	CosmicAPIEnv     string
	CosmicAPIURL     string // override for tests; empty uses the public endpoint

	// ContactWebhookURL receives contact form submissions. Empty
	// disables the contact form POST handler.
	ContactWebhookURL string
}

// Load reads configuration from the environment, first applying any
// .env file in the working directory (missing files are ignored).
// Returns an error if critical values are missing in production mode.
func Load() (*Config, error) {
	// .env never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		SiteURL: envOrDefault("SITE_URL", "http://localhost:8080"),

		CosmicBucketSlug: os.Getenv("COSMIC_BUCKET_SLUG"),
		CosmicReadKey:    os.Getenv("COSMIC_READ_KEY"),
		CosmicAPIEnv:     envOrDefault("COSMIC_API_ENV", "staging"),
		CosmicAPIURL:     os.Getenv("COSMIC_API_URL"),

		ContactWebhookURL: os.Getenv("CONTACT_WEBHOOK_URL"),
	}

	if cfg.CosmicBucketSlug == "" {
		return nil, fmt.Errorf("COSMIC_BUCKET_SLUG must be set")
	}
	if cfg.Env == "production" && cfg.CosmicReadKey == "" {
		return nil, fmt.Errorf("COSMIC_READ_KEY must be set in production")
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if
// unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
