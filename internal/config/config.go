// Package config reads service configuration from the environment.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port         string
	GeminiAPIKey string
	QlooAPIKey   string
	QlooAPIURL   string
	DatabasePath string
}

// Load builds a Config from the environment. GEMINI_API_KEY is the only
// required value; an empty DatabasePath selects the in-memory store.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getenv("PORT", "8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		QlooAPIKey:   os.Getenv("QLOO_API_KEY"),
		QlooAPIURL:   getenv("QLOO_API_URL", "https://hackathon.api.qloo.com"),
		DatabasePath: os.Getenv("DATABASE_PATH"),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
