// Package config loads process configuration from the environment, with
// optional .env file support.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. It is
// loaded once at startup and passed explicitly; there is no ambient global.
type Config struct {
	// APIKey authenticates requests to the Street View API. Required.
	APIKey string
	// OutputDir is where fetched images and HTML pages are written.
	OutputDir string
	// HTTPTimeout bounds each outbound API request.
	HTTPTimeout time.Duration
	// LogLevel controls stderr logging verbosity.
	LogLevel slog.Level
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present. A missing API key is a startup error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      os.Getenv("API_KEY"),
		OutputDir:   getEnv("STREET_VIEW_OUTPUT_DIR", "output"),
		HTTPTimeout: parseDuration(getEnv("STREET_VIEW_HTTP_TIMEOUT", "30s"), 30*time.Second),
		LogLevel:    parseLevel(getEnv("STREET_VIEW_LOG_LEVEL", "info")),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("config: API_KEY is required (set it in the environment or a .env file)")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
