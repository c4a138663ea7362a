// Package config provides smkit settings read from environment variables.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds smkit settings. Empty AWS fields fall back to the SDK's own
// resolution (AWS_REGION, AWS_PROFILE, shared config files).
type Config struct {
	// Region overrides the AWS region.
	Region string
	// Profile selects a shared config profile.
	Profile string
	// EndpointURL points the client at a custom endpoint such as LocalStack.
	EndpointURL string

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string

	// Concurrency caps parallel API calls of commands that fan out.
	Concurrency int
	// Timeout bounds a whole command. Zero disables it.
	Timeout time.Duration
}

// Load reads the configuration, loading the nearest .env file first.
// Variables already present in the environment take precedence.
func Load() *Config {
	loadDotEnv()

	return &Config{
		Region:      env.GetString("SMKIT_REGION", ""),
		Profile:     env.GetString("SMKIT_PROFILE", ""),
		EndpointURL: env.GetString("SMKIT_ENDPOINT_URL", ""),
		LogLevel:    env.GetString("SMKIT_LOG_LEVEL", "warn"),
		Concurrency: max(env.GetInt("SMKIT_CONCURRENCY", 5), 1),
		Timeout:     env.GetDuration("SMKIT_TIMEOUT_SECONDS", 0, time.Second),
	}
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values map to warn.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// loadDotEnv loads the first .env file found from the working directory upward.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	for dir := cwd; ; {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)

			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}

		dir = parent
	}
}
