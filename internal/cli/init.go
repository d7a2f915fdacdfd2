// Package cli provides common CLI initialization utilities shared by
// the cmd entry points.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"smartspend/internal/config"
	"smartspend/internal/nlp"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// BuildNormalizer constructs the text normalizer, loading the lemma
// dictionary when a path is configured. Exits the process on failure.
func BuildNormalizer(logger *slog.Logger, lemmaDictPath string) *nlp.Normalizer {
	reducer, err := nlp.ReducerFromDictPath(lemmaDictPath)
	if err != nil {
		logger.Error("Failed to load lemma dictionary", "error", err, "path", lemmaDictPath)
		os.Exit(1)
	}
	return nlp.New(reducer)
}
