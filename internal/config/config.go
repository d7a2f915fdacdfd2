package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Dataset backend selection
	DatasetBackend string

	// CSV backend
	CSVDatasetPath string

	// SQLite backend
	SQLiteDBPath string

	// Google Sheets backend
	GoogleSpreadsheetID string
	GoogleDatasetRange  string

	// Model artifacts
	ArtifactDir   string
	LemmaDictPath string

	// AMQP
	AMQPURL          string
	AMQPExchange     string
	AMQPTrainQueue   string
	AMQPUpdatesQueue string

	// Prediction cache
	PredictionCacheSize int
	PredictionCacheTTL  time.Duration

	// Worker
	RetrainInterval time.Duration
}

func Load() *Config {
	cfg := &Config{
		DatasetBackend: getEnv("DATASET_BACKEND", "sqlite"),

		CSVDatasetPath: getEnv("CSV_DATASET_PATH", "./data/dataset.csv"),
		SQLiteDBPath:   getEnv("SQLITE_DB_PATH", "./data/smartspend.db"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleDatasetRange:  getEnv("GOOGLE_DATASET_RANGE", "Dataset!A:B"),

		ArtifactDir:   getEnv("ARTIFACT_DIR", "./models"),
		LemmaDictPath: getEnv("LEMMA_DICT_PATH", ""),

		AMQPURL:          getEnv("AMQP_URL", ""),
		AMQPExchange:     getEnv("AMQP_EXCHANGE", "smartspend"),
		AMQPTrainQueue:   getEnv("AMQP_TRAIN_QUEUE", "train_requests"),
		AMQPUpdatesQueue: getEnv("AMQP_UPDATES_QUEUE", "model_updates"),

		PredictionCacheSize: getEnvInt("PREDICTION_CACHE_SIZE", 512),
		PredictionCacheTTL:  getEnvDuration("PREDICTION_CACHE_TTL", 10*time.Minute),

		RetrainInterval: getEnvDuration("RETRAIN_INTERVAL", 24*time.Hour),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate dataset backend
	validBackends := []string{"csv", "sqlite", "sheets", "memory"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DatasetBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid dataset backend '%s': must be one of %v", c.DatasetBackend, validBackends))
	}

	// Validate CSV configuration if backend is csv
	if c.DatasetBackend == "csv" {
		if c.CSVDatasetPath == "" {
			errors = append(errors, "CSV dataset path cannot be empty when using csv backend")
		} else if _, err := os.Stat(c.CSVDatasetPath); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("CSV dataset file does not exist: %s", c.CSVDatasetPath))
		}
	}

	// Validate SQLite configuration if backend is sqlite
	if c.DatasetBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			// Check if directory exists or can be created
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate Google Sheets configuration if backend is sheets
	if c.DatasetBackend == "sheets" {
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using sheets backend")
		}
		if c.GoogleDatasetRange == "" {
			errors = append(errors, "Google dataset range cannot be empty when using sheets backend")
		}
	}

	// Validate artifact directory
	if c.ArtifactDir == "" {
		errors = append(errors, "artifact directory cannot be empty")
	}

	// Validate lemma dictionary file if provided
	if c.LemmaDictPath != "" {
		if _, err := os.Stat(c.LemmaDictPath); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("lemma dictionary file does not exist: %s", c.LemmaDictPath))
		}
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPTrainQueue == "" {
			errors = append(errors, "AMQP train queue name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPUpdatesQueue == "" {
			errors = append(errors, "AMQP updates queue name cannot be empty when AMQP URL is provided")
		}
	}

	// Validate prediction cache
	if c.PredictionCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid prediction cache size %d: must be at least 1", c.PredictionCacheSize))
	} else if c.PredictionCacheSize > 100000 {
		errors = append(errors, fmt.Sprintf("invalid prediction cache size %d: must be at most 100000", c.PredictionCacheSize))
	}

	if c.PredictionCacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid prediction cache TTL %v: must be at least 1 second", c.PredictionCacheTTL))
	}

	// Validate worker configuration
	if c.RetrainInterval < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid retrain interval %v: must be at least 1 minute", c.RetrainInterval))
	} else if c.RetrainInterval > 7*24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid retrain interval %v: must be at most 7 days", c.RetrainInterval))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
