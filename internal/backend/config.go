package backend

import (
	"fmt"

	"smartspend/internal/config"
)

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	sourceType := SourceType(appConfig.DatasetBackend)
	if !sourceType.IsValid() {
		return Config{}, fmt.Errorf("invalid dataset backend in config: %s", appConfig.DatasetBackend)
	}

	return Config{
		Type:         sourceType,
		CSVPath:      appConfig.CSVDatasetPath,
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}, nil
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid dataset backend type: %s", c.Type)
	}

	switch c.Type {
	case CSVSource:
		if c.CSVPath == "" {
			return fmt.Errorf("CSV dataset path is required for csv backend")
		}
	case SQLiteSource:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLite database path is required for sqlite backend")
		}
	case SheetsSource, MemorySource:
		// Sheets credentials are validated by the client itself; the
		// memory backend needs nothing.
	}

	return nil
}

// SourceTypes returns all valid dataset backend types
func SourceTypes() []SourceType {
	return []SourceType{CSVSource, SQLiteSource, SheetsSource, MemorySource}
}
