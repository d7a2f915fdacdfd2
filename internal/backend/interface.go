package backend

import (
	"context"

	"smartspend/internal/dataset"
)

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// SourceResult contains the dataset source and optional extras created
// alongside it. Recorder is non-nil only for backends that can persist
// training-run history.
type SourceResult struct {
	Source   dataset.Source
	Recorder dataset.RunRecorder
	Cleanup  CleanupFunc
}

// Factory creates dataset sources based on configuration
type Factory interface {
	CreateSource(ctx context.Context, config Config) (*SourceResult, error)
}

// Config holds configuration for source creation
type Config struct {
	Type SourceType

	// CSV specific
	CSVPath string

	// SQLite specific
	SQLiteDBPath string

	// Google Sheets credentials and range come from the environment,
	// mirroring the sheets client.
}

// SourceType represents the type of dataset backend
type SourceType string

const (
	CSVSource    SourceType = "csv"
	SQLiteSource SourceType = "sqlite"
	SheetsSource SourceType = "sheets"
	MemorySource SourceType = "memory"
)

// String implements fmt.Stringer
func (st SourceType) String() string {
	return string(st)
}

// IsValid returns true if the source type is valid
func (st SourceType) IsValid() bool {
	switch st {
	case CSVSource, SQLiteSource, SheetsSource, MemorySource:
		return true
	default:
		return false
	}
}
