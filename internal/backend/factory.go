package backend

import (
	"context"
	"fmt"
	"log/slog"

	"smartspend/internal/dataset/csv"
	"smartspend/internal/dataset/google"
	"smartspend/internal/dataset/memory"
	"smartspend/internal/dataset/sqlite"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new dataset source factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateSource implements Factory.CreateSource
func (f *DefaultFactory) CreateSource(ctx context.Context, config Config) (*SourceResult, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid dataset backend type: %s", config.Type)
	}

	switch config.Type {
	case CSVSource:
		return f.createCSVSource(config)
	case SQLiteSource:
		return f.createSQLiteSource(config)
	case SheetsSource:
		return f.createSheetsSource(ctx)
	case MemorySource:
		return f.createMemorySource()
	default:
		return nil, fmt.Errorf("unsupported dataset backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createCSVSource(config Config) (*SourceResult, error) {
	if config.CSVPath == "" {
		return nil, fmt.Errorf("CSV dataset path is required for csv backend")
	}

	f.logger.Info("Initialized CSV dataset backend", "path", config.CSVPath)

	return &SourceResult{
		Source: csv.NewSource(config.CSVPath),
	}, nil
}

func (f *DefaultFactory) createSQLiteSource(config Config) (*SourceResult, error) {
	repo, err := sqlite.NewRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite dataset backend", "db_path", config.SQLiteDBPath)

	return &SourceResult{
		Source:   repo,
		Recorder: repo,
		Cleanup:  repo.Close,
	}, nil
}

func (f *DefaultFactory) createSheetsSource(ctx context.Context) (*SourceResult, error) {
	cli, err := google.NewFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}

	f.logger.Info("Initialized Google Sheets dataset backend")

	return &SourceResult{
		Source: cli,
	}, nil
}

func (f *DefaultFactory) createMemorySource() (*SourceResult, error) {
	f.logger.Info("Initialized memory dataset backend")

	return &SourceResult{
		Source: memory.New(nil),
	}, nil
}
