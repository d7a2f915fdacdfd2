// Package dataset defines the ports through which the training pipeline
// obtains labeled examples, with CSV, SQLite, Google Sheets, and
// in-memory backends.
package dataset

import (
	"context"

	"smartspend/internal/core"
)

type (
	// Source loads the full labeled dataset for a training run.
	Source interface {
		LoadExamples(ctx context.Context) ([]core.LabeledExample, error)
	}

	// RunRecorder keeps a history of completed training runs.
	RunRecorder interface {
		RecordTrainingRun(ctx context.Context, run core.TrainingRun) (int64, error)
		ListTrainingRuns(ctx context.Context, limit int) ([]core.TrainingRun, error)
	}
)
