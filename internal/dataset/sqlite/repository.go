// Package sqlite stores the labeled dataset and the training-run
// history in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"smartspend/internal/core"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// AddExample stores one labeled example and returns its id.
func (r *Repository) AddExample(ctx context.Context, e core.LabeledExample) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO labeled_examples (description, category) VALUES (?, ?)`,
		e.Description, e.Category)
	if err != nil {
		return 0, fmt.Errorf("insert labeled example: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Labeled example saved",
		"id", id,
		"category", e.Category)
	return id, nil
}

// LoadExamples implements dataset.Source.
func (r *Repository) LoadExamples(ctx context.Context) ([]core.LabeledExample, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT description, category FROM labeled_examples ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query labeled examples: %w", err)
	}
	defer rows.Close()

	var examples []core.LabeledExample
	for rows.Next() {
		var e core.LabeledExample
		if err := rows.Scan(&e.Description, &e.Category); err != nil {
			return nil, fmt.Errorf("scan labeled example: %w", err)
		}
		examples = append(examples, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate labeled examples: %w", err)
	}
	return examples, nil
}

// RecordTrainingRun implements dataset.RunRecorder.
func (r *Repository) RecordTrainingRun(ctx context.Context, run core.TrainingRun) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO training_runs (model_kind, accuracy, example_count) VALUES (?, ?, ?)`,
		run.ModelKind, run.Accuracy, run.ExampleCount)
	if err != nil {
		return 0, fmt.Errorf("insert training run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Training run recorded",
		"id", id,
		"model_kind", run.ModelKind,
		"accuracy", run.Accuracy,
		"example_count", run.ExampleCount)
	return id, nil
}

// ListTrainingRuns implements dataset.RunRecorder, newest first.
func (r *Repository) ListTrainingRuns(ctx context.Context, limit int) ([]core.TrainingRun, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, model_kind, accuracy, example_count, created_at
		 FROM training_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query training runs: %w", err)
	}
	defer rows.Close()

	var runs []core.TrainingRun
	for rows.Next() {
		var run core.TrainingRun
		var createdAt string
		if err := rows.Scan(&run.ID, &run.ModelKind, &run.Accuracy, &run.ExampleCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan training run: %w", err)
		}
		if ts, err := time.Parse("2006-01-02 15:04:05", createdAt); err == nil {
			run.CreatedAt = ts
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate training runs: %w", err)
	}
	return runs, nil
}
