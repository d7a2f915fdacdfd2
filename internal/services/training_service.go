package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"smartspend/internal/amqp"
	"smartspend/internal/artifact"
	"smartspend/internal/core"
	"smartspend/internal/dataset"
	applog "smartspend/internal/log"
	"smartspend/internal/trainer"
)

// TrainingService orchestrates a full training pass: load the dataset,
// train and select a model, persist the artifact bundle, and announce
// the update. Recorder and AMQP client are optional; history recording
// and messaging failures never fail a training run whose artifacts are
// already on disk.
type TrainingService struct {
	source      dataset.Source
	recorder    dataset.RunRecorder
	trainer     *trainer.Trainer
	amqpClient  *amqp.Client
	artifactDir string
}

func NewTrainingService(source dataset.Source, recorder dataset.RunRecorder, t *trainer.Trainer, amqpClient *amqp.Client, artifactDir string) *TrainingService {
	return &TrainingService{
		source:      source,
		recorder:    recorder,
		trainer:     t,
		amqpClient:  amqpClient,
		artifactDir: artifactDir,
	}
}

// Run executes one training pass and returns the training result.
func (s *TrainingService) Run(ctx context.Context) (*trainer.Result, error) {
	started := time.Now()

	examples, err := s.source.LoadExamples(ctx)
	if err != nil {
		return nil, fmt.Errorf("load examples: %w", err)
	}

	result, err := s.trainer.Train(ctx, examples)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	if err := artifact.Save(result.Bundle, s.artifactDir); err != nil {
		return nil, fmt.Errorf("save artifacts: %w", err)
	}

	slog.InfoContext(ctx, "Training run completed",
		applog.FieldModelKind, result.SelectedKind,
		applog.FieldAccuracy, result.Accuracy,
		applog.FieldExampleCount, result.ExampleCount,
		applog.FieldArtifactDir, s.artifactDir,
		applog.FieldDuration, time.Since(started).Milliseconds())

	runID := s.recordRun(ctx, result)
	s.publishModelUpdated(ctx, result, runID)

	return result, nil
}

// recordRun persists the run in history when a recorder is configured.
// Returns 0 when recording is disabled or fails.
func (s *TrainingService) recordRun(ctx context.Context, result *trainer.Result) int64 {
	if s.recorder == nil {
		return 0
	}

	run := core.TrainingRun{
		ModelKind:    result.SelectedKind,
		Accuracy:     result.Accuracy,
		ExampleCount: result.ExampleCount,
	}

	id, err := s.recorder.RecordTrainingRun(ctx, run)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to record training run",
			applog.FieldError, err,
			applog.FieldModelKind, result.SelectedKind)
		return 0
	}
	return id
}

func (s *TrainingService) publishModelUpdated(ctx context.Context, result *trainer.Result, runID int64) {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping model updated message")
		return
	}

	msg := amqp.NewModelUpdatedMessage(result.SelectedKind, result.Accuracy, result.ExampleCount, runID)
	if err := s.amqpClient.PublishModelUpdated(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish model updated message",
			"error", err,
			"model_kind", result.SelectedKind)
		// Don't fail the run - artifacts are already saved
	}
}
