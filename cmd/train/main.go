package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"smartspend/internal/amqp"
	"smartspend/internal/backend"
	"smartspend/internal/cli"
	"smartspend/internal/services"
	"smartspend/internal/trainer"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting train")

	cfg := cli.LoadAndValidateConfig(logger)

	// Cancel the run on SIGINT/SIGTERM; a one-shot training pass has no
	// other shutdown path.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize dataset backend
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Failed to build backend config", "error", err)
		os.Exit(1)
	}

	factory := backend.NewFactory(logger)
	source, err := factory.CreateSource(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize dataset backend", "error", err, "backend", cfg.DatasetBackend)
		os.Exit(1)
	}
	if source.Cleanup != nil {
		defer source.Cleanup()
	}

	// Initialize AMQP client for announcing model updates (optional)
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPTrainQueue, cfg.AMQPUpdatesQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without messaging", "error", err)
			amqpClient = nil
		} else {
			defer amqpClient.Close()
		}
	} else {
		logger.Info("AMQP disabled - model updates will not be announced")
	}

	norm := cli.BuildNormalizer(logger, cfg.LemmaDictPath)

	svc := services.NewTrainingService(source.Source, source.Recorder, trainer.New(norm), amqpClient, cfg.ArtifactDir)

	result, err := svc.Run(ctx)
	if err != nil {
		switch {
		case errors.Is(err, trainer.ErrEmptyDataset):
			logger.Error("Dataset is empty, nothing to train on", "backend", cfg.DatasetBackend)
		case errors.Is(err, trainer.ErrInsufficientData):
			logger.Error("Dataset has too few examples per category to train", "error", err)
		default:
			logger.Error("Training failed", "error", err)
		}
		os.Exit(1)
	}

	for _, score := range result.Scores {
		logger.Info("Candidate model evaluated", "model_kind", score.Kind, "accuracy", score.Accuracy)
	}

	logger.Info("Training complete",
		"model_kind", result.SelectedKind,
		"accuracy", result.Accuracy,
		"example_count", result.ExampleCount,
		"artifact_dir", cfg.ArtifactDir)
}
