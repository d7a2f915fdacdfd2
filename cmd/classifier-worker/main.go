package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"smartspend/internal/amqp"
	"smartspend/internal/backend"
	"smartspend/internal/cli"
	applog "smartspend/internal/log"
	"smartspend/internal/services"
	"smartspend/internal/trainer"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting classifier-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for classifier-worker")
		os.Exit(1)
	}

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

	// Initialize AMQP client for consuming train requests and announcing
	// model updates
	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPTrainQueue, cfg.AMQPUpdatesQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	norm := cli.BuildNormalizer(logger, cfg.LemmaDictPath)

	svc := services.NewTrainingService(source.Source, source.Recorder, trainer.New(norm), amqpClient, cfg.ArtifactDir)

	workerLog := applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentWorker)

	retrain := func(reason string) error {
		workerLog.Info("Running training pass", "reason", reason)
		result, err := svc.Run(ctx)
		if err != nil {
			// A dataset that is empty or too small is not a worker fault;
			// log and wait for more examples.
			if errors.Is(err, trainer.ErrEmptyDataset) || errors.Is(err, trainer.ErrInsufficientData) {
				workerLog.Warn("Skipping training pass", "reason", reason, applog.FieldError, err)
				return nil
			}
			return err
		}
		workerLog.Info("Training pass complete",
			"reason", reason,
			applog.FieldModelKind, result.SelectedKind,
			applog.FieldAccuracy, result.Accuracy,
			applog.FieldExampleCount, result.ExampleCount)
		return nil
	}

	// Train once on startup so a fresh deployment has artifacts before
	// the first request or tick arrives.
	if err := retrain("startup"); err != nil {
		logger.Error("Startup training failed", "error", err)
		// Don't exit - continue with normal operation
	}

	g, gctx := errgroup.WithContext(ctx)

	// Consume on-demand train requests
	g.Go(func() error {
		err := amqpClient.ConsumeTrainRequests(gctx, func(msg *amqp.TrainRequestMessage) error {
			return retrain(msg.Reason)
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	// Periodic retraining picks up dataset growth even when nobody asks
	g.Go(func() error {
		ticker := time.NewTicker(cfg.RetrainInterval)
		defer ticker.Stop()

		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if err := retrain("periodic"); err != nil {
					logger.Error("Periodic training failed", "error", err)
				}
			}
		}
	})

	logger.Info("Classifier worker running",
		"backend", cfg.DatasetBackend,
		"artifact_dir", cfg.ArtifactDir,
		"retrain_interval", cfg.RetrainInterval)

	if err := g.Wait(); err != nil {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Classifier worker shutdown complete")
}
