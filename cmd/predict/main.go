package main

import (
	"bufio"
	"fmt"
	"os"

	"smartspend/internal/cli"
	"smartspend/internal/predictor"
)

// fallbackCategory is what we print when inference fails; the predictor
// itself never substitutes a label for an error.
const fallbackCategory = "Uncategorized"

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	cfg := cli.LoadAndValidateConfig(logger)

	norm := cli.BuildNormalizer(logger, cfg.LemmaDictPath)

	svc, err := predictor.New(cfg.ArtifactDir, norm)
	if err != nil {
		logger.Error("Failed to load model artifacts, run train first", "error", err, "artifact_dir", cfg.ArtifactDir)
		os.Exit(1)
	}

	cached := predictor.NewCached(svc, cfg.PredictionCacheSize, cfg.PredictionCacheTTL)

	logger.Info("Model loaded",
		"artifact_dir", cfg.ArtifactDir,
		"categories", svc.Categories())

	// Descriptions come from argv, or from stdin one per line.
	if len(os.Args) > 1 {
		for _, description := range os.Args[1:] {
			fmt.Println(classify(cached, description))
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(classify(cached, scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		logger.Error("Failed to read input", "error", err)
		os.Exit(1)
	}
}

func classify(p *predictor.Cached, description string) string {
	category, err := p.Predict(description)
	if err != nil {
		return fmt.Sprintf("%s\t%s", description, fallbackCategory)
	}
	return fmt.Sprintf("%s\t%s", description, category)
}
