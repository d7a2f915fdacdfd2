package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"smartspend/internal/artifact"
	"smartspend/internal/core"
	"smartspend/internal/dataset/memory"
	"smartspend/internal/nlp"
	"smartspend/internal/trainer"
)

type fakeRecorder struct {
	runs []core.TrainingRun
	err  error
}

func (f *fakeRecorder) RecordTrainingRun(ctx context.Context, run core.TrainingRun) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.runs = append(f.runs, run)
	return int64(len(f.runs)), nil
}

func (f *fakeRecorder) ListTrainingRuns(ctx context.Context, limit int) ([]core.TrainingRun, error) {
	return f.runs, nil
}

func trainingExamples() []core.LabeledExample {
	return []core.LabeledExample{
		{Description: "dinner at restaurant downtown", Category: "Food"},
		{Description: "grocery shopping weekly food", Category: "Food"},
		{Description: "pizza delivery friday night", Category: "Food"},
		{Description: "lunch with coworkers restaurant", Category: "Food"},
		{Description: "coffee and breakfast cafe", Category: "Food"},
		{Description: "takeaway sushi dinner food", Category: "Food"},
		{Description: "bakery bread and pastries", Category: "Food"},
		{Description: "restaurant bill birthday dinner", Category: "Food"},
		{Description: "monthly rent payment apartment", Category: "Housing"},
		{Description: "electricity bill apartment utilities", Category: "Housing"},
		{Description: "water bill monthly utilities", Category: "Housing"},
		{Description: "home insurance annual premium", Category: "Housing"},
		{Description: "apartment maintenance fee building", Category: "Housing"},
		{Description: "rent deposit new apartment", Category: "Housing"},
		{Description: "heating gas bill winter", Category: "Housing"},
		{Description: "property tax payment house", Category: "Housing"},
	}
}

func TestTrainingServiceRun(t *testing.T) {
	dir := t.TempDir()
	source := memory.New(trainingExamples())
	recorder := &fakeRecorder{}
	svc := NewTrainingService(source, recorder, trainer.New(nlp.NewBasic()), nil, dir)

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if result.SelectedKind == "" {
		t.Fatal("expected a selected model kind")
	}
	if result.ExampleCount != 16 {
		t.Fatalf("expected 16 examples, got %d", result.ExampleCount)
	}

	// Artifacts must be on disk and loadable.
	bundle, err := artifact.Load(dir)
	if err != nil {
		t.Fatalf("load artifacts: %v", err)
	}
	if got := bundle.Codec.Categories; len(got) != 2 {
		t.Fatalf("expected 2 categories in saved bundle, got %v", got)
	}

	for _, name := range []string{artifact.ModelFile, artifact.VectorizerFile, artifact.LabelsFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing artifact %s: %v", name, err)
		}
	}

	if len(recorder.runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(recorder.runs))
	}
	if recorder.runs[0].ModelKind != result.SelectedKind {
		t.Fatalf("recorded run kind %q, want %q", recorder.runs[0].ModelKind, result.SelectedKind)
	}
}

func TestTrainingServiceRecorderFailureIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	source := memory.New(trainingExamples())
	recorder := &fakeRecorder{err: errors.New("history unavailable")}
	svc := NewTrainingService(source, recorder, trainer.New(nlp.NewBasic()), nil, dir)

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run should succeed despite recorder failure, got: %v", err)
	}

	if _, err := artifact.Load(dir); err != nil {
		t.Fatalf("artifacts should still be saved: %v", err)
	}
}

func TestTrainingServiceEmptyDataset(t *testing.T) {
	svc := NewTrainingService(memory.New(nil), nil, trainer.New(nlp.NewBasic()), nil, t.TempDir())

	_, err := svc.Run(context.Background())
	if !errors.Is(err, trainer.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}
