package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// LabeledExample is a single training unit: a free-text expense
	// description paired with the category a human assigned to it.
	LabeledExample struct {
		Description string
		Category    string
	}

	// Prediction is the outcome of classifying one description.
	Prediction struct {
		Description string
		Category    string
	}

	// TrainingRun records the outcome of one end-to-end training run.
	TrainingRun struct {
		ID           int64
		ModelKind    string
		Accuracy     float64
		ExampleCount int
		CreatedAt    time.Time
	}
)

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
)

func (e LabeledExample) Validate() error {
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(e.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// Categories returns the distinct category strings present in examples,
// in first-seen order.
func Categories(examples []LabeledExample) []string {
	seen := make(map[string]struct{}, len(examples))
	var out []string
	for _, e := range examples {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}
