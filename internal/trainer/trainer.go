// Package trainer runs the offline training pipeline: normalize the
// labeled dataset, fit the label codec and vectorizer, fit every
// candidate classifier, and select the best performer on a held-out
// split. Training is a synchronous, run-to-completion batch job.
package trainer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"smartspend/internal/artifact"
	"smartspend/internal/classifier"
	"smartspend/internal/core"
	"smartspend/internal/labels"
	"smartspend/internal/nlp"
	"smartspend/internal/vectorizer"
)

const (
	// seed fixes the split permutation so two runs on identical input
	// produce identical bundles.
	seed = 42
	// evalFrac is the held-out share of each category.
	evalFrac = 0.2
)

var (
	ErrEmptyDataset     = errors.New("empty dataset")
	ErrInsufficientData = errors.New("insufficient data")
)

// CandidateScore is one roster entry's held-out evaluation result.
type CandidateScore struct {
	Kind     string
	Accuracy float64
}

// Result is the outcome of a training run: the persistable bundle plus
// the evaluation record behind the model choice.
type Result struct {
	Bundle       *artifact.Bundle
	SelectedKind string
	Accuracy     float64
	Scores       []CandidateScore
	ExampleCount int
}

// Trainer fits and selects classifiers. The roster factory is
// overridable for tests; production uses the default fixed roster.
type Trainer struct {
	norm   *nlp.Normalizer
	roster func() []classifier.Classifier
}

func New(norm *nlp.Normalizer) *Trainer {
	return &Trainer{norm: norm, roster: classifier.DefaultRoster}
}

// Train runs the full pipeline over the labeled examples.
func (t *Trainer) Train(ctx context.Context, examples []core.LabeledExample) (*Result, error) {
	if len(examples) == 0 {
		return nil, ErrEmptyDataset
	}
	for i, e := range examples {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("example %d: %w", i, err)
		}
	}

	normalized := make([]string, len(examples))
	categories := make([]string, len(examples))
	for i, e := range examples {
		normalized[i] = t.norm.Normalize(e.Description)
		categories[i] = e.Category
	}

	codec := labels.Fit(categories)
	if codec.Len() < 2 {
		return nil, fmt.Errorf("%w: need at least 2 categories, have %d", ErrInsufficientData, codec.Len())
	}
	y := make([]int, len(examples))
	for i, c := range categories {
		code, err := codec.Encode(c)
		if err != nil {
			return nil, fmt.Errorf("encode category: %w", err)
		}
		y[i] = code
	}

	rng := rand.New(rand.NewSource(seed))
	trainIdx, evalIdx, smallClass := stratifiedSplit(y, codec.Len(), evalFrac, rng)
	if smallClass >= 0 {
		category, _ := codec.Decode(smallClass)
		return nil, fmt.Errorf("%w: category %q has fewer than 2 examples", ErrInsufficientData, category)
	}

	// The vectorizer sees the training split only; the held-out split
	// must never influence vocabulary selection.
	vec := vectorizer.New()
	corpus := make([]string, len(trainIdx))
	for i, idx := range trainIdx {
		corpus[i] = normalized[idx]
	}
	if err := vec.Fit(corpus); err != nil {
		return nil, fmt.Errorf("fit vectorizer: %w", err)
	}

	trainX, trainY, err := transformSubset(vec, normalized, y, trainIdx)
	if err != nil {
		return nil, err
	}
	evalX, evalY, err := transformSubset(vec, normalized, y, evalIdx)
	if err != nil {
		return nil, err
	}

	candidates := t.roster()
	scores := make([]CandidateScore, 0, len(candidates))
	for _, c := range candidates {
		if err := c.Fit(trainX, trainY, vec.Dims(), codec.Len()); err != nil {
			return nil, fmt.Errorf("fit %s: %w", c.Kind(), err)
		}
		acc := accuracy(c, evalX, evalY)
		scores = append(scores, CandidateScore{Kind: c.Kind(), Accuracy: acc})
		slog.InfoContext(ctx, "Candidate evaluated",
			"model_kind", c.Kind(),
			"accuracy", acc,
			"train_size", len(trainIdx),
			"eval_size", len(evalIdx))
	}

	best := selectBest(scores)
	slog.InfoContext(ctx, "Model selected",
		"model_kind", scores[best].Kind,
		"accuracy", scores[best].Accuracy,
		"categories", codec.Len(),
		"examples", len(examples))

	return &Result{
		Bundle: &artifact.Bundle{
			Vectorizer: vec,
			Codec:      codec,
			Model:      candidates[best],
		},
		SelectedKind: scores[best].Kind,
		Accuracy:     scores[best].Accuracy,
		Scores:       scores,
		ExampleCount: len(examples),
	}, nil
}

func transformSubset(vec *vectorizer.Vectorizer, normalized []string, y []int, idx []int) ([]vectorizer.FeatureVector, []int, error) {
	X := make([]vectorizer.FeatureVector, len(idx))
	codes := make([]int, len(idx))
	for i, j := range idx {
		v, err := vec.Transform(normalized[j])
		if err != nil {
			return nil, nil, fmt.Errorf("transform example %d: %w", j, err)
		}
		X[i] = v
		codes[i] = y[j]
	}
	return X, codes, nil
}

func accuracy(c classifier.Classifier, X []vectorizer.FeatureVector, y []int) float64 {
	if len(X) == 0 {
		return 0
	}
	correct := 0
	for i, x := range X {
		if c.Predict(x) == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(X))
}

// selectBest picks the strictly highest accuracy; ties keep the earliest
// roster position.
func selectBest(scores []CandidateScore) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Accuracy > scores[best].Accuracy {
			best = i
		}
	}
	return best
}
