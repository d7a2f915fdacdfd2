// Package classifier provides the fixed roster of candidate models the
// trainer fits and compares, behind a single Classifier interface, plus
// tagged serialization so a trained model can be stored and reloaded
// without knowing its concrete kind up front.
package classifier

import (
	"encoding/json"
	"fmt"

	"smartspend/internal/vectorizer"
)

// Kind tags for the roster, in fixed evaluation order.
const (
	KindLinear  = "linear_svm"
	KindRBF     = "rbf_svm"
	KindBoosted = "boosted_stumps"
)

// Classifier maps a feature vector to a class code in [0, K).
// Implementations must be deterministic under their fixed seed and must
// be safe for concurrent Predict calls once fitted.
type Classifier interface {
	Kind() string
	Fit(X []vectorizer.FeatureVector, y []int, dims, classes int) error
	Predict(x vectorizer.FeatureVector) int
}

// DefaultRoster returns fresh instances of every candidate in fixed
// order: linear-margin first, kernelized second, boosted ensemble last.
// Ties in evaluation accuracy resolve to the earliest position.
func DefaultRoster() []Classifier {
	return []Classifier{
		NewLinearSVM(),
		NewRBFSVM(),
		NewBoostedStumps(),
	}
}

// makers restores an empty model of each kind during deserialization.
var makers = map[string]func() Classifier{
	KindLinear:  func() Classifier { return NewLinearSVM() },
	KindRBF:     func() Classifier { return NewRBFSVM() },
	KindBoosted: func() Classifier { return NewBoostedStumps() },
}

type envelope struct {
	Kind  string          `json:"kind"`
	Model json.RawMessage `json:"model"`
}

// Marshal serializes a fitted classifier together with its kind tag.
func Marshal(c Classifier) ([]byte, error) {
	model, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal %s model: %w", c.Kind(), err)
	}
	return json.Marshal(envelope{Kind: c.Kind(), Model: model})
}

// Unmarshal restores a classifier from its tagged serialized form.
func Unmarshal(data []byte) (Classifier, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal model envelope: %w", err)
	}
	maker, ok := makers[env.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown model kind %q", env.Kind)
	}
	c := maker()
	if err := json.Unmarshal(env.Model, c); err != nil {
		return nil, fmt.Errorf("unmarshal %s model: %w", env.Kind, err)
	}
	return c, nil
}

// argmax returns the index of the largest score; ties resolve to the
// lowest index so predictions are deterministic.
func argmax(scores []float64) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}

// balancedWeights compensates class imbalance with inverse-frequency
// weights: n / (K * count_k). Rare categories get proportionally larger
// update steps so common ones do not simply outvote them.
func balancedWeights(y []int, classes int) []float64 {
	counts := make([]int, classes)
	for _, code := range y {
		counts[code]++
	}
	weights := make([]float64, classes)
	n := float64(len(y))
	for k, count := range counts {
		if count == 0 {
			weights[k] = 0
			continue
		}
		weights[k] = n / (float64(classes) * float64(count))
	}
	return weights
}

func validateFitInput(X []vectorizer.FeatureVector, y []int, dims, classes int) error {
	if len(X) == 0 {
		return fmt.Errorf("no training vectors")
	}
	if len(X) != len(y) {
		return fmt.Errorf("vector/label count mismatch: %d vs %d", len(X), len(y))
	}
	if classes < 2 {
		return fmt.Errorf("need at least 2 classes, got %d", classes)
	}
	if dims < 1 {
		return fmt.Errorf("need at least 1 feature dimension, got %d", dims)
	}
	for _, code := range y {
		if code < 0 || code >= classes {
			return fmt.Errorf("label code %d outside [0, %d)", code, classes)
		}
	}
	return nil
}
