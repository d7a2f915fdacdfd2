// Package predictor answers single-description classification requests
// against a trained artifact bundle.
package predictor

import (
	"errors"
	"fmt"

	"smartspend/internal/artifact"
	"smartspend/internal/nlp"
)

// ErrInference marks any internal failure during Predict. The caller
// decides whether to substitute a fallback category; this package never
// guesses a label to mask an error.
var ErrInference = errors.New("inference failed")

// Service classifies expense descriptions. It loads the artifact bundle
// once at construction and is read-only afterwards, so it is safe for
// concurrent use. Construct it once per process, at startup, not on the
// request path.
type Service struct {
	bundle *artifact.Bundle
	norm   *nlp.Normalizer
}

// New loads the artifact bundle from dir. Loading reads from disk and is
// intended to happen once per process lifetime.
func New(dir string, norm *nlp.Normalizer) (*Service, error) {
	bundle, err := artifact.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load artifact bundle: %w", err)
	}
	return NewFromBundle(bundle, norm), nil
}

// NewFromBundle wraps an already loaded bundle, for callers that trained
// in-process.
func NewFromBundle(bundle *artifact.Bundle, norm *nlp.Normalizer) *Service {
	if norm == nil {
		norm = nlp.NewBasic()
	}
	return &Service{bundle: bundle, norm: norm}
}

// Predict normalizes the raw description, projects it onto the bundle's
// vocabulary, scores it, and decodes the winning class back to a
// category string. An input that normalizes to nothing is valid and
// yields the model's deterministic default prediction.
func (s *Service) Predict(description string) (string, error) {
	vec, err := s.bundle.Vectorizer.Transform(s.norm.Normalize(description))
	if err != nil {
		return "", fmt.Errorf("%w: transform: %v", ErrInference, err)
	}

	code := s.bundle.Model.Predict(vec)
	category, err := s.bundle.Codec.Decode(code)
	if err != nil {
		return "", fmt.Errorf("%w: decode class %d: %v", ErrInference, code, err)
	}
	return category, nil
}

// Categories returns the category strings this service can predict.
func (s *Service) Categories() []string {
	out := make([]string, len(s.bundle.Codec.Categories))
	copy(out, s.bundle.Codec.Categories)
	return out
}
