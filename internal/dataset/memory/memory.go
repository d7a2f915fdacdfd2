// Package memory provides an in-memory dataset source for tests and
// local runs without external storage.
package memory

import (
	"context"
	"sync"

	"smartspend/internal/core"
)

type Store struct {
	mu       sync.Mutex
	examples []core.LabeledExample
}

func New(examples []core.LabeledExample) *Store {
	return &Store{examples: append([]core.LabeledExample(nil), examples...)}
}

// Add appends a validated labeled example.
func (s *Store) Add(_ context.Context, e core.LabeledExample) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.examples = append(s.examples, e)
	return nil
}

// LoadExamples returns a copy of the stored examples.
func (s *Store) LoadExamples(_ context.Context) ([]core.LabeledExample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.LabeledExample(nil), s.examples...), nil
}
