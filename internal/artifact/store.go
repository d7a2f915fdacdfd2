// Package artifact persists the three fitted objects a trained
// classifier needs at serving time. The three files are logically one
// bundle: loading fails closed when any part is missing or unreadable.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"smartspend/internal/classifier"
	"smartspend/internal/labels"
	"smartspend/internal/vectorizer"
)

// Fixed relative file names inside a bundle directory. No schema
// versioning is performed; a bundle is only guaranteed compatible with a
// consumer built from matching code.
const (
	ModelFile      = "expense_model.json"
	VectorizerFile = "tfidf_vectorizer.json"
	LabelsFile     = "label_encoder.json"
)

var ErrIncompleteArtifact = errors.New("incomplete artifact bundle")

// Bundle is the unit of persistence: a trained model together with the
// fitted vectorizer and label codec that define its input and output
// domains. The three must always travel together.
type Bundle struct {
	Vectorizer *vectorizer.Vectorizer
	Codec      *labels.Codec
	Model      classifier.Classifier
}

// Save writes the three bundle parts to dir, creating it if needed.
func Save(bundle *Bundle, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}

	vecData, err := json.Marshal(bundle.Vectorizer)
	if err != nil {
		return fmt.Errorf("marshal vectorizer: %w", err)
	}
	labelData, err := json.Marshal(bundle.Codec)
	if err != nil {
		return fmt.Errorf("marshal label codec: %w", err)
	}
	modelData, err := classifier.Marshal(bundle.Model)
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}

	parts := map[string][]byte{
		VectorizerFile: vecData,
		LabelsFile:     labelData,
		ModelFile:      modelData,
	}
	for name, data := range parts {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// Load reads all three bundle parts from dir. Any missing, unreadable,
// or unparseable part yields ErrIncompleteArtifact.
func Load(dir string) (*Bundle, error) {
	vecData, err := readPart(dir, VectorizerFile)
	if err != nil {
		return nil, err
	}
	labelData, err := readPart(dir, LabelsFile)
	if err != nil {
		return nil, err
	}
	modelData, err := readPart(dir, ModelFile)
	if err != nil {
		return nil, err
	}

	var vec vectorizer.Vectorizer
	if err := json.Unmarshal(vecData, &vec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIncompleteArtifact, VectorizerFile, err)
	}
	var codec labels.Codec
	if err := json.Unmarshal(labelData, &codec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIncompleteArtifact, LabelsFile, err)
	}
	model, err := classifier.Unmarshal(modelData)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIncompleteArtifact, ModelFile, err)
	}

	return &Bundle{Vectorizer: &vec, Codec: &codec, Model: model}, nil
}

func readPart(dir, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIncompleteArtifact, name, err)
	}
	return data, nil
}
