// Package csv loads labeled examples from a delimited file with
// "description" and "category" columns.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"smartspend/internal/core"
)

// Source reads one labeled example per data row from a CSV file.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) LoadExamples(ctx context.Context) ([]core.LabeledExample, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	descCol, catCol, err := columnIndices(header)
	if err != nil {
		return nil, err
	}

	var examples []core.LabeledExample
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		line++

		e := core.LabeledExample{
			Description: strings.TrimSpace(record[descCol]),
			Category:    strings.TrimSpace(record[catCol]),
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		examples = append(examples, e)
	}
	return examples, nil
}

func columnIndices(header []string) (desc, cat int, err error) {
	desc, cat = -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "description":
			desc = i
		case "category":
			cat = i
		}
	}
	if desc < 0 || cat < 0 {
		return 0, 0, fmt.Errorf("dataset header must contain description and category columns, got %v", header)
	}
	return desc, cat, nil
}
