// Package labels maps human-readable category strings to the integer
// class codes classifiers operate on, and back.
package labels

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrCodeOutOfRange  = errors.New("label code out of range")
)

// Codec is a bijective mapping between category strings and codes in
// [0, K). Codes are assigned by lexicographic order over the distinct
// categories observed at fit time; they are stable for the lifetime of
// one fitted instance only.
type Codec struct {
	Categories []string `json:"categories"`

	index map[string]int
}

// Fit builds a codec over the distinct categories in the input.
func Fit(categories []string) *Codec {
	distinct := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		distinct[c] = struct{}{}
	}
	sorted := make([]string, 0, len(distinct))
	for c := range distinct {
		sorted = append(sorted, c)
	}
	sort.Strings(sorted)

	c := &Codec{Categories: sorted}
	c.buildIndex()
	return c
}

func (c *Codec) buildIndex() {
	c.index = make(map[string]int, len(c.Categories))
	for i, cat := range c.Categories {
		c.index[cat] = i
	}
}

// Len returns the number of classes K.
func (c *Codec) Len() int {
	return len(c.Categories)
}

// Encode returns the code for a category seen at fit time.
func (c *Codec) Encode(category string) (int, error) {
	code, ok := c.index[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return code, nil
}

// Decode returns the category for a code in [0, K).
func (c *Codec) Decode(code int) (string, error) {
	if code < 0 || code >= len(c.Categories) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrCodeOutOfRange, code, len(c.Categories))
	}
	return c.Categories[code], nil
}

// UnmarshalJSON restores the codec and rebuilds the lookup index.
func (c *Codec) UnmarshalJSON(data []byte) error {
	type plain Codec
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	c.Categories = p.Categories
	c.buildIndex()
	return nil
}
