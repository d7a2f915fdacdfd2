package nlp

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Reducer maps a token to its reduced (lemma/root) form. Implementations
// must be pure: the same token always reduces to the same output.
type Reducer interface {
	Reduce(token string) string
}

// IdentityReducer passes tokens through unchanged. It is the fallback
// when no lemma dictionary is available in a deployment.
type IdentityReducer struct{}

func (IdentityReducer) Reduce(token string) string { return token }

// DictionaryReducer reduces tokens via a fixed form-to-lemma dictionary.
// Tokens absent from the dictionary pass through unchanged.
type DictionaryReducer struct {
	lemmas map[string]string
}

// NewDictionaryReducer builds a reducer from an in-memory dictionary.
func NewDictionaryReducer(lemmas map[string]string) *DictionaryReducer {
	m := make(map[string]string, len(lemmas))
	for form, lemma := range lemmas {
		m[strings.ToLower(form)] = strings.ToLower(lemma)
	}
	return &DictionaryReducer{lemmas: m}
}

// LoadDictionaryReducer reads a dictionary file with one "form lemma"
// pair per line. Blank lines and lines starting with '#' are skipped.
func LoadDictionaryReducer(path string) (*DictionaryReducer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lemma dictionary: %w", err)
	}
	defer f.Close()

	lemmas := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed dictionary line %q", line)
		}
		lemmas[strings.ToLower(fields[0])] = strings.ToLower(fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lemma dictionary: %w", err)
	}
	return &DictionaryReducer{lemmas: lemmas}, nil
}

func (r *DictionaryReducer) Reduce(token string) string {
	if lemma, ok := r.lemmas[token]; ok {
		return lemma
	}
	return token
}

// ReducerFromDictPath selects the reduction strategy once at startup:
// a dictionary reducer when path names a readable dictionary file,
// the identity reducer otherwise.
func ReducerFromDictPath(path string) (Reducer, error) {
	if path == "" {
		return IdentityReducer{}, nil
	}
	return LoadDictionaryReducer(path)
}
