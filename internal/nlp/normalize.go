// Package nlp implements the deterministic text-cleaning pass applied
// to expense descriptions, identically at training and inference time.
package nlp

import "strings"

const minTokenLen = 3

// Normalizer cleans free-text descriptions into the normalized form the
// vectorizer consumes. It is a pure function of its input: no state is
// retained between calls, and normalization is idempotent.
type Normalizer struct {
	reducer Reducer
}

// New creates a normalizer with the given token reduction strategy.
func New(reducer Reducer) *Normalizer {
	if reducer == nil {
		reducer = IdentityReducer{}
	}
	return &Normalizer{reducer: reducer}
}

// NewBasic creates a normalizer that never lemmatizes, relying only on
// the fixed stop-word and length filters.
func NewBasic() *Normalizer {
	return New(IdentityReducer{})
}

// Normalize lower-cases text, deletes every character that is not an
// ASCII letter or whitespace, splits on whitespace, drops stop-words and
// tokens shorter than three characters, reduces the survivors, and
// rejoins them with single spaces. An input that normalizes to the empty
// string is valid.
func (n *Normalizer) Normalize(text string) string {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		}
	}

	var out []string
	for _, token := range strings.Fields(b.String()) {
		if !keepToken(token) {
			continue
		}
		token = n.reducer.Reduce(token)
		// A lemma may itself be a stop-word or fall under the length
		// floor; re-filtering keeps normalization idempotent.
		if !keepToken(token) {
			continue
		}
		out = append(out, token)
	}
	return strings.Join(out, " ")
}

func keepToken(token string) bool {
	return len(token) >= minTokenLen && !IsStopWord(token)
}
