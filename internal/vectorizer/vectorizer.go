// Package vectorizer converts normalized text into fixed-width TF-IDF
// feature vectors. A vectorizer is fit once on a training corpus and is
// frozen thereafter; vectors from different fitted instances are not
// comparable.
package vectorizer

import (
	"errors"
	"math"
	"sort"
	"strings"
)

const (
	// MaxFeatures caps the learned vocabulary at the most frequent terms.
	MaxFeatures = 1000
	// maxDocFreq drops terms appearing in more than this share of documents.
	maxDocFreq = 0.8
	// minDocCount drops terms appearing in fewer documents than this.
	minDocCount = 1
)

var ErrNotFitted = errors.New("vectorizer not fitted")

// FeatureValue is one non-zero entry of a sparse feature vector.
type FeatureValue struct {
	Index int     `json:"i"`
	Value float64 `json:"v"`
}

// FeatureVector is a sparse vector of term weights, sorted by index.
// Absent indices are zero. The empty vector is valid and represents a
// text with no in-vocabulary terms.
type FeatureVector []FeatureValue

// Dot returns the dot product with a dense weight vector. Entries beyond
// the dense vector's length are ignored.
func (v FeatureVector) Dot(w []float64) float64 {
	var sum float64
	for _, fv := range v {
		if fv.Index < len(w) {
			sum += fv.Value * w[fv.Index]
		}
	}
	return sum
}

// SparseDot returns the dot product with another sparse vector.
func (v FeatureVector) SparseDot(o FeatureVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v) && j < len(o) {
		switch {
		case v[i].Index == o[j].Index:
			sum += v[i].Value * o[j].Value
			i++
			j++
		case v[i].Index < o[j].Index:
			i++
		default:
			j++
		}
	}
	return sum
}

// SquaredNorm returns the squared euclidean norm.
func (v FeatureVector) SquaredNorm() float64 {
	var sum float64
	for _, fv := range v {
		sum += fv.Value * fv.Value
	}
	return sum
}

// Vectorizer learns a unigram+bigram vocabulary with inverse-document-
// frequency weights. The exported fields are the full fitted state, so a
// JSON round-trip reproduces transforms exactly.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

func New() *Vectorizer {
	return &Vectorizer{}
}

// Fitted reports whether Fit has completed on this instance.
func (v *Vectorizer) Fitted() bool {
	return v.Vocabulary != nil
}

// Dims returns the fixed width of vectors produced by this instance.
func (v *Vectorizer) Dims() int {
	return len(v.IDF)
}

// Fit learns the vocabulary and IDF weights from a corpus of normalized
// texts. Terms in more than 80% of documents are dropped and the
// vocabulary is capped at the MaxFeatures most frequent terms, ties
// resolved lexicographically. Fitting twice is an error: a fitted
// vectorizer is immutable.
func (v *Vectorizer) Fit(corpus []string) error {
	if v.Fitted() {
		return errors.New("vectorizer already fitted")
	}

	docFreq := make(map[string]int)
	totalFreq := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, term := range terms(doc) {
			totalFreq[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	nDocs := len(corpus)
	kept := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df < minDocCount {
			continue
		}
		if float64(df) > maxDocFreq*float64(nDocs) {
			continue
		}
		kept = append(kept, term)
	}

	if len(kept) > MaxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if totalFreq[kept[i]] != totalFreq[kept[j]] {
				return totalFreq[kept[i]] > totalFreq[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:MaxFeatures]
	}
	sort.Strings(kept)

	v.Vocabulary = make(map[string]int, len(kept))
	v.IDF = make([]float64, len(kept))
	for i, term := range kept {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log(float64(1+nDocs)/float64(1+docFreq[term])) + 1
	}
	return nil
}

// Transform projects a single normalized text onto the fitted
// vocabulary. Term frequencies are dampened sub-linearly (1+log tf) and
// the result is l2-normalized. Terms outside the vocabulary contribute
// nothing; a text with no known terms yields the empty vector.
func (v *Vectorizer) Transform(text string) (FeatureVector, error) {
	if !v.Fitted() {
		return nil, ErrNotFitted
	}

	counts := make(map[int]int)
	for _, term := range terms(text) {
		if idx, ok := v.Vocabulary[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return FeatureVector{}, nil
	}

	vec := make(FeatureVector, 0, len(counts))
	for idx, count := range counts {
		tf := 1 + math.Log(float64(count))
		vec = append(vec, FeatureValue{Index: idx, Value: tf * v.IDF[idx]})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].Index < vec[j].Index })

	norm := math.Sqrt(vec.SquaredNorm())
	for i := range vec {
		vec[i].Value /= norm
	}
	return vec, nil
}

// terms extracts unigrams and bigrams from a whitespace-tokenized text.
func terms(text string) []string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, 0, 2*len(tokens)-1)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
