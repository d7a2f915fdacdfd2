package vectorizer

import (
	"encoding/json"
	"math"
	"testing"
)

func fitted(t *testing.T, corpus []string) *Vectorizer {
	t.Helper()
	v := New()
	if err := v.Fit(corpus); err != nil {
		t.Fatalf("fit: %v", err)
	}
	return v
}

func TestTransformBeforeFit(t *testing.T) {
	v := New()
	if _, err := v.Transform("lunch cafe"); err != ErrNotFitted {
		t.Fatalf("expected ErrNotFitted, got %v", err)
	}
}

func TestFitTwice(t *testing.T) {
	v := fitted(t, []string{"lunch cafe"})
	if err := v.Fit([]string{"more text"}); err == nil {
		t.Fatal("expected error on second fit")
	}
}

func TestVocabularyContainsBigrams(t *testing.T) {
	v := fitted(t, []string{"monthly rent payment", "lunch cafe"})
	if _, ok := v.Vocabulary["monthly rent"]; !ok {
		t.Fatal("expected bigram 'monthly rent' in vocabulary")
	}
	if _, ok := v.Vocabulary["rent"]; !ok {
		t.Fatal("expected unigram 'rent' in vocabulary")
	}
}

func TestMaxDocFreqDropsUbiquitousTerms(t *testing.T) {
	// "payment" appears in all five documents, above the 0.8 ceiling.
	corpus := []string{
		"payment rent", "payment lunch", "payment groceries",
		"payment cinema", "payment fuel",
	}
	v := fitted(t, corpus)
	if _, ok := v.Vocabulary["payment"]; ok {
		t.Fatal("expected 'payment' to be dropped by max document frequency")
	}
	if _, ok := v.Vocabulary["rent"]; !ok {
		t.Fatal("expected 'rent' to be kept")
	}
}

func TestUnknownTermsIgnored(t *testing.T) {
	v := fitted(t, []string{"lunch cafe", "monthly rent"})

	with, err := v.Transform("lunch cafe zeppelin")
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	without, err := v.Transform("lunch cafe")
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if len(with) != len(without) {
		t.Fatalf("vector lengths differ: %d vs %d", len(with), len(without))
	}
	for i := range with {
		if with[i] != without[i] {
			t.Fatalf("entry %d differs: %+v vs %+v", i, with[i], without[i])
		}
	}
}

func TestTransformEmptyText(t *testing.T) {
	v := fitted(t, []string{"lunch cafe"})
	vec, err := v.Transform("")
	if err != nil {
		t.Fatalf("transform of empty text: %v", err)
	}
	if len(vec) != 0 {
		t.Fatalf("expected empty vector, got %d entries", len(vec))
	}
}

func TestTransformL2Normalized(t *testing.T) {
	v := fitted(t, []string{"lunch cafe", "monthly rent payment", "rent deposit"})
	vec, err := v.Transform("monthly rent payment")
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if norm := math.Sqrt(vec.SquaredNorm()); math.Abs(norm-1) > 1e-9 {
		t.Fatalf("expected unit norm, got %v", norm)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	v := fitted(t, []string{"lunch cafe", "monthly rent payment"})
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var loaded Vectorizer
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	a, _ := v.Transform("monthly rent")
	b, err := loaded.Transform("monthly rent")
	if err != nil {
		t.Fatalf("transform after round trip: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("vector lengths differ after round trip: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i].Value-b[i].Value) > 1e-12 || a[i].Index != b[i].Index {
			t.Fatalf("entry %d differs after round trip", i)
		}
	}
}

func TestSparseDot(t *testing.T) {
	a := FeatureVector{{Index: 0, Value: 1}, {Index: 2, Value: 2}, {Index: 5, Value: 3}}
	b := FeatureVector{{Index: 2, Value: 4}, {Index: 5, Value: 1}, {Index: 7, Value: 9}}
	if got := a.SparseDot(b); got != 11 {
		t.Fatalf("SparseDot = %v, want 11", got)
	}
	if got := a.SparseDot(FeatureVector{}); got != 0 {
		t.Fatalf("SparseDot with empty = %v, want 0", got)
	}
}
