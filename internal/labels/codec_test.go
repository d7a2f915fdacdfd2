package labels

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFitAssignsLexicographicCodes(t *testing.T) {
	c := Fit([]string{"Housing", "Food", "Transport", "Food"})
	want := []string{"Food", "Housing", "Transport"}
	if c.Len() != 3 {
		t.Fatalf("expected 3 classes, got %d", c.Len())
	}
	for code, cat := range want {
		got, err := c.Encode(cat)
		if err != nil {
			t.Fatalf("encode %q: %v", cat, err)
		}
		if got != code {
			t.Fatalf("encode %q = %d, want %d", cat, got, code)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	cats := []string{"Food", "Housing", "Transport", "Entertainment"}
	c := Fit(cats)
	for _, cat := range cats {
		code, err := c.Encode(cat)
		if err != nil {
			t.Fatalf("encode %q: %v", cat, err)
		}
		back, err := c.Decode(code)
		if err != nil {
			t.Fatalf("decode %d: %v", code, err)
		}
		if back != cat {
			t.Fatalf("round trip %q -> %d -> %q", cat, code, back)
		}
	}
}

func TestEncodeUnknownCategory(t *testing.T) {
	c := Fit([]string{"Food"})
	if _, err := c.Encode("Travel"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	c := Fit([]string{"Food", "Housing"})
	for _, code := range []int{-1, 2, 100} {
		if _, err := c.Decode(code); !errors.Is(err, ErrCodeOutOfRange) {
			t.Fatalf("Decode(%d): expected ErrCodeOutOfRange, got %v", code, err)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	c := Fit([]string{"Food", "Housing"})
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var loaded Codec
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	code, err := loaded.Encode("Housing")
	if err != nil {
		t.Fatalf("encode after round trip: %v", err)
	}
	if code != 1 {
		t.Fatalf("encode Housing = %d, want 1", code)
	}
}
