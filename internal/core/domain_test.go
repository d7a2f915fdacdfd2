package core

import (
	"strings"
	"testing"
)

func TestLabeledExampleValidate(t *testing.T) {
	good := LabeledExample{Description: "Lunch at cafe", Category: "Food"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []LabeledExample{
		{Description: "", Category: "Food"},
		{Description: "   ", Category: "Food"},
		{Description: "Lunch", Category: ""},
		{Description: strings.Repeat("x", 201), Category: "Food"},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestCategories(t *testing.T) {
	examples := []LabeledExample{
		{Description: "a", Category: "Food"},
		{Description: "b", Category: "Housing"},
		{Description: "c", Category: "Food"},
		{Description: "d", Category: "Transport"},
	}
	got := Categories(examples)
	want := []string{"Food", "Housing", "Transport"}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
