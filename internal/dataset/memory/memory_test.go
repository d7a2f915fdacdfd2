package memory

import (
	"context"
	"testing"

	"smartspend/internal/core"
)

func TestAddAndLoad(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	if err := s.Add(ctx, core.LabeledExample{Description: "Lunch", Category: "Food"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(ctx, core.LabeledExample{Description: "", Category: "Food"}); err == nil {
		t.Fatal("expected validation error")
	}

	examples, err := s.LoadExamples(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(examples))
	}
}

func TestLoadReturnsCopy(t *testing.T) {
	s := New([]core.LabeledExample{{Description: "Lunch", Category: "Food"}})
	ctx := context.Background()

	first, _ := s.LoadExamples(ctx)
	first[0].Category = "Mutated"

	second, _ := s.LoadExamples(ctx)
	if second[0].Category != "Food" {
		t.Fatal("LoadExamples must return a copy, not the backing slice")
	}
}
