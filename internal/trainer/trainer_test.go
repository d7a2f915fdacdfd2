package trainer

import (
	"context"
	"errors"
	"testing"

	"smartspend/internal/core"
	"smartspend/internal/nlp"
)

func expenseDataset() []core.LabeledExample {
	return []core.LabeledExample{
		{Description: "Lunch at cafe", Category: "Food"},
		{Description: "Bought groceries", Category: "Food"},
		{Description: "Dinner at restaurant downtown", Category: "Food"},
		{Description: "Restaurant dinner with friends", Category: "Food"},
		{Description: "Groceries from the supermarket", Category: "Food"},
		{Description: "Coffee and breakfast cafe", Category: "Food"},
		{Description: "Pizza dinner takeaway", Category: "Food"},
		{Description: "Weekly groceries shopping", Category: "Food"},
		{Description: "Paid rent", Category: "Housing"},
		{Description: "Monthly rent payment", Category: "Housing"},
		{Description: "Rent payment for apartment", Category: "Housing"},
		{Description: "Apartment rent transfer", Category: "Housing"},
		{Description: "Electricity bill apartment", Category: "Housing"},
		{Description: "Water bill monthly", Category: "Housing"},
		{Description: "Apartment insurance payment", Category: "Housing"},
		{Description: "Rent deposit for new apartment", Category: "Housing"},
	}
}

func TestTrainEmptyDataset(t *testing.T) {
	tr := New(nlp.NewBasic())
	if _, err := tr.Train(context.Background(), nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestTrainSingleCategory(t *testing.T) {
	tr := New(nlp.NewBasic())
	examples := []core.LabeledExample{
		{Description: "Lunch at cafe", Category: "Food"},
		{Description: "Bought groceries", Category: "Food"},
	}
	if _, err := tr.Train(context.Background(), examples); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestTrainStarvedCategory(t *testing.T) {
	tr := New(nlp.NewBasic())
	examples := append(expenseDataset(), core.LabeledExample{
		Description: "Train ticket to the coast", Category: "Transport",
	})
	_, err := tr.Train(context.Background(), examples)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestTrainEndToEnd(t *testing.T) {
	tr := New(nlp.NewBasic())
	result, err := tr.Train(context.Background(), expenseDataset())
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if result.SelectedKind == "" || len(result.Scores) != 3 {
		t.Fatalf("incomplete result: kind %q, %d scores", result.SelectedKind, len(result.Scores))
	}

	norm := nlp.NewBasic()
	vec, err := result.Bundle.Vectorizer.Transform(norm.Normalize("dinner at restaurant"))
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	category, err := result.Bundle.Codec.Decode(result.Bundle.Model.Predict(vec))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if category != "Food" {
		t.Fatalf("predicted %q for a restaurant dinner, want Food", category)
	}
}

func TestTrainDeterministic(t *testing.T) {
	examples := expenseDataset()

	a, err := New(nlp.NewBasic()).Train(context.Background(), examples)
	if err != nil {
		t.Fatalf("first train: %v", err)
	}
	b, err := New(nlp.NewBasic()).Train(context.Background(), examples)
	if err != nil {
		t.Fatalf("second train: %v", err)
	}

	if a.SelectedKind != b.SelectedKind {
		t.Fatalf("selected kinds differ: %q vs %q", a.SelectedKind, b.SelectedKind)
	}
	if a.Accuracy != b.Accuracy {
		t.Fatalf("accuracies differ: %v vs %v", a.Accuracy, b.Accuracy)
	}
	for i := range a.Scores {
		if a.Scores[i] != b.Scores[i] {
			t.Fatalf("candidate score %d differs: %+v vs %+v", i, a.Scores[i], b.Scores[i])
		}
	}
}

func TestSelectBest(t *testing.T) {
	cases := []struct {
		name   string
		scores []CandidateScore
		want   int
	}{
		{
			"strict best wins regardless of position",
			[]CandidateScore{{"a", 0.70}, {"b", 0.85}, {"c", 0.80}},
			1,
		},
		{
			"strict best wins when last",
			[]CandidateScore{{"a", 0.70}, {"b", 0.80}, {"c", 0.85}},
			2,
		},
		{
			"ties resolve to earliest roster position",
			[]CandidateScore{{"a", 0.85}, {"b", 0.85}, {"c", 0.70}},
			0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := selectBest(tc.scores); got != tc.want {
				t.Fatalf("selectBest = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestTrainRejectsInvalidExample(t *testing.T) {
	tr := New(nlp.NewBasic())
	examples := append(expenseDataset(), core.LabeledExample{Description: "", Category: "Food"})
	if _, err := tr.Train(context.Background(), examples); err == nil {
		t.Fatal("expected error for invalid example")
	}
}
