package nlp

import "testing"

func TestNormalize(t *testing.T) {
	n := NewBasic()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "LUNCH Cafe", "lunch cafe"},
		{"strips digits and punctuation", "paid $42.50 for dinner!", "paid dinner"},
		{"merges mixed tokens", "mid-2023 report", "mid report"},
		{"drops stop words", "lunch at the cafe with friends", "lunch cafe friends"},
		{"drops short tokens", "go to gym", "gym"},
		{"collapses whitespace", "  monthly \t rent \n payment ", "monthly rent payment"},
		{"empty input", "", ""},
		{"only noise", "42 + 7 = 49!!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Lunch at cafe",
		"Paid rent for mid-2023",
		"BOUGHT groceries, milk & eggs (x2)",
		"",
		"a an the",
	}

	reducers := map[string]Reducer{
		"identity":   IdentityReducer{},
		"dictionary": NewDictionaryReducer(map[string]string{"groceries": "grocery", "bought": "buy"}),
	}
	for name, r := range reducers {
		t.Run(name, func(t *testing.T) {
			n := New(r)
			for _, in := range inputs {
				once := n.Normalize(in)
				twice := n.Normalize(once)
				if once != twice {
					t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
				}
			}
		})
	}
}

func TestNormalizeIdempotentWithShortLemma(t *testing.T) {
	// A dictionary may reduce a surviving token to something the filters
	// would reject; the result must still be a fixed point.
	n := New(NewDictionaryReducer(map[string]string{"went": "go", "running": "run"}))
	got := n.Normalize("went running yesterday")
	if got != "run yesterday" {
		t.Fatalf("expected %q, got %q", "run yesterday", got)
	}
	if again := n.Normalize(got); again != got {
		t.Fatalf("not idempotent: %q then %q", got, again)
	}
}

func TestNormalizeDeterministicAcrossReducers(t *testing.T) {
	// Inputs outside the dictionary normalize identically on both paths.
	basic := NewBasic()
	dict := New(NewDictionaryReducer(map[string]string{"mice": "mouse"}))
	in := "Monthly rent payment"
	if a, b := basic.Normalize(in), dict.Normalize(in); a != b {
		t.Fatalf("paths diverged: basic %q, dictionary %q", a, b)
	}
}
