package classifier

import (
	"math"
	"sort"

	"smartspend/internal/vectorizer"
)

// Stump is a depth-1 decision rule: samples with feature value at or
// below Threshold vote Left, the rest vote Right.
type Stump struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Weight    float64 `json:"weight"`
}

// BoostedStumps is a boosted ensemble of decision stumps (multiclass
// SAMME). Boosting reweights the training set toward examples earlier
// stumps got wrong; the fitted ensemble votes with per-stump weights.
type BoostedStumps struct {
	Stumps   []Stump `json:"stumps"`
	Classes  int     `json:"classes"`
	Majority int     `json:"majority"`
	Rounds   int     `json:"rounds"`
}

func NewBoostedStumps() *BoostedStumps {
	return &BoostedStumps{Rounds: 100}
}

func (m *BoostedStumps) Kind() string { return KindBoosted }

// featureColumn holds one feature's nonzero entries sorted by value.
// TF-IDF values are nonnegative, so absent samples form a zero block
// below every nonzero entry.
type featureColumn struct {
	values  []float64
	samples []int
}

func (m *BoostedStumps) Fit(X []vectorizer.FeatureVector, y []int, dims, classes int) error {
	if err := validateFitInput(X, y, dims, classes); err != nil {
		return err
	}

	n := len(X)
	m.Classes = classes
	m.Majority = majorityClass(y, classes)
	m.Stumps = nil

	cols := make([]featureColumn, dims)
	for i, x := range X {
		for _, fv := range x {
			cols[fv.Index].values = append(cols[fv.Index].values, fv.Value)
			cols[fv.Index].samples = append(cols[fv.Index].samples, i)
		}
	}
	for j := range cols {
		c := &cols[j]
		order := make([]int, len(c.values))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return c.values[order[a]] < c.values[order[b]] })
		sortedVals := make([]float64, len(order))
		sortedSamples := make([]int, len(order))
		for i, o := range order {
			sortedVals[i] = c.values[o]
			sortedSamples[i] = c.samples[o]
		}
		c.values, c.samples = sortedVals, sortedSamples
	}

	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}
	chance := 1 - 1/float64(classes)

	for round := 0; round < m.Rounds; round++ {
		stump, err2 := bestStump(cols, X, y, weights, classes)
		if stump == nil {
			break
		}
		if err2 >= chance {
			// No stump beats random guessing on the current weighting.
			break
		}
		if err2 < 1e-10 {
			err2 = 1e-10
		}
		alpha := math.Log((1-err2)/err2) + math.Log(float64(classes-1))
		stump.Weight = alpha
		m.Stumps = append(m.Stumps, *stump)

		var total float64
		for i := range weights {
			if stumpPredict(*stump, X[i]) != y[i] {
				weights[i] *= math.Exp(alpha)
			}
			total += weights[i]
		}
		for i := range weights {
			weights[i] /= total
		}

		if err2 <= 1e-10 {
			break
		}
	}
	return nil
}

// bestStump exhaustively searches every feature and threshold for the
// split with the lowest weighted misclassification error.
func bestStump(cols []featureColumn, X []vectorizer.FeatureVector, y []int, weights []float64, classes int) (*Stump, float64) {
	totals := make([]float64, classes)
	var totalW float64
	for i, w := range weights {
		totals[y[i]] += w
		totalW += w
	}

	var best *Stump
	bestErr := math.Inf(1)

	left := make([]float64, classes)
	for j, col := range cols {
		if len(col.values) == 0 {
			continue
		}

		// Start with every zero-valued sample on the left.
		for k := range left {
			left[k] = totals[k]
		}
		for _, s := range col.samples {
			left[y[s]] -= weights[s]
		}

		// Candidate thresholds sit between the zero block and the first
		// nonzero value, then between consecutive distinct values.
		prev := 0.0
		for pos := 0; pos < len(col.values); pos++ {
			if col.values[pos] > prev {
				err := splitError(left, totals, totalW)
				if err < bestErr {
					lc, rc := sideClasses(left, totals)
					best = &Stump{
						Feature:   j,
						Threshold: (prev + col.values[pos]) / 2,
						Left:      lc,
						Right:     rc,
					}
					bestErr = err
				}
			}
			prev = col.values[pos]
			left[y[col.samples[pos]]] += weights[col.samples[pos]]
		}
	}
	return best, bestErr
}

func splitError(left, totals []float64, totalW float64) float64 {
	var maxLeft, maxRight float64
	for k := range totals {
		if left[k] > maxLeft {
			maxLeft = left[k]
		}
		if right := totals[k] - left[k]; right > maxRight {
			maxRight = right
		}
	}
	return totalW - maxLeft - maxRight
}

func sideClasses(left, totals []float64) (int, int) {
	lc, rc := 0, 0
	for k := range totals {
		if left[k] > left[lc] {
			lc = k
		}
		if totals[k]-left[k] > totals[rc]-left[rc] {
			rc = k
		}
	}
	return lc, rc
}

func stumpPredict(s Stump, x vectorizer.FeatureVector) int {
	var value float64
	for _, fv := range x {
		if fv.Index == s.Feature {
			value = fv.Value
			break
		}
		if fv.Index > s.Feature {
			break
		}
	}
	if value <= s.Threshold {
		return s.Left
	}
	return s.Right
}

func (m *BoostedStumps) Predict(x vectorizer.FeatureVector) int {
	if len(m.Stumps) == 0 {
		return m.Majority
	}
	scores := make([]float64, m.Classes)
	for _, s := range m.Stumps {
		scores[stumpPredict(s, x)] += s.Weight
	}
	return argmax(scores)
}

func majorityClass(y []int, classes int) int {
	counts := make([]int, classes)
	for _, code := range y {
		counts[code]++
	}
	best := 0
	for k := 1; k < classes; k++ {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return best
}
