package classifier

import (
	"math/rand"

	"smartspend/internal/vectorizer"
)

// LinearSVM is a one-vs-rest linear-margin classifier trained by
// stochastic subgradient descent on the hinge loss (Pegasos-style), with
// inverse-frequency class weighting.
type LinearSVM struct {
	Weights [][]float64 `json:"weights"` // classes x dims
	Bias    []float64   `json:"bias"`
	C       float64     `json:"c"`
	Epochs  int         `json:"epochs"`
	Seed    int64       `json:"seed"`
}

func NewLinearSVM() *LinearSVM {
	return &LinearSVM{C: 1.0, Epochs: 20, Seed: 42}
}

func (m *LinearSVM) Kind() string { return KindLinear }

func (m *LinearSVM) Fit(X []vectorizer.FeatureVector, y []int, dims, classes int) error {
	if err := validateFitInput(X, y, dims, classes); err != nil {
		return err
	}

	n := len(X)
	lambda := 1 / (m.C * float64(n))
	classWeights := balancedWeights(y, classes)
	rng := rand.New(rand.NewSource(m.Seed))

	m.Weights = make([][]float64, classes)
	m.Bias = make([]float64, classes)
	for k := range m.Weights {
		m.Weights[k] = make([]float64, dims)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for k := 0; k < classes; k++ {
		w := m.Weights[k]
		t := 0
		for epoch := 0; epoch < m.Epochs; epoch++ {
			rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
			for _, i := range order {
				t++
				eta := 1 / (lambda * float64(t))

				target := -1.0
				cw := 1.0
				if y[i] == k {
					target = 1.0
					cw = classWeights[k]
				}

				margin := target * (X[i].Dot(w) + m.Bias[k])
				decay := 1 - eta*lambda
				for j := range w {
					w[j] *= decay
				}
				if margin < 1 {
					step := eta * cw * target
					for _, fv := range X[i] {
						w[fv.Index] += step * fv.Value
					}
					m.Bias[k] += step
				}
			}
		}
	}
	return nil
}

func (m *LinearSVM) Predict(x vectorizer.FeatureVector) int {
	scores := make([]float64, len(m.Weights))
	for k, w := range m.Weights {
		scores[k] = x.Dot(w) + m.Bias[k]
	}
	return argmax(scores)
}
