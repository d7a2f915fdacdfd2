package classifier

import (
	"math"
	"math/rand"

	"smartspend/internal/vectorizer"
)

// RBFSVM is a one-vs-rest kernelized margin classifier with a gaussian
// (RBF) kernel, trained by kernelized stochastic subgradient descent
// with inverse-frequency class weighting. The fitted model keeps the
// support vectors whose coefficients survived training.
type RBFSVM struct {
	Support []vectorizer.FeatureVector `json:"support"`
	Coef    [][]float64                `json:"coef"` // classes x len(Support)
	Gamma   float64                    `json:"gamma"`
	C       float64                    `json:"c"`
	Epochs  int                        `json:"epochs"`
	Seed    int64                      `json:"seed"`
}

func NewRBFSVM() *RBFSVM {
	return &RBFSVM{C: 10.0, Epochs: 20, Seed: 42}
}

func (m *RBFSVM) Kind() string { return KindRBF }

func (m *RBFSVM) Fit(X []vectorizer.FeatureVector, y []int, dims, classes int) error {
	if err := validateFitInput(X, y, dims, classes); err != nil {
		return err
	}

	n := len(X)
	m.Gamma = scaleGamma(X, dims)
	lambda := 1 / (m.C * float64(n))
	classWeights := balancedWeights(y, classes)
	rng := rand.New(rand.NewSource(m.Seed))

	// Precomputed kernel matrix; the training sets here are small batch
	// datasets, n^2 stays affordable.
	norms := make([]float64, n)
	for i, x := range X {
		norms[i] = x.SquaredNorm()
	}
	gram := make([][]float64, n)
	for i := range gram {
		gram[i] = make([]float64, n)
		for j := 0; j <= i; j++ {
			k := math.Exp(-m.Gamma * (norms[i] + norms[j] - 2*X[i].SparseDot(X[j])))
			gram[i][j] = k
			gram[j][i] = k
		}
	}

	coef := make([][]float64, classes)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for k := 0; k < classes; k++ {
		alpha := make([]float64, n)
		targets := make([]float64, n)
		weights := make([]float64, n)
		for i := range targets {
			targets[i] = -1
			weights[i] = 1
			if y[i] == k {
				targets[i] = 1
				weights[i] = classWeights[k]
			}
		}

		t := 0
		for epoch := 0; epoch < m.Epochs; epoch++ {
			rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
			for _, i := range order {
				t++
				var f float64
				for j := 0; j < n; j++ {
					if alpha[j] != 0 {
						f += alpha[j] * targets[j] * weights[j] * gram[j][i]
					}
				}
				f /= lambda * float64(t)
				if targets[i]*f < 1 {
					alpha[i]++
				}
			}
		}

		coef[k] = make([]float64, n)
		scale := 1 / (lambda * float64(t))
		for i := range alpha {
			coef[k][i] = alpha[i] * targets[i] * weights[i] * scale
		}
	}

	m.compact(X, coef)
	return nil
}

// compact drops training points that ended with zero coefficients in
// every class, keeping only true support vectors.
func (m *RBFSVM) compact(X []vectorizer.FeatureVector, coef [][]float64) {
	n := len(X)
	classes := len(coef)
	keep := make([]int, 0, n)
	for i := 0; i < n; i++ {
		for k := 0; k < classes; k++ {
			if coef[k][i] != 0 {
				keep = append(keep, i)
				break
			}
		}
	}

	m.Support = make([]vectorizer.FeatureVector, len(keep))
	m.Coef = make([][]float64, classes)
	for k := range m.Coef {
		m.Coef[k] = make([]float64, len(keep))
	}
	for idx, i := range keep {
		m.Support[idx] = X[i]
		for k := 0; k < classes; k++ {
			m.Coef[k][idx] = coef[k][i]
		}
	}
}

func (m *RBFSVM) Predict(x vectorizer.FeatureVector) int {
	xNorm := x.SquaredNorm()
	kernels := make([]float64, len(m.Support))
	for i, sv := range m.Support {
		kernels[i] = math.Exp(-m.Gamma * (xNorm + sv.SquaredNorm() - 2*sv.SparseDot(x)))
	}

	scores := make([]float64, len(m.Coef))
	for k, coef := range m.Coef {
		for i, kv := range kernels {
			scores[k] += coef[i] * kv
		}
	}
	return argmax(scores)
}

// scaleGamma mirrors the "scale" heuristic: 1 / (dims * variance of the
// training matrix entries), falling back to 1/dims for degenerate data.
func scaleGamma(X []vectorizer.FeatureVector, dims int) float64 {
	total := float64(len(X)) * float64(dims)
	var sum, sumSq float64
	for _, x := range X {
		for _, fv := range x {
			sum += fv.Value
			sumSq += fv.Value * fv.Value
		}
	}
	mean := sum / total
	variance := sumSq/total - mean*mean
	if variance <= 0 {
		return 1 / float64(dims)
	}
	return 1 / (float64(dims) * variance)
}
