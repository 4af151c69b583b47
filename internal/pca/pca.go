// Package pca implements principal component analysis over a feature
// matrix via singular value decomposition of the centered data.
package pca

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Model is a fitted PCA transformation. It is read-only after Fit;
// refit instead of mutating.
type Model struct {
	Mean              []float64  // per-feature mean, length d
	Components        *mat.Dense // k×d, rows ordered by descending explained variance
	ExplainedVariance []float64  // per-component variance, length k
}

// Fit computes the top-k principal components of x (rows = samples,
// columns = features). k must satisfy 1 <= k <= min(samples, features).
//
// The decomposition is a thin SVD of the centered matrix, so results
// are deterministic for a fixed input.
func Fit(x mat.Matrix, k int) (*Model, error) {
	n, d := x.Dims()
	if n == 0 || d == 0 {
		return nil, errors.New("cannot fit PCA on an empty feature matrix")
	}
	maxK := n
	if d < maxK {
		maxK = d
	}
	if k < 1 || k > maxK {
		return nil, fmt.Errorf("component count %d out of range [1, %d]", k, maxK)
	}

	mean := columnMeans(x)
	centered := center(x, mean)

	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDThin); !ok {
		return nil, errors.New("SVD failed to converge")
	}

	var v mat.Dense
	svd.VTo(&v)
	values := svd.Values(nil)

	// Singular values come out in descending order, so component i is
	// column i of V.
	components := mat.NewDense(k, d, nil)
	explained := make([]float64, k)
	for i := 0; i < k; i++ {
		for j := 0; j < d; j++ {
			components.Set(i, j, v.At(j, i))
		}
		if n > 1 {
			explained[i] = values[i] * values[i] / float64(n-1)
		}
	}

	return &Model{
		Mean:              mean,
		Components:        components,
		ExplainedVariance: explained,
	}, nil
}

// NumComponents returns the number of retained components.
func (m *Model) NumComponents() int {
	k, _ := m.Components.Dims()
	return k
}

// Truncate returns a model keeping only the first k components. The
// returned model shares the fitted data.
func (m *Model) Truncate(k int) (*Model, error) {
	full, d := m.Components.Dims()
	if k < 1 || k > full {
		return nil, fmt.Errorf("component count %d out of range [1, %d]", k, full)
	}
	return &Model{
		Mean:              m.Mean,
		Components:        m.Components.Slice(0, k, 0, d).(*mat.Dense),
		ExplainedVariance: m.ExplainedVariance[:k],
	}, nil
}

// Transform projects samples into component space, returning an n×k
// coordinate matrix.
func (m *Model) Transform(x mat.Matrix) (*mat.Dense, error) {
	_, d := x.Dims()
	if d != len(m.Mean) {
		return nil, fmt.Errorf("feature count %d does not match fitted model (%d)", d, len(m.Mean))
	}

	centered := center(x, m.Mean)
	var proj mat.Dense
	proj.Mul(centered, m.Components.T())
	return &proj, nil
}

// InverseTransform reconstructs approximate samples from component
// coordinates: each row becomes mean + sum of weighted components.
func (m *Model) InverseTransform(p mat.Matrix) (*mat.Dense, error) {
	n, k := p.Dims()
	if k != m.NumComponents() {
		return nil, fmt.Errorf("coordinate count %d does not match fitted model (%d)", k, m.NumComponents())
	}

	var recon mat.Dense
	recon.Mul(p, m.Components)
	for i := 0; i < n; i++ {
		row := recon.RawRowView(i)
		for j := range row {
			row[j] += m.Mean[j]
		}
	}
	return &recon, nil
}

// Synthesize builds count samples from random component weights drawn
// from a standard normal and scaled by the square root of each
// component's explained variance.
func (m *Model) Synthesize(rng *rand.Rand, count int) (*mat.Dense, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid sample count %d", count)
	}

	k := m.NumComponents()
	weights := mat.NewDense(count, k, nil)
	for i := 0; i < count; i++ {
		for j := 0; j < k; j++ {
			weights.Set(i, j, rng.NormFloat64()*math.Sqrt(m.ExplainedVariance[j]))
		}
	}
	return m.InverseTransform(weights)
}

// ReconstructionError returns the sum of squared differences between
// two equally shaped matrices.
func ReconstructionError(a, b mat.Matrix) float64 {
	var diff mat.Dense
	diff.Sub(a, b)

	var sum float64
	n, d := diff.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			v := diff.At(i, j)
			sum += v * v
		}
	}
	return sum
}

func columnMeans(x mat.Matrix) []float64 {
	n, d := x.Dims()
	mean := make([]float64, d)
	for j := 0; j < d; j++ {
		var sum float64
		for i := 0; i < n; i++ {
			sum += x.At(i, j)
		}
		mean[j] = sum / float64(n)
	}
	return mean
}

func center(x mat.Matrix, mean []float64) *mat.Dense {
	n, d := x.Dims()
	centered := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			centered.Set(i, j, x.At(i, j)-mean[j])
		}
	}
	return centered
}
