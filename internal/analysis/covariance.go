package analysis

import (
	"errors"
	"math"

	"github.com/san-kum/statplot/internal/sample"
	"gonum.org/v1/gonum/mat"
)

var ErrNoDraws = errors.New("analysis: no draws to pool")

// PooledCovariance averages the sample covariance of each draw. Every draw
// holds one observation per row and must have the same number of columns.
func PooledCovariance(draws []*mat.Dense) (*mat.SymDense, error) {
	if len(draws) == 0 {
		return nil, ErrNoDraws
	}

	_, d := draws[0].Dims()
	pooled := mat.NewSymDense(d, nil)
	for _, m := range draws {
		if _, c := m.Dims(); c != d {
			return nil, errors.New("analysis: draws have different widths")
		}
		pooled.AddSym(pooled, sample.Covariance(m))
	}
	pooled.ScaleSym(1/float64(len(draws)), pooled)
	return pooled, nil
}

// MaxAbsDiff returns the largest |a_ij - b_ij|. Matrices must share a shape.
func MaxAbsDiff(a, b mat.Matrix) float64 {
	var diff mat.Dense
	diff.Sub(a, b)

	r, c := diff.Dims()
	worst := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			worst = math.Max(worst, math.Abs(diff.At(i, j)))
		}
	}
	return worst
}

// StandardError approximates the sampling error of a pooled covariance
// entry with unit-scale variables.
func StandardError(observations, runs int) float64 {
	return 1 / math.Sqrt(float64(observations)*float64(runs))
}
