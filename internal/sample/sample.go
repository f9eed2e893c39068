package sample

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// pcgStream is the fixed PCG stream selector; only the seed varies between runs.
const pcgStream = 0x9e3779b97f4a7c15

type Sampler struct {
	seed int64
	src  *rand.PCG
	rnd  *rand.Rand
}

func New(seed int64) *Sampler {
	src := rand.NewPCG(uint64(seed), pcgStream)
	return &Sampler{
		seed: seed,
		src:  src,
		rnd:  rand.New(src),
	}
}

func (s *Sampler) Seed() int64 { return s.seed }

// Source exposes the underlying stream for gonum distributions.
func (s *Sampler) Source() rand.Source { return s.src }

// StandardNormal returns a rows x cols matrix of independent N(0, 1) draws,
// filled row by row.
func (s *Sampler) StandardNormal(rows, cols int) *mat.Dense {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: s.src}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = dist.Rand()
	}
	return mat.NewDense(rows, cols, data)
}

// MultivariateNormal returns an n x len(mean) matrix with one draw per row.
func (s *Sampler) MultivariateNormal(mean []float64, cov mat.Symmetric, n int) (*mat.Dense, error) {
	if n <= 0 || len(mean) == 0 {
		return nil, ErrSize
	}
	if cov.SymmetricDim() != len(mean) {
		return nil, fmt.Errorf("%w: mean %d, covariance %d", ErrDimension, len(mean), cov.SymmetricDim())
	}

	dist, ok := distmv.NewNormal(mean, cov, s.src)
	if !ok {
		return nil, ErrNotPositiveDefinite
	}

	out := mat.NewDense(n, len(mean), nil)
	for i := 0; i < n; i++ {
		dist.Rand(out.RawRowView(i))
	}
	return out, nil
}

// Bootstrap returns n indices in [0, n) drawn with replacement.
func (s *Sampler) Bootstrap(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = s.rnd.IntN(n)
	}
	return idx
}

// Covariance returns the sample covariance of m, treating rows as observations.
func Covariance(m mat.Matrix) *mat.SymDense {
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, m, nil)
	return &cov
}

// Column copies column j of m into a new slice.
func Column(m mat.Matrix, j int) []float64 {
	r, _ := m.Dims()
	col := make([]float64, r)
	mat.Col(col, j, m)
	return col
}
