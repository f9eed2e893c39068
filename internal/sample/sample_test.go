package sample

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func TestStandardNormalShape(t *testing.T) {
	m := New(0).StandardNormal(2, 100)

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 100, c)
}

func TestStandardNormalMoments(t *testing.T) {
	m := New(7).StandardNormal(1, 20000)
	row := m.RawRowView(0)

	mean, std := stat.MeanStdDev(row, nil)
	assert.InDelta(t, 0, mean, 0.05)
	assert.InDelta(t, 1, std, 0.05)
}

func TestSameSeedSameDraws(t *testing.T) {
	a := New(42).StandardNormal(2, 50)
	b := New(42).StandardNormal(2, 50)
	c := New(43).StandardNormal(2, 50)

	assert.True(t, mat.Equal(a, b))
	assert.False(t, mat.Equal(a, c))
}

func TestMultivariateNormalShape(t *testing.T) {
	cov := mat.NewSymDense(2, []float64{1, -0.5, -0.5, 1})
	m, err := New(0).MultivariateNormal([]float64{0, 0}, cov, 100)
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 100, r)
	assert.Equal(t, 2, c)
}

func TestMultivariateNormalCovariance(t *testing.T) {
	target := mat.NewSymDense(2, []float64{1, -0.5, -0.5, 1})
	s := New(1)

	// one large draw gives the same sampling error as many small pooled ones
	m, err := s.MultivariateNormal([]float64{0, 0}, target, 50000)
	require.NoError(t, err)

	cov := Covariance(m)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, target.At(i, j), cov.At(i, j), 0.03, "cov[%d][%d]", i, j)
		}
	}
}

func TestMultivariateNormalErrors(t *testing.T) {
	s := New(0)

	tests := []struct {
		name string
		mean []float64
		cov  *mat.SymDense
		n    int
		want error
	}{
		{"not positive definite", []float64{0, 0}, mat.NewSymDense(2, []float64{1, 2, 2, 1}), 10, ErrNotPositiveDefinite},
		{"dimension mismatch", []float64{0, 0, 0}, mat.NewSymDense(2, []float64{1, 0, 0, 1}), 10, ErrDimension},
		{"zero samples", []float64{0, 0}, mat.NewSymDense(2, []float64{1, 0, 0, 1}), 0, ErrSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.MultivariateNormal(tt.mean, tt.cov, tt.n)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBootstrapRange(t *testing.T) {
	idx := New(3).Bootstrap(100)
	require.Len(t, idx, 100)
	for _, i := range idx {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 100)
	}
}

func TestColumn(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal(t, []float64{2, 4, 6}, Column(m, 1))
}
