// Package kde implements Gaussian kernel density estimates with Scott's
// bandwidth rule for one and two dimensional samples.
package kde

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrTooFewSamples = errors.New("kde: need at least two samples")
	ErrDegenerate    = errors.New("kde: sample has no spread")
)

// scottFactor is n^(-1/(d+4)).
func scottFactor(n, d int) float64 {
	return math.Pow(float64(n), -1/float64(d+4))
}

type Univariate struct {
	data   []float64
	bw     float64
	kernel distuv.Normal
}

func NewUnivariate(data []float64) (*Univariate, error) {
	if len(data) < 2 {
		return nil, ErrTooFewSamples
	}
	std := stat.StdDev(data, nil)
	if std == 0 || math.IsNaN(std) {
		return nil, ErrDegenerate
	}

	bw := scottFactor(len(data), 1) * std
	d := make([]float64, len(data))
	copy(d, data)

	return &Univariate{
		data:   d,
		bw:     bw,
		kernel: distuv.Normal{Mu: 0, Sigma: bw},
	}, nil
}

func (k *Univariate) Bandwidth() float64 { return k.bw }

func (k *Univariate) Density(x float64) float64 {
	sum := 0.0
	for _, xi := range k.data {
		sum += k.kernel.Prob(x - xi)
	}
	return sum / float64(len(k.data))
}

// Curve evaluates the density at n evenly spaced points covering the data
// extended by cut bandwidths on each side.
func (k *Univariate) Curve(cut float64, n int) (xs, ys []float64) {
	lo := floats.Min(k.data) - cut*k.bw
	hi := floats.Max(k.data) + cut*k.bw

	xs = floats.Span(make([]float64, n), lo, hi)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = k.Density(x)
	}
	return xs, ys
}

type Bivariate struct {
	xs, ys []float64
	bw     [2]float64
	kernel *distmv.Normal
}

// NewBivariate builds an estimate from an n x 2 matrix of observations.
// The kernel covariance is the sample covariance scaled by Scott's factor.
func NewBivariate(points mat.Matrix) (*Bivariate, error) {
	n, d := points.Dims()
	if d != 2 {
		return nil, errors.New("kde: bivariate estimate needs two columns")
	}
	if n < 2 {
		return nil, ErrTooFewSamples
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, points, nil)

	f := scottFactor(n, 2)
	cov.ScaleSym(f*f, &cov)

	kernel, ok := distmv.NewNormal([]float64{0, 0}, &cov, nil)
	if !ok {
		return nil, ErrDegenerate
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	mat.Col(xs, 0, points)
	mat.Col(ys, 1, points)

	return &Bivariate{
		xs:     xs,
		ys:     ys,
		bw:     [2]float64{math.Sqrt(cov.At(0, 0)), math.Sqrt(cov.At(1, 1))},
		kernel: kernel,
	}, nil
}

// Bandwidth returns the kernel standard deviation along each axis.
func (k *Bivariate) Bandwidth() (bx, by float64) { return k.bw[0], k.bw[1] }

func (k *Bivariate) Density(x, y float64) float64 {
	d := make([]float64, 2)
	return k.density(x, y, d)
}

func (k *Bivariate) density(x, y float64, d []float64) float64 {
	sum := 0.0
	for i := range k.xs {
		d[0] = x - k.xs[i]
		d[1] = y - k.ys[i]
		sum += k.kernel.Prob(d)
	}
	return sum / float64(len(k.xs))
}

// Grid evaluates the density on an n x n lattice spanning the data extended
// by cut bandwidths along each axis.
func (k *Bivariate) Grid(n int, cut float64) *Grid {
	g := &Grid{
		xs: floats.Span(make([]float64, n), floats.Min(k.xs)-cut*k.bw[0], floats.Max(k.xs)+cut*k.bw[0]),
		ys: floats.Span(make([]float64, n), floats.Min(k.ys)-cut*k.bw[1], floats.Max(k.ys)+cut*k.bw[1]),
		z:  mat.NewDense(n, n, nil),
	}

	d := make([]float64, 2)
	for r, y := range g.ys {
		for c, x := range g.xs {
			g.z.Set(r, c, k.density(x, y, d))
		}
	}
	return g
}
