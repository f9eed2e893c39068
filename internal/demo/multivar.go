package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/statplot/internal/config"
	"github.com/san-kum/statplot/internal/figure"
	"github.com/san-kum/statplot/internal/kde"
	"github.com/san-kum/statplot/internal/sample"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// densityCut is how many kernel bandwidths the density grid extends past the data.
const densityCut = 3

type Multivar struct {
	opts config.MultivarConfig
}

func NewMultivar(opts config.MultivarConfig) *Multivar {
	return &Multivar{opts: opts}
}

func (m *Multivar) Name() string { return "multivar" }

func (m *Multivar) Description() string {
	return "bivariate normal sample drawn as kernel density contours"
}

func (m *Multivar) Run(ctx context.Context, smp *sample.Sampler) (*Result, error) {
	cov := mat.NewSymDense(2, m.opts.CovValues())
	pts, err := smp.MultivariateNormal(m.opts.Mean, cov, m.opts.Samples)
	if errors.Is(err, sample.ErrNotPositiveDefinite) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCovariance, m.opts.Cov)
	}
	if err != nil {
		return nil, err
	}

	cmap, err := figure.DarkPalette(m.opts.Palette)
	if err != nil {
		return nil, err
	}

	size := vg.Length(m.opts.FigSize) * vg.Inch
	fig := figure.New(size, size)
	ax := fig.AddAxes("main", 0.125, 0.11, 0.775, 0.77)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	est, err := kde.NewBivariate(pts)
	if err != nil {
		return nil, err
	}
	grid := est.Grid(m.opts.Grid, densityCut)
	levels := grid.Levels(m.opts.Levels)

	colors, err := figure.LevelPalette(cmap, levels, grid.Max())
	if err != nil {
		return nil, err
	}
	contour := plotter.NewContour(grid, levels, colors)
	ax.Plot.Add(contour)
	ax.Plot.X.Label.Text = "x"
	ax.Plot.Y.Label.Text = "y"

	x0, x1, y0, y1 := grid.Extent()
	ax.Plot.X.Min, ax.Plot.X.Max = x0, x1
	ax.Plot.Y.Min, ax.Plot.Y.Max = y0, y1

	sampleCov := sample.Covariance(pts)
	bx, by := est.Bandwidth()
	stats := map[string]float64{
		"n":           float64(m.opts.Samples),
		"mean_x":      stat.Mean(sample.Column(pts, 0), nil),
		"mean_y":      stat.Mean(sample.Column(pts, 1), nil),
		"cov_xx":      sampleCov.At(0, 0),
		"cov_xy":      sampleCov.At(0, 1),
		"cov_yy":      sampleCov.At(1, 1),
		"bw_x":        bx,
		"bw_y":        by,
		"density_max": grid.Max(),
	}

	return &Result{
		Kind:    m.Name(),
		Seed:    smp.Seed(),
		Figure:  fig,
		Samples: pts,
		Points:  pts,
		Stats:   stats,
	}, nil
}
