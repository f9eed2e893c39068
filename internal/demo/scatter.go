package demo

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/statplot/internal/config"
	"github.com/san-kum/statplot/internal/figure"
	"github.com/san-kum/statplot/internal/sample"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// bandPoints is the number of x positions the confidence band is evaluated at.
const bandPoints = 100

type Scatter struct {
	opts config.ScatterConfig
}

func NewScatter(opts config.ScatterConfig) *Scatter {
	return &Scatter{opts: opts}
}

func (s *Scatter) Name() string { return "scatter" }

func (s *Scatter) Description() string {
	return "regression scatter of two standard-normal rows with marginal distributions"
}

func (s *Scatter) Run(ctx context.Context, smp *sample.Sampler) (*Result, error) {
	xy := smp.StandardNormal(2, s.opts.Samples)
	xs := mat.Row(nil, 0, xy)
	ys := mat.Row(nil, 1, xy)

	fig, stats, err := s.regplot(ctx, xs, ys, smp)
	if err != nil {
		return nil, err
	}

	axes := fig.Axes()
	if len(axes) != 3 {
		return nil, fmt.Errorf("%w: expected 3 axes, got %d", ErrAxesLayout, len(axes))
	}
	main, xMarg, yMarg := axes[0], axes[1], axes[2]

	main.Despine(figure.AllSpines...)
	xMarg.Despine(figure.Top, figure.Right, figure.Bottom)
	yMarg.Despine(figure.Top, figure.Right, figure.Left)

	return &Result{
		Kind:    s.Name(),
		Seed:    smp.Seed(),
		Figure:  fig,
		Samples: xy,
		Points:  mat.DenseCopyOf(xy.T()),
		Stats:   stats,
	}, nil
}

// regplot lays out a joint grid: the main scatter with its least-squares
// fit, an x marginal above and a y marginal to the right.
func (s *Scatter) regplot(ctx context.Context, xs, ys []float64, smp *sample.Sampler) (*figure.Figure, map[string]float64, error) {
	size := vg.Length(s.opts.FigSize) * vg.Inch
	fig := figure.New(size, size)

	main := fig.AddAxes("main", 0.12, 0.1, 0.66, 0.66)
	xMarg := fig.AddAxes("x_marginal", 0.12, 0.78, 0.66, 0.16)
	yMarg := fig.AddAxes("y_marginal", 0.80, 0.1, 0.16, 0.66)

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, nil, err
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  deepBlue,
		Radius: vg.Points(2.5),
		Shape:  draw.CircleGlyph{},
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	xMin, xMax := floats.Min(xs), floats.Max(xs)

	if s.opts.CI > 0 {
		band, err := s.band(ctx, xs, ys, xMin, xMax, smp)
		if err != nil {
			return nil, nil, err
		}
		main.Plot.Add(band)
	}

	fit := plotter.NewFunction(func(x float64) float64 { return alpha + beta*x })
	fit.XMin, fit.XMax = xMin, xMax
	fit.Samples = 2
	fit.LineStyle.Color = deepBlue
	fit.LineStyle.Width = vg.Points(1.5)

	main.Plot.Add(scatter, fit)
	main.Plot.X.Label.Text = "x"
	main.Plot.Y.Label.Text = "y"

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if err := addMarginal(xMarg, xs, s.opts.Bins, false); err != nil {
		return nil, nil, fmt.Errorf("x marginal: %w", err)
	}
	if err := addMarginal(yMarg, ys, s.opts.Bins, true); err != nil {
		return nil, nil, fmt.Errorf("y marginal: %w", err)
	}

	// marginals share the data range of the main axes
	xMarg.Plot.X.Min, xMarg.Plot.X.Max = main.Plot.X.Min, main.Plot.X.Max
	yMarg.Plot.Y.Min, yMarg.Plot.Y.Max = main.Plot.Y.Min, main.Plot.Y.Max

	stats := map[string]float64{
		"n":         float64(len(xs)),
		"intercept": alpha,
		"slope":     beta,
		"r":         stat.Correlation(xs, ys, nil),
		"mean_x":    stat.Mean(xs, nil),
		"mean_y":    stat.Mean(ys, nil),
	}
	return fig, stats, nil
}

// band bootstraps the regression fit and returns the central CI percent
// envelope of the fitted lines as a filled polygon.
func (s *Scatter) band(ctx context.Context, xs, ys []float64, xMin, xMax float64, smp *sample.Sampler) (*plotter.Polygon, error) {
	grid := floats.Span(make([]float64, bandPoints), xMin, xMax)
	fits := make([][]float64, len(grid))
	for i := range fits {
		fits[i] = make([]float64, 0, s.opts.Boot)
	}

	n := len(xs)
	bx := make([]float64, n)
	by := make([]float64, n)
	for b := 0; b < s.opts.Boot; b++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i, j := range smp.Bootstrap(n) {
			bx[i], by[i] = xs[j], ys[j]
		}
		a, m := stat.LinearRegression(bx, by, nil, false)
		for g, x := range grid {
			fits[g] = append(fits[g], a+m*x)
		}
	}

	q := (100 - s.opts.CI) / 200
	outline := make(plotter.XYs, 2*len(grid))
	for g, x := range grid {
		sort.Float64s(fits[g])
		outline[g] = plotter.XY{X: x, Y: stat.Quantile(q, stat.Empirical, fits[g], nil)}
		outline[len(outline)-1-g] = plotter.XY{X: x, Y: stat.Quantile(1-q, stat.Empirical, fits[g], nil)}
	}

	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, err
	}
	poly.Color = bandBlue
	poly.LineStyle.Width = 0
	return poly, nil
}
