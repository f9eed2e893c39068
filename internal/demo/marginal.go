package demo

import (
	"image/color"
	"math"
	"sort"

	"github.com/san-kum/statplot/internal/figure"
	"github.com/san-kum/statplot/internal/kde"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	deepBlue = color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff}
	bandBlue = color.NRGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0x40}
	barBlue  = color.NRGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0x80}
)

// orient maps a (value, density) pair onto plot coordinates.
func orient(v, d float64, horizontal bool) plotter.XY {
	if horizontal {
		return plotter.XY{X: d, Y: v}
	}
	return plotter.XY{X: v, Y: d}
}

// addMarginal draws a density-normalised histogram of data with a kernel
// density curve over it. Horizontal marginals put the data on the y axis.
func addMarginal(ax *figure.Axes, data []float64, bins int, horizontal bool) error {
	k, err := kde.NewUnivariate(data)
	if err != nil {
		return err
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	dividers := floats.Span(make([]float64, bins+1), lo, math.Nextafter(hi, math.Inf(1)))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	total := float64(len(data))
	for i, c := range counts {
		x0, x1 := dividers[i], dividers[i+1]
		h := c / (total * (x1 - x0))
		if h == 0 {
			continue
		}
		bar, err := plotter.NewPolygon(plotter.XYs{
			orient(x0, 0, horizontal),
			orient(x1, 0, horizontal),
			orient(x1, h, horizontal),
			orient(x0, h, horizontal),
		})
		if err != nil {
			return err
		}
		bar.Color = barBlue
		bar.LineStyle.Color = color.White
		bar.LineStyle.Width = vg.Points(0.5)
		ax.Plot.Add(bar)
	}

	xs, ys := k.Curve(3, 200)
	curve := make(plotter.XYs, len(xs))
	for i := range xs {
		curve[i] = orient(xs[i], ys[i], horizontal)
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Color = deepBlue
	line.LineStyle.Width = vg.Points(1.5)
	ax.Plot.Add(line)

	ax.HideTicks()
	if horizontal {
		ax.Plot.X.Min = 0
	} else {
		ax.Plot.Y.Min = 0
	}
	return nil
}
