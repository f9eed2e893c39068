package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/statplot/internal/kde"
	"github.com/san-kum/statplot/internal/sample"
	"gonum.org/v1/gonum/mat"
)

const (
	previewWidth  = 40
	previewHeight = 12
	densityPoints = 60
)

// Preview draws the observations in points (one per row, x and y columns)
// as a Braille scatter, overlays the fitted line when stats carries an
// intercept and slope, and appends the marginal density curves.
func Preview(points mat.Matrix, stats map[string]float64) (string, error) {
	_, c := points.Dims()
	if c < 2 {
		return "", fmt.Errorf("viz: preview needs two columns, got %d", c)
	}
	xs := sample.Column(points, 0)
	ys := sample.Column(points, 1)

	canvas := NewCanvas(previewWidth, previewHeight)
	bounds := BoundsOf(xs, ys)
	canvas.Scatter(bounds, xs, ys)

	intercept, okA := stats["intercept"]
	slope, okB := stats["slope"]
	if okA && okB {
		canvas.Line(bounds,
			bounds.XMin, intercept+slope*bounds.XMin,
			bounds.XMax, intercept+slope*bounds.XMax)
	}

	kx, err := kde.NewUnivariate(xs)
	if err != nil {
		return "", err
	}
	ky, err := kde.NewUnivariate(ys)
	if err != nil {
		return "", err
	}
	_, dx := kx.Curve(3, densityPoints)
	_, dy := ky.Curve(3, densityPoints)

	var b strings.Builder
	b.WriteString(Subtle.Render(fmt.Sprintf("x [%.2f, %.2f]  y [%.2f, %.2f]", bounds.XMin, bounds.XMax, bounds.YMin, bounds.YMax)))
	b.WriteString("\n")
	b.WriteString(canvas.String())
	b.WriteString("\n")
	b.WriteString(asciigraph.PlotMany([][]float64{dx, dy},
		asciigraph.Height(8),
		asciigraph.Width(densityPoints),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green),
		asciigraph.Caption("marginal density: x (blue), y (green)"),
	))
	b.WriteString("\n")
	return b.String(), nil
}
