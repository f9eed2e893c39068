package kde

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Grid holds density values on a rectangular lattice. It satisfies
// plotter.GridXYZ so it can be passed straight to a contour plotter.
type Grid struct {
	xs, ys []float64
	z      *mat.Dense // rows follow ys, columns follow xs
}

func (g *Grid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g *Grid) Z(c, r int) float64 { return g.z.At(r, c) }
func (g *Grid) X(c int) float64    { return g.xs[c] }
func (g *Grid) Y(r int) float64    { return g.ys[r] }
func (g *Grid) Max() float64       { return mat.Max(g.z) }
func (g *Grid) Min() float64       { return mat.Min(g.z) }
func (g *Grid) Extent() (x0, x1, y0, y1 float64) {
	return g.xs[0], g.xs[len(g.xs)-1], g.ys[0], g.ys[len(g.ys)-1]
}

// Levels returns k contour levels evenly spaced strictly between zero and
// the grid maximum.
func (g *Grid) Levels(k int) []float64 {
	if k <= 0 {
		return nil
	}
	span := floats.Span(make([]float64, k+2), 0, g.Max())
	return span[1 : k+1]
}
