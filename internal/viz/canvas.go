package viz

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// brailleBlank is the empty Braille cell. Each cell holds a 2x4 block of
// dots; dotBits[row][col] is the bit for that dot.
const brailleBlank = 0x2800

var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of Braille cells addressed by dot. Dot (0, 0) is the
// top-left corner; the canvas is 2*cols dots wide and 4*rows dots tall.
type Canvas struct {
	cols, rows int
	cells      []uint8
}

func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{cols: cols, rows: rows, cells: make([]uint8, cols*rows)}
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (w, h int) { return c.cols * 2, c.rows * 4 }

func (c *Canvas) cell(x, y int) (int, uint8, bool) {
	w, h := c.Dots()
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, 0, false
	}
	return (y/4)*c.cols + x/2, dotBits[y%4][x%2], true
}

// Set turns on the dot at (x, y). Dots off the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if i, bit, ok := c.cell(x, y); ok {
		c.cells[i] |= bit
	}
}

func (c *Canvas) IsSet(x, y int) bool {
	i, bit, ok := c.cell(x, y)
	return ok && c.cells[i]&bit != 0
}

// Bounds is the data rectangle mapped onto the full canvas.
type Bounds struct {
	XMin, XMax, YMin, YMax float64
}

// BoundsOf spans xs and ys. A zero-width range is widened to one unit.
func BoundsOf(xs, ys []float64) Bounds {
	b := Bounds{floats.Min(xs), floats.Max(xs), floats.Min(ys), floats.Max(ys)}
	if b.XMax == b.XMin {
		b.XMax = b.XMin + 1
	}
	if b.YMax == b.YMin {
		b.YMax = b.YMin + 1
	}
	return b
}

// dot maps a data point to dot coordinates, y growing downwards.
func (c *Canvas) dot(b Bounds, x, y float64) (float64, float64) {
	w, h := c.Dots()
	fx := (x - b.XMin) / (b.XMax - b.XMin) * float64(w-1)
	fy := (b.YMax - y) / (b.YMax - b.YMin) * float64(h-1)
	return fx, fy
}

// Scatter sets one dot per (xs[i], ys[i]).
func (c *Canvas) Scatter(b Bounds, xs, ys []float64) {
	for i := range xs {
		fx, fy := c.dot(b, xs[i], ys[i])
		c.Set(int(fx), int(fy))
	}
}

// Line draws the segment between two data points, stepping once per dot
// along the longer axis. Parts outside the canvas are dropped.
func (c *Canvas) Line(b Bounds, x0, y0, x1, y1 float64) {
	ax, ay := c.dot(b, x0, y0)
	bx, by := c.dot(b, x1, y1)

	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	if steps == 0 {
		c.Set(int(ax), int(ay))
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.Set(int(ax+t*(bx-ax)), int(ay+t*(by-ay)))
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.rows * (c.cols*3 + 1))
	for r := 0; r < c.rows; r++ {
		for _, bits := range c.cells[r*c.cols : (r+1)*c.cols] {
			sb.WriteRune(rune(brailleBlank + int(bits)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
