package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

type Spine int

const (
	Top Spine = iota
	Bottom
	Left
	Right
)

var AllSpines = []Spine{Top, Bottom, Left, Right}

func (s Spine) valid() bool { return s >= Top && s <= Right }

func (s Spine) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// frame draws the visible spines of an axes around its data canvas.
type frame struct {
	ax *Axes
}

func (f frame) Plot(c draw.Canvas, _ *plot.Plot) {
	sty := f.ax.SpineStyle
	if f.ax.SpineVisible(Top) {
		c.StrokeLine2(sty, c.Min.X, c.Max.Y, c.Max.X, c.Max.Y)
	}
	if f.ax.SpineVisible(Bottom) {
		c.StrokeLine2(sty, c.Min.X, c.Min.Y, c.Max.X, c.Min.Y)
	}
	if f.ax.SpineVisible(Left) {
		c.StrokeLine2(sty, c.Min.X, c.Min.Y, c.Min.X, c.Max.Y)
	}
	if f.ax.SpineVisible(Right) {
		c.StrokeLine2(sty, c.Max.X, c.Min.Y, c.Max.X, c.Max.Y)
	}
}
