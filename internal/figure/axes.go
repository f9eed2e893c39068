package figure

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type Axes struct {
	Name string
	Plot *plot.Plot

	// SpineStyle is the line style of every visible spine.
	SpineStyle draw.LineStyle

	left, bottom, width, height float64
	hidden                      [4]bool
}

func newAxes(name string, left, bottom, width, height float64) *Axes {
	p := plot.New()
	p.BackgroundColor = nil
	p.X.Padding = 0
	p.Y.Padding = 0
	p.X.LineStyle = draw.LineStyle{Color: color.Transparent}
	p.Y.LineStyle = draw.LineStyle{Color: color.Transparent}

	ax := &Axes{
		Name: name,
		Plot: p,
		SpineStyle: draw.LineStyle{
			Color: color.Gray{Y: 0x26},
			Width: vg.Points(0.8),
		},
		left:   left,
		bottom: bottom,
		width:  width,
		height: height,
	}
	p.Add(frame{ax: ax})
	return ax
}

// Despine hides the given sides. Hiding an already hidden side is a no-op
// and values outside Top..Right are ignored.
func (a *Axes) Despine(sides ...Spine) {
	for _, s := range sides {
		if s.valid() {
			a.hidden[s] = true
		}
	}
}

// Respine shows the given sides again.
func (a *Axes) Respine(sides ...Spine) {
	for _, s := range sides {
		if s.valid() {
			a.hidden[s] = false
		}
	}
}

// SpineVisible reports false for values outside Top..Right.
func (a *Axes) SpineVisible(s Spine) bool { return s.valid() && !a.hidden[s] }

// VisibleSpines lists the shown sides in Top, Bottom, Left, Right order.
func (a *Axes) VisibleSpines() []Spine {
	visible := make([]Spine, 0, len(AllSpines))
	for _, s := range AllSpines {
		if a.SpineVisible(s) {
			visible = append(visible, s)
		}
	}
	return visible
}

// Position returns the fractional data-area placement given to AddAxes.
func (a *Axes) Position() (left, bottom, width, height float64) {
	return a.left, a.bottom, a.width, a.height
}

// HideTicks removes tick marks and tick labels from both axes.
func (a *Axes) HideTicks() {
	a.Plot.X.Tick.Marker = plot.ConstantTicks(nil)
	a.Plot.Y.Tick.Marker = plot.ConstantTicks(nil)
}

// draw renders the axes so that its data area lands on the fractional
// rectangle within fc. Axis decorations grow outward from that rectangle.
func (a *Axes) draw(fc draw.Canvas) {
	w := fc.Max.X - fc.Min.X
	h := fc.Max.Y - fc.Min.Y

	target := vg.Rectangle{
		Min: vg.Point{
			X: fc.Min.X + w*vg.Length(a.left),
			Y: fc.Min.Y + h*vg.Length(a.bottom),
		},
		Max: vg.Point{
			X: fc.Min.X + w*vg.Length(a.left+a.width),
			Y: fc.Min.Y + h*vg.Length(a.bottom+a.height),
		},
	}

	c := draw.Canvas{Canvas: fc.Canvas, Rectangle: target}
	data := a.Plot.DataCanvas(c)

	c.Rectangle = vg.Rectangle{
		Min: vg.Point{
			X: target.Min.X - (data.Min.X - target.Min.X),
			Y: target.Min.Y - (data.Min.Y - target.Min.Y),
		},
		Max: vg.Point{
			X: target.Max.X + (target.Max.X - data.Max.X),
			Y: target.Max.Y + (target.Max.Y - data.Max.Y),
		},
	}
	a.Plot.Draw(c)
}
