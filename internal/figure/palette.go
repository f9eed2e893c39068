package figure

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// darkBase is the low end of every dark palette.
var darkBase = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}

// NamedColor resolves a CSS color name or a #rrggbb string.
func NamedColor(name string) (color.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	if strings.HasPrefix(name, "#") && len(name) == 7 {
		var r, g, b uint8
		if _, err := fmt.Sscanf(name, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// DarkPalette returns a continuous color map running from near black to the
// named color over [0, 1]. Colors light enough get a perceptual luminance
// ramp. Colors darker than the base are blended linearly instead.
func DarkPalette(name string) (palette.ColorMap, error) {
	end, err := NamedColor(name)
	if err != nil {
		return nil, err
	}

	var cmap palette.ColorMap
	if lum, err := moreland.NewLuminance([]color.Color{darkBase, end}); err == nil {
		cmap = lum
	} else {
		cmap = &blend{from: darkBase, to: end, alpha: 1}
	}
	cmap.SetMin(0)
	cmap.SetMax(1)
	return cmap, nil
}

// LevelPalette colors each contour level by its position in [0, peak] on
// cmap, so a level's color tracks its density.
func LevelPalette(cmap palette.ColorMap, levels []float64, peak float64) (palette.Palette, error) {
	if peak <= 0 {
		return nil, fmt.Errorf("figure: level palette needs a positive maximum, got %v", peak)
	}
	lo, hi := cmap.Min(), cmap.Max()
	colors := make(levelColors, len(levels))
	for i, l := range levels {
		v := lo + (hi-lo)*math.Min(math.Max(l/peak, 0), 1)
		c, err := cmap.At(v)
		if err != nil {
			return nil, fmt.Errorf("figure: color for level %v: %w", l, err)
		}
		colors[i] = c
	}
	return colors, nil
}

type levelColors []color.Color

func (l levelColors) Colors() []color.Color { return l }

// blend interpolates linearly in RGB between two colors.
type blend struct {
	from, to color.Color
	min, max float64
	alpha    float64
}

func (b *blend) Min() float64     { return b.min }
func (b *blend) Max() float64     { return b.max }
func (b *blend) SetMin(v float64) { b.min = v }
func (b *blend) SetMax(v float64) { b.max = v }
func (b *blend) Alpha() float64   { return b.alpha }

func (b *blend) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic(fmt.Sprintf("figure: alpha %v outside [0, 1]", a))
	}
	b.alpha = a
}

func (b *blend) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, fmt.Errorf("figure: palette value is NaN")
	}
	if v < b.min || v > b.max || b.max <= b.min {
		return nil, fmt.Errorf("figure: palette value %v outside [%v, %v]", v, b.min, b.max)
	}
	t := (v - b.min) / (b.max - b.min)

	fr, fg, fb, fa := b.from.RGBA()
	tr, tg, tb, ta := b.to.RGBA()
	mix := func(x, y uint32) uint16 {
		return uint16(b.alpha * (float64(x) + t*(float64(y)-float64(x))))
	}
	return color.RGBA64{R: mix(fr, tr), G: mix(fg, tg), B: mix(fb, tb), A: mix(fa, ta)}, nil
}

func (b *blend) Palette(n int) palette.Palette {
	colors := make(levelColors, n)
	for i := range colors {
		v := b.min
		if n > 1 {
			v += float64(i) * (b.max - b.min) / float64(n-1)
		}
		c, err := b.At(v)
		if err != nil {
			panic(err)
		}
		colors[i] = c
	}
	return colors
}
