package figure

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var formats = map[string]bool{
	"eps":  true,
	"jpg":  true,
	"jpeg": true,
	"pdf":  true,
	"png":  true,
	"svg":  true,
	"tex":  true,
	"tif":  true,
	"tiff": true,
}

// Formats lists the output formats accepted by Render and Save.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Figure struct {
	Background color.Color

	width, height vg.Length
	axes          []*Axes
}

func New(width, height vg.Length) *Figure {
	return &Figure{
		Background: color.White,
		width:      width,
		height:     height,
	}
}

// AddAxes places a new axes whose data area covers the given fractions of
// the figure, measured from the bottom-left corner.
func (f *Figure) AddAxes(name string, left, bottom, width, height float64) *Axes {
	ax := newAxes(name, left, bottom, width, height)
	f.axes = append(f.axes, ax)
	return ax
}

// Axes returns the axes in creation order.
func (f *Figure) Axes() []*Axes {
	out := make([]*Axes, len(f.axes))
	copy(out, f.axes)
	return out
}

// Size reports the figure dimensions in inches.
func (f *Figure) Size() (width, height float64) {
	return float64(f.width / vg.Inch), float64(f.height / vg.Inch)
}

func (f *Figure) Draw(c draw.Canvas) {
	if f.Background != nil {
		c.SetColor(f.Background)
		c.Fill(c.Rectangle.Path())
	}
	for _, ax := range f.axes {
		ax.draw(c)
	}
}

// Render encodes the figure in the given format to w.
func (f *Figure) Render(w io.Writer, format string) error {
	format = strings.ToLower(format)
	if !formats[format] {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	cw, err := draw.NewFormattedCanvas(f.width, f.height, format)
	if err != nil {
		return fmt.Errorf("figure: create %s canvas: %w", format, err)
	}
	f.Draw(draw.New(cw))

	if _, err := cw.WriteTo(w); err != nil {
		return fmt.Errorf("figure: encode %s: %w", format, err)
	}
	return nil
}

// Save writes the figure to path, picking the format from its extension.
func (f *Figure) Save(path string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !formats[strings.ToLower(format)] {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return f.Render(file, format)
}
