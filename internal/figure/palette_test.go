package figure

import (
	"errors"
	"image/color"
	"testing"
)

func luminance(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return r + g + b
}

func TestNamedColor(t *testing.T) {
	tests := []struct {
		name string
		want color.RGBA
	}{
		{"palegreen", color.RGBA{R: 152, G: 251, B: 152, A: 255}},
		{"  PaleGreen ", color.RGBA{R: 152, G: 251, B: 152, A: 255}},
		{"#ff8000", color.RGBA{R: 255, G: 128, B: 0, A: 255}},
	}

	for _, tt := range tests {
		c, err := NamedColor(tt.name)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.name, err)
			continue
		}
		if c != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.name, tt.want, c)
		}
	}
}

func TestNamedColorUnknown(t *testing.T) {
	for _, name := range []string{"notacolor", "#12", "#gggggg"} {
		if _, err := NamedColor(name); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("%q: expected ErrUnknownColor, got %v", name, err)
		}
	}
}

func TestDarkPalette(t *testing.T) {
	cmap, err := DarkPalette("palegreen")
	if err != nil {
		t.Fatalf("dark palette: %v", err)
	}

	lo, err := cmap.At(0)
	if err != nil {
		t.Fatalf("at 0: %v", err)
	}
	hi, err := cmap.At(1)
	if err != nil {
		t.Fatalf("at 1: %v", err)
	}
	if luminance(lo) >= luminance(hi) {
		t.Errorf("expected palette to get lighter, got %v -> %v", lo, hi)
	}

	_, g, _, _ := hi.RGBA()
	r, _, b, _ := hi.RGBA()
	if g <= r || g <= b {
		t.Errorf("expected green-dominant top color, got %v", hi)
	}

	if n := len(cmap.Palette(8).Colors()); n != 8 {
		t.Errorf("expected 8 palette colors, got %d", n)
	}
}

func TestDarkPaletteUnknown(t *testing.T) {
	if _, err := DarkPalette("nope"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("expected ErrUnknownColor, got %v", err)
	}
}

func TestDarkPaletteDarkColors(t *testing.T) {
	for _, name := range []string{"navy", "black", "#000000"} {
		cmap, err := DarkPalette(name)
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
			continue
		}
		end, _ := NamedColor(name)
		hi, err := cmap.At(1)
		if err != nil {
			t.Errorf("%s: at 1: %v", name, err)
			continue
		}
		if luminance(hi) != luminance(end) {
			t.Errorf("%s: expected palette to end at %v, got %v", name, end, hi)
		}
		if n := len(cmap.Palette(1).Colors()); n != 1 {
			t.Errorf("%s: expected 1 color, got %d", name, n)
		}
	}
}

func TestLevelPalette(t *testing.T) {
	cmap, err := DarkPalette("palegreen")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		levels []float64
	}{
		{"single", []float64{0.5}},
		{"several", []float64{0.1, 0.4, 0.7, 0.95}},
		{"empty", nil},
	}
	for _, tt := range tests {
		p, err := LevelPalette(cmap, tt.levels, 1)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		colors := p.Colors()
		if len(colors) != len(tt.levels) {
			t.Errorf("%s: expected %d colors, got %d", tt.name, len(tt.levels), len(colors))
		}
		for i := 1; i < len(colors); i++ {
			if luminance(colors[i]) <= luminance(colors[i-1]) {
				t.Errorf("%s: level %d not lighter than level %d", tt.name, i, i-1)
			}
		}
	}

	if _, err := LevelPalette(cmap, []float64{1}, 0); err == nil {
		t.Error("expected error for zero maximum")
	}
}
