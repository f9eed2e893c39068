package config

import "sort"

func seed(v int64) *int64 { return &v }

// Presets are keyed by demo kind, then preset name. Fields left zero keep
// their default values when applied.
var Presets = map[string]map[string]*Config{
	"scatter": {
		"reference": {
			Kind: "scatter", Seed: seed(0),
		},
		"dense": {
			Kind: "scatter", Seed: seed(0),
			Scatter: ScatterConfig{Samples: 1000, Bins: 40},
		},
		"nofit": {
			Kind:    "scatter",
			Scatter: ScatterConfig{CI: -1},
		},
	},
	"multivar": {
		"reference": {
			Kind: "multivar", Seed: seed(0),
		},
		"strong": {
			Kind: "multivar", Seed: seed(0),
			Multivar: MultivarConfig{Cov: [][]float64{{1, -0.9}, {-0.9, 1}}},
		},
		"wide": {
			Kind:     "multivar",
			Multivar: MultivarConfig{Samples: 500, Cov: [][]float64{{2, 0.3}, {0.3, 0.5}}, Palette: "skyblue"},
		},
	},
}

func GetPreset(kind, preset string) *Config {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	p, ok := kindPresets[preset]
	if !ok {
		return nil
	}
	return p
}

func ListPresets(kind string) []string {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(kindPresets))
	for name := range kindPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply overlays the non-zero fields of p onto c. A negative CI in a preset
// disables the confidence band.
func (c *Config) Apply(p *Config) {
	if p == nil {
		return
	}
	if p.Kind != "" {
		c.Kind = p.Kind
	}
	if p.Seed != nil {
		c.SetSeed(*p.Seed)
	}
	if p.Output != "" {
		c.Output = p.Output
	}

	s := p.Scatter
	if s.Samples != 0 {
		c.Scatter.Samples = s.Samples
	}
	if s.Bins != 0 {
		c.Scatter.Bins = s.Bins
	}
	if s.CI > 0 {
		c.Scatter.CI = s.CI
	} else if s.CI < 0 {
		c.Scatter.CI = 0
	}
	if s.Boot != 0 {
		c.Scatter.Boot = s.Boot
	}
	if s.FigSize != 0 {
		c.Scatter.FigSize = s.FigSize
	}

	m := p.Multivar
	if m.Samples != 0 {
		c.Multivar.Samples = m.Samples
	}
	if m.Mean != nil {
		c.Multivar.Mean = append([]float64(nil), m.Mean...)
	}
	if m.Cov != nil {
		c.Multivar.Cov = make([][]float64, len(m.Cov))
		for i, row := range m.Cov {
			c.Multivar.Cov[i] = append([]float64(nil), row...)
		}
	}
	if m.Palette != "" {
		c.Multivar.Palette = m.Palette
	}
	if m.Levels != 0 {
		c.Multivar.Levels = m.Levels
	}
	if m.Grid != 0 {
		c.Multivar.Grid = m.Grid
	}
	if m.FigSize != 0 {
		c.Multivar.FigSize = m.FigSize
	}
}
