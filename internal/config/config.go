package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultKind     = "scatter"
	DefaultSamples  = 100
	DefaultBins     = 20
	DefaultCI       = 95.0
	DefaultBoot     = 500
	DefaultPalette  = "palegreen"
	DefaultLevels   = 10
	DefaultGrid     = 100
	DefaultFigSize  = 6.0
	DefaultFormat   = "png"
	DefaultCovXY    = -0.5
	DefaultVariance = 1.0
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Kind     string         `yaml:"kind" toml:"kind"`
	Seed     *int64         `yaml:"seed,omitempty" toml:"seed,omitempty"`
	Output   string         `yaml:"output,omitempty" toml:"output,omitempty"`
	Scatter  ScatterConfig  `yaml:"scatter" toml:"scatter"`
	Multivar MultivarConfig `yaml:"multivar" toml:"multivar"`
}

type ScatterConfig struct {
	Samples int     `yaml:"samples" toml:"samples"`
	Bins    int     `yaml:"bins" toml:"bins"`
	CI      float64 `yaml:"ci" toml:"ci"`
	Boot    int     `yaml:"boot" toml:"boot"`
	FigSize float64 `yaml:"figsize" toml:"figsize"`
}

type MultivarConfig struct {
	Samples int         `yaml:"samples" toml:"samples"`
	Mean    []float64   `yaml:"mean" toml:"mean"`
	Cov     [][]float64 `yaml:"cov" toml:"cov"`
	Palette string      `yaml:"palette" toml:"palette"`
	Levels  int         `yaml:"levels" toml:"levels"`
	Grid    int         `yaml:"grid" toml:"grid"`
	FigSize float64     `yaml:"figsize" toml:"figsize"`
}

func DefaultConfig() *Config {
	return &Config{
		Kind: DefaultKind,
		Scatter: ScatterConfig{
			Samples: DefaultSamples,
			Bins:    DefaultBins,
			CI:      DefaultCI,
			Boot:    DefaultBoot,
			FigSize: DefaultFigSize,
		},
		Multivar: MultivarConfig{
			Samples: DefaultSamples,
			Mean:    []float64{0, 0},
			Cov: [][]float64{
				{DefaultVariance, DefaultCovXY},
				{DefaultCovXY, DefaultVariance},
			},
			Palette: DefaultPalette,
			Levels:  DefaultLevels,
			Grid:    DefaultGrid,
			FigSize: DefaultFigSize,
		},
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a YAML file, or TOML when the path ends in .toml, on top of
// the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto decodes path over cfg. Keys missing from the file keep the
// values already in cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("config: decode %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	if isTOML(path) {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := toml.NewEncoder(file).Encode(cfg); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SetSeed stores a copy of seed so later edits to the argument do not leak in.
func (c *Config) SetSeed(seed int64) {
	c.Seed = &seed
}

func (c *Config) Validate() error {
	if c.Scatter.Samples < 3 {
		return fmt.Errorf("%w: scatter.samples must be at least 3, got %d", ErrInvalid, c.Scatter.Samples)
	}
	if c.Scatter.Bins <= 0 {
		return fmt.Errorf("%w: scatter.bins must be positive, got %d", ErrInvalid, c.Scatter.Bins)
	}
	if c.Scatter.CI < 0 || c.Scatter.CI >= 100 {
		return fmt.Errorf("%w: scatter.ci must be in [0, 100), got %v", ErrInvalid, c.Scatter.CI)
	}
	if c.Scatter.CI > 0 && c.Scatter.Boot < 2 {
		return fmt.Errorf("%w: scatter.boot must be at least 2 when ci is set, got %d", ErrInvalid, c.Scatter.Boot)
	}
	if c.Scatter.FigSize <= 0 || c.Multivar.FigSize <= 0 {
		return fmt.Errorf("%w: figsize must be positive", ErrInvalid)
	}

	m := c.Multivar
	if m.Samples < 3 {
		return fmt.Errorf("%w: multivar.samples must be at least 3, got %d", ErrInvalid, m.Samples)
	}
	if len(m.Mean) != 2 {
		return fmt.Errorf("%w: multivar.mean must have 2 entries, got %d", ErrInvalid, len(m.Mean))
	}
	if len(m.Cov) != 2 || len(m.Cov[0]) != 2 || len(m.Cov[1]) != 2 {
		return fmt.Errorf("%w: multivar.cov must be 2x2", ErrInvalid)
	}
	if m.Cov[0][1] != m.Cov[1][0] {
		return fmt.Errorf("%w: multivar.cov must be symmetric", ErrInvalid)
	}
	if m.Levels <= 0 {
		return fmt.Errorf("%w: multivar.levels must be positive, got %d", ErrInvalid, m.Levels)
	}
	if m.Grid < 2 {
		return fmt.Errorf("%w: multivar.grid must be at least 2, got %d", ErrInvalid, m.Grid)
	}
	return nil
}

// CovValues flattens the multivariate covariance row by row.
func (m MultivarConfig) CovValues() []float64 {
	out := make([]float64, 0, len(m.Cov)*len(m.Cov))
	for _, row := range m.Cov {
		out = append(out, row...)
	}
	return out
}
