package demo

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/statplot/internal/config"
	"github.com/san-kum/statplot/internal/figure"
	"github.com/san-kum/statplot/internal/sample"
	"gonum.org/v1/gonum/mat"
)

type Demo interface {
	Name() string
	Description() string
	Run(ctx context.Context, s *sample.Sampler) (*Result, error)
}

type Result struct {
	Kind   string
	Seed   int64
	Figure *figure.Figure

	// Samples keeps the layout the demo drew; Points always has one
	// observation per row and x, y columns.
	Samples *mat.Dense
	Points  *mat.Dense

	Stats map[string]float64
}

type Registry struct {
	demos map[string]func(*config.Config) Demo
}

func NewRegistry() *Registry {
	r := &Registry{
		demos: make(map[string]func(*config.Config) Demo),
	}

	r.demos["scatter"] = func(cfg *config.Config) Demo { return NewScatter(cfg.Scatter) }
	r.demos["multivar"] = func(cfg *config.Config) Demo { return NewMultivar(cfg.Multivar) }

	return r
}

func (r *Registry) Get(kind string, cfg *config.Config) (Demo, error) {
	fn, ok := r.demos[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownKind, kind, r.Kinds())
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return fn(cfg), nil
}

func (r *Registry) Kinds() []string {
	names := make([]string, 0, len(r.demos))
	for name := range r.demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render validates cfg, builds the named demo and runs it with a sampler
// seeded from seed.
func (r *Registry) Render(ctx context.Context, kind string, cfg *config.Config, seed int64) (*Result, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d, err := r.Get(kind, cfg)
	if err != nil {
		return nil, err
	}

	res, err := d.Run(ctx, sample.New(seed))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return res, nil
}
