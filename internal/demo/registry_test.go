package demo

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/statplot/internal/config"
)

func TestRegistryKinds(t *testing.T) {
	kinds := NewRegistry().Kinds()
	if len(kinds) != 2 || kinds[0] != "multivar" || kinds[1] != "scatter" {
		t.Errorf("unexpected kinds %v", kinds)
	}
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	for _, kind := range r.Kinds() {
		d, err := r.Get(kind, nil)
		if err != nil {
			t.Fatalf("get %s: %v", kind, err)
		}
		if d.Name() != kind {
			t.Errorf("expected name %s, got %s", kind, d.Name())
		}
		if d.Description() == "" {
			t.Errorf("%s has no description", kind)
		}
	}
}

func TestRegistryUnknownKind(t *testing.T) {
	_, err := NewRegistry().Get("histogram", nil)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}

	_, err = NewRegistry().Render(context.Background(), "histogram", nil, 0)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind from Render, got %v", err)
	}
}

func TestRegistryRenderValidates(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Scatter.Bins = 0

	_, err := NewRegistry().Render(context.Background(), "scatter", cfg, 0)
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("expected config.ErrInvalid, got %v", err)
	}
}
