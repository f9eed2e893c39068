package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/statplot/internal/figure"
	"github.com/spf13/cobra"
)

func newRenderFlags(t *testing.T) *cobra.Command {
	t.Helper()
	seed, output, configFile, preset = 0, "", "", ""
	cmd := &cobra.Command{Use: "render"}
	cmd.Flags().Int64Var(&seed, "seed", 0, "")
	cmd.Flags().StringVar(&output, "out", "", "")
	return cmd
}

func TestResolveConfigPrecedence(t *testing.T) {
	cmd := newRenderFlags(t)
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("seed: 9\nmultivar:\n  levels: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	preset = "strong"
	configFile = path

	cfg, err := resolveConfig(cmd, "multivar")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if *cfg.Seed != 9 {
		t.Errorf("config file seed should beat preset, got %d", *cfg.Seed)
	}
	if cfg.Multivar.Cov[0][1] != -0.9 {
		t.Errorf("preset covariance lost: %v", cfg.Multivar.Cov)
	}
	if cfg.Multivar.Levels != 3 {
		t.Errorf("expected levels 3, got %d", cfg.Multivar.Levels)
	}
	if cfg.Output != "multivar_9.png" {
		t.Errorf("unexpected default output %s", cfg.Output)
	}

	if err := cmd.Flags().Set("seed", "0"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("out", "plot.svg"); err != nil {
		t.Fatal(err)
	}
	cfg, err = resolveConfig(cmd, "multivar")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if *cfg.Seed != 0 || cfg.Output != "plot.svg" {
		t.Errorf("flags should win, got seed %d output %s", *cfg.Seed, cfg.Output)
	}
}

func TestResolveConfigClockSeed(t *testing.T) {
	cfg, err := resolveConfig(newRenderFlags(t), "scatter")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Seed == nil || *cfg.Seed == 0 {
		t.Error("expected a clock derived seed")
	}
}

func TestResolveConfigErrors(t *testing.T) {
	cmd := newRenderFlags(t)
	preset = "nonexistent"
	if _, err := resolveConfig(cmd, "scatter"); err == nil {
		t.Error("expected unknown preset error")
	}

	cmd = newRenderFlags(t)
	if err := cmd.Flags().Set("out", "plot.bmp"); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(cmd, "scatter"); !errors.Is(err, figure.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestOutputFormat(t *testing.T) {
	tests := map[string]string{
		"a.png":     "png",
		"dir/b.SVG": "svg",
		"noext":     "",
		"x.tar.pdf": "pdf",
	}
	for path, want := range tests {
		if got := outputFormat(path); got != want {
			t.Errorf("%s: expected %q, got %q", path, want, got)
		}
	}
}
