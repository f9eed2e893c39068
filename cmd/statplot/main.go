package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/san-kum/statplot/internal/analysis"
	"github.com/san-kum/statplot/internal/compute"
	"github.com/san-kum/statplot/internal/config"
	"github.com/san-kum/statplot/internal/demo"
	"github.com/san-kum/statplot/internal/figure"
	"github.com/san-kum/statplot/internal/observability"
	"github.com/san-kum/statplot/internal/storage"
	"github.com/san-kum/statplot/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var (
	dataDir string
	verbose bool
	theme   string

	seed       int64
	output     string
	configFile string
	preset     string
	noSave     bool
	preview    bool

	verifyRuns int
	benchRuns  int
	workers    int
)

// main registers the statplot commands and runs the picker when no
// subcommand is given. Any returned error is logged and exits with status 1.
func main() {
	rootCmd := &cobra.Command{
		Use:           "statplot",
		Short:         "seeded statistical demo plots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			observability.InitLogger("statplot", verbose)
			viz.SetTheme(theme)
		},
		RunE: runPicker,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".statplot", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "seaborn", "terminal theme")

	renderCmd := &cobra.Command{
		Use:   "render [kind]",
		Short: "render a demo to an image file",
		Args:  cobra.ExactArgs(1),
		RunE:  renderDemo,
	}
	renderCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: derived from the clock)")
	renderCmd.Flags().StringVarP(&output, "out", "o", "", "output image path (png, svg, pdf, eps, jpg, tif)")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	renderCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run")
	renderCmd.Flags().BoolVar(&preview, "preview", false, "print a terminal preview")

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "list demo kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := demo.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, kind := range reg.Kinds() {
				d, err := reg.Get(kind, nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", kind, d.Description())
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [kind]",
		Short: "list available presets for a kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for kind: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [run_id]",
		Short: "terminal preview of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  previewRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportCSV(os.Stdout, args[0])
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	verifyCmd := &cobra.Command{
		Use:   "verify [kind]",
		Short: "check figure structure over many seeds",
		Args:  cobra.ExactArgs(1),
		RunE:  verifyDemo,
	}
	verifyCmd.Flags().IntVar(&verifyRuns, "runs", 50, "number of seeded runs")
	verifyCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default: one per CPU)")

	benchCmd := &cobra.Command{
		Use:   "bench [kind]",
		Short: "benchmark in-memory renders",
		Args:  cobra.ExactArgs(1),
		RunE:  benchDemo,
	}
	benchCmd.Flags().IntVar(&benchRuns, "runs", 20, "renders per format")

	rootCmd.AddCommand(renderCmd, kindsCmd, presetsCmd, runsCmd, showCmd, previewCmd, exportCSVCmd, exportJSONCmd, verifyCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("statplot failed")
		os.Exit(1)
	}
}

// resolveConfig layers defaults, preset, config file and flags in that order.
func resolveConfig(cmd *cobra.Command, kind string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(kind, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(kind))
		}
		cfg.Apply(p)
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg.Kind = kind
	if cmd.Flags().Changed("seed") {
		cfg.SetSeed(seed)
	}
	if cfg.Seed == nil {
		cfg.SetSeed(time.Now().UnixNano())
		log.Debug().Int64("seed", *cfg.Seed).Msg("no seed given, derived from clock")
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = output
	}
	if cfg.Output == "" {
		cfg.Output = fmt.Sprintf("%s_%d.%s", kind, *cfg.Seed, config.DefaultFormat)
	}
	if format := outputFormat(cfg.Output); !slices.Contains(figure.Formats(), format) {
		return nil, fmt.Errorf("%w: %q (supported: %v)", figure.ErrUnknownFormat, format, figure.Formats())
	}
	return cfg, nil
}

func renderDemo(cmd *cobra.Command, args []string) error {
	kind := args[0]

	cfg, err := resolveConfig(cmd, kind)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := demo.NewRegistry().Render(cmd.Context(), kind, cfg, *cfg.Seed)
	if err != nil {
		return err
	}
	if err := res.Figure.Save(cfg.Output); err != nil {
		return err
	}
	elapsed := time.Since(start)

	log.Info().
		Str("kind", kind).
		Int64("seed", res.Seed).
		Str("output", cfg.Output).
		Dur("elapsed", elapsed).
		Msg("rendered")

	fields := []viz.Field{
		{Label: "kind", Value: kind},
		{Label: "seed", Value: strconv.FormatInt(res.Seed, 10)},
		{Label: "output", Value: cfg.Output},
		{Label: "time", Value: elapsed.Round(time.Millisecond).String()},
	}

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(res, cfg.Output)
		if err != nil {
			return err
		}
		fields = append(fields, viz.Field{Label: "run id", Value: runID})
	}

	fmt.Println(viz.Summary("statplot render", fields, res.Stats))

	if preview {
		out, err := viz.Preview(res.Points, res.Stats)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

func runPicker(cmd *cobra.Command, args []string) error {
	reg := demo.NewRegistry()
	kinds := reg.Kinds()
	descriptions := make(map[string]string, len(kinds))
	for _, kind := range kinds {
		d, err := reg.Get(kind, nil)
		if err != nil {
			return err
		}
		descriptions[kind] = d.Description()
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	render := func(kind string, s int64) (string, error) {
		cfg := config.DefaultConfig()
		cfg.Kind = kind
		cfg.SetSeed(s)

		res, err := reg.Render(context.Background(), kind, cfg, s)
		if err != nil {
			return "", err
		}
		out := fmt.Sprintf("%s_%d.%s", kind, s, config.DefaultFormat)
		if err := res.Figure.Save(out); err != nil {
			return "", err
		}
		runID, err := st.Save(res, out)
		if err != nil {
			return "", err
		}
		return viz.Summary(kind, []viz.Field{
			{Label: "output", Value: out},
			{Label: "run id", Value: runID},
		}, res.Stats), nil
	}

	return viz.RunPicker(viz.NewPicker(kinds, descriptions, 0, render))
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tSEED\tSIZE\tOUTPUT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1fx%.1fin\t%s\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.Width,
			run.Height,
			run.Output,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	meta, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}

	fields := []viz.Field{
		{Label: "kind", Value: meta.Kind},
		{Label: "seed", Value: strconv.FormatInt(meta.Seed, 10)},
		{Label: "time", Value: meta.Timestamp.Format(time.RFC3339)},
		{Label: "output", Value: meta.Output},
		{Label: "size", Value: fmt.Sprintf("%.1f x %.1f in", meta.Width, meta.Height)},
	}
	for _, ax := range meta.Axes {
		fields = append(fields, viz.Field{Label: ax.Name, Value: fmt.Sprintf("spines %v", ax.Spines)})
	}

	fmt.Println(viz.Summary(meta.ID, fields, meta.Stats))
	return nil
}

func previewRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	out, err := viz.Preview(points, meta.Stats)
	if err != nil {
		return err
	}
	fmt.Printf("run: %s\nkind: %s\n\n%s\n", meta.ID, meta.Kind, out)
	return nil
}

// verifyDemo renders kind over seeds 0..runs-1 and checks the spine layout,
// the sample shape, seed determinism and, for multivar, the pooled covariance.
func verifyDemo(cmd *cobra.Command, args []string) error {
	kind := args[0]
	if verifyRuns < 1 {
		return fmt.Errorf("--runs must be positive, got %d", verifyRuns)
	}

	layout, ok := analysis.Layouts[kind]
	if !ok {
		return fmt.Errorf("%w: %s", demo.ErrUnknownKind, kind)
	}

	reg := demo.NewRegistry()
	cfg := config.DefaultConfig()
	ctx := cmd.Context()

	draws := make([]*mat.Dense, verifyRuns)
	samples := make([]*mat.Dense, verifyRuns)
	err := compute.NewPool(workers).Seeds(ctx, verifyRuns, func(ctx context.Context, s int64) error {
		res, err := reg.Render(ctx, kind, cfg, s)
		if err != nil {
			return fmt.Errorf("seed %d: %w", s, err)
		}
		if err := analysis.CheckSpines(res.Figure, layout); err != nil {
			return fmt.Errorf("seed %d: %w", s, err)
		}
		if r, c := res.Points.Dims(); c != 2 {
			return fmt.Errorf("seed %d: points are %dx%d, want Nx2", s, r, c)
		}
		draws[s], samples[s] = res.Points, res.Samples
		log.Debug().Int64("seed", s).Msg("verified")
		return nil
	})
	if err != nil {
		return err
	}

	again, err := reg.Render(ctx, kind, cfg, 0)
	if err != nil {
		return err
	}
	if !mat.Equal(samples[0], again.Samples) {
		return errors.New("seed 0 is not reproducible")
	}

	fmt.Printf("%s: %d runs, spine layout ok, seed 0 reproducible\n", kind, verifyRuns)

	if kind != "multivar" {
		return nil
	}

	pooled, err := analysis.PooledCovariance(draws)
	if err != nil {
		return err
	}
	target := mat.NewSymDense(2, cfg.Multivar.CovValues())
	tol := 6 * analysis.StandardError(cfg.Multivar.Samples, verifyRuns)
	diff := analysis.MaxAbsDiff(pooled, target)

	fmt.Printf("pooled covariance: [[%.4f %.4f] [%.4f %.4f]]\n",
		pooled.At(0, 0), pooled.At(0, 1), pooled.At(1, 0), pooled.At(1, 1))
	fmt.Printf("max deviation: %.4f (tolerance %.4f)\n", diff, tol)
	if diff > tol {
		return fmt.Errorf("pooled covariance deviates from target by %.4f", diff)
	}
	return nil
}

func benchDemo(cmd *cobra.Command, args []string) error {
	kind := args[0]
	if benchRuns < 1 {
		return fmt.Errorf("--runs must be positive, got %d", benchRuns)
	}
	reg := demo.NewRegistry()
	cfg := config.DefaultConfig()

	fmt.Printf("benchmarking %s\n\n", kind)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FORMAT\tRUNS\tBUILD\tDRAW\tPER RUN")

	for _, format := range []string{"png", "svg", "pdf"} {
		var build, draw time.Duration
		for i := 0; i < benchRuns; i++ {
			start := time.Now()
			res, err := reg.Render(cmd.Context(), kind, cfg, int64(i))
			if err != nil {
				return err
			}
			mid := time.Now()
			if err := res.Figure.Render(io.Discard, format); err != nil {
				return err
			}
			build += mid.Sub(start)
			draw += time.Since(mid)
		}

		per := (build + draw) / time.Duration(benchRuns)
		fmt.Fprintf(w, "%s\t%d\t%v\t%v\t%v\n", format, benchRuns, build, draw, per)
	}

	return w.Flush()
}

// outputFormat is the image format implied by path's extension.
func outputFormat(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
