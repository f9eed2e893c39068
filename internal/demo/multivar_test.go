package demo_test

import (
	"bytes"
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/statplot/internal/config"
	"github.com/san-kum/statplot/internal/demo"
	"github.com/san-kum/statplot/internal/figure"
	"github.com/san-kum/statplot/internal/sample"
	"gonum.org/v1/gonum/mat"
)

var _ = Describe("Multivar", func() {
	var (
		reg *demo.Registry
		cfg *config.Config
	)

	BeforeEach(func() {
		reg = demo.NewRegistry()
		cfg = config.DefaultConfig()
		cfg.Multivar.Grid = 40
	})

	It("draws a 100x2 sample", func() {
		res, err := reg.Render(context.Background(), "multivar", cfg, 0)
		Expect(err).NotTo(HaveOccurred())

		r, c := res.Samples.Dims()
		Expect(r).To(Equal(100))
		Expect(c).To(Equal(2))
	})

	It("creates a single axes on a 6x6 inch figure", func() {
		res, err := reg.Render(context.Background(), "multivar", cfg, 0)
		Expect(err).NotTo(HaveOccurred())

		w, h := res.Figure.Size()
		Expect(w).To(BeNumerically("~", 6, 1e-9))
		Expect(h).To(BeNumerically("~", 6, 1e-9))
		Expect(res.Figure.Axes()).To(HaveLen(1))
		Expect(res.Figure.Axes()[0].VisibleSpines()).To(HaveLen(4))
	})

	It("renders the contour plot as svg", func() {
		res, err := reg.Render(context.Background(), "multivar", cfg, 1)
		Expect(err).NotTo(HaveOccurred())

		var buf bytes.Buffer
		Expect(res.Figure.Render(&buf, "svg")).To(Succeed())
		Expect(strings.Contains(buf.String(), "<svg")).To(BeTrue())
		Expect(res.Stats["density_max"]).To(BeNumerically(">", 0))
	})

	It("approximates the target covariance over repeated runs", func() {
		const runs = 300
		sum := mat.NewDense(2, 2, nil)
		for seed := int64(0); seed < runs; seed++ {
			pts, err := sample.New(seed).MultivariateNormal([]float64{0, 0}, mat.NewSymDense(2, cfg.Multivar.CovValues()), 100)
			Expect(err).NotTo(HaveOccurred())
			sum.Add(sum, sample.Covariance(pts))
		}
		sum.Scale(1.0/runs, sum)

		Expect(sum.At(0, 0)).To(BeNumerically("~", 1, 0.05))
		Expect(sum.At(1, 1)).To(BeNumerically("~", 1, 0.05))
		Expect(sum.At(0, 1)).To(BeNumerically("~", -0.5, 0.05))
		Expect(sum.At(1, 0)).To(BeNumerically("~", -0.5, 0.05))
	})

	It("is reproducible with a fixed seed", func() {
		a, err := reg.Render(context.Background(), "multivar", cfg, 11)
		Expect(err).NotTo(HaveOccurred())
		b, err := reg.Render(context.Background(), "multivar", cfg, 11)
		Expect(err).NotTo(HaveOccurred())
		Expect(mat.Equal(a.Samples, b.Samples)).To(BeTrue())
	})

	It("rejects a covariance that is not positive definite", func() {
		cfg.Multivar.Cov = [][]float64{{1, 2}, {2, 1}}
		_, err := reg.Render(context.Background(), "multivar", cfg, 0)
		Expect(err).To(MatchError(demo.ErrInvalidCovariance))
	})

	It("draws a single contour level", func() {
		cfg.Multivar.Levels = 1
		res, err := reg.Render(context.Background(), "multivar", cfg, 0)
		Expect(err).NotTo(HaveOccurred())

		var buf bytes.Buffer
		Expect(res.Figure.Render(&buf, "png")).To(Succeed())
	})

	It("accepts a palette darker than the base gray", func() {
		cfg.Multivar.Palette = "navy"
		_, err := reg.Render(context.Background(), "multivar", cfg, 0)
		Expect(err).NotTo(HaveOccurred())
	})

	It("stops when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := reg.Render(ctx, "multivar", cfg, 0)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("rejects an unknown palette color", func() {
		cfg.Multivar.Palette = "not-a-color"
		_, err := reg.Render(context.Background(), "multivar", cfg, 0)
		Expect(err).To(MatchError(figure.ErrUnknownColor))
	})
})
