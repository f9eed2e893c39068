package demo_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/statplot/internal/config"
	"github.com/san-kum/statplot/internal/demo"
	"github.com/san-kum/statplot/internal/figure"
	"gonum.org/v1/gonum/mat"
)

var _ = Describe("Scatter", func() {
	var (
		reg *demo.Registry
		cfg *config.Config
	)

	BeforeEach(func() {
		reg = demo.NewRegistry()
		cfg = config.DefaultConfig()
		cfg.Scatter.Boot = 50
	})

	Context("with seed 0", func() {
		var res *demo.Result

		BeforeEach(func() {
			var err error
			res, err = reg.Render(context.Background(), "scatter", cfg, 0)
			Expect(err).NotTo(HaveOccurred())
		})

		It("draws a 2x100 sample matrix", func() {
			r, c := res.Samples.Dims()
			Expect(r).To(Equal(2))
			Expect(c).To(Equal(100))

			r, c = res.Points.Dims()
			Expect(r).To(Equal(100))
			Expect(c).To(Equal(2))
			Expect(res.Points.At(3, 1)).To(Equal(res.Samples.At(1, 3)))
		})

		It("exposes exactly three axes", func() {
			axes := res.Figure.Axes()
			Expect(axes).To(HaveLen(3))
			Expect(axes[0].Name).To(Equal("main"))
			Expect(axes[1].Name).To(Equal("x_marginal"))
			Expect(axes[2].Name).To(Equal("y_marginal"))
		})

		It("applies the spine pattern", func() {
			axes := res.Figure.Axes()
			Expect(axes[0].VisibleSpines()).To(BeEmpty())
			Expect(axes[1].VisibleSpines()).To(Equal([]figure.Spine{figure.Left}))
			Expect(axes[2].VisibleSpines()).To(Equal([]figure.Spine{figure.Bottom}))
		})

		It("records the seed and fit statistics", func() {
			Expect(res.Kind).To(Equal("scatter"))
			Expect(res.Seed).To(BeZero())
			Expect(res.Stats).To(HaveKey("slope"))
			Expect(res.Stats).To(HaveKey("intercept"))
			Expect(res.Stats["n"]).To(BeNumerically("==", 100))
			Expect(res.Stats["r"]).To(BeNumerically("~", 0, 0.35))
		})

		It("renders to png", func() {
			var buf bytes.Buffer
			Expect(res.Figure.Render(&buf, "png")).To(Succeed())
			Expect(buf.Len()).To(BeNumerically(">", 0))
		})

		It("is deterministic", func() {
			again, err := reg.Render(context.Background(), "scatter", cfg, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(mat.Equal(res.Samples, again.Samples)).To(BeTrue())
			Expect(again.Stats).To(Equal(res.Stats))
		})
	})

	It("keeps the same structure across seeds", func() {
		for seed := int64(1); seed <= 5; seed++ {
			res, err := reg.Render(context.Background(), "scatter", cfg, seed)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Figure.Axes()).To(HaveLen(3))
			Expect(res.Figure.Axes()[0].VisibleSpines()).To(BeEmpty())
		}
	})

	It("renders without a confidence band", func() {
		cfg.Scatter.CI = 0
		res, err := reg.Render(context.Background(), "scatter", cfg, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Figure.Axes()).To(HaveLen(3))
	})

	It("stops when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := reg.Render(ctx, "scatter", cfg, 0)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("reports a 6x6 figure by default", func() {
		res, err := reg.Render(context.Background(), "scatter", cfg, 0)
		Expect(err).NotTo(HaveOccurred())
		w, h := res.Figure.Size()
		Expect(w).To(BeNumerically("~", 6, 1e-9))
		Expect(h).To(BeNumerically("~", 6, 1e-9))
	})
})
