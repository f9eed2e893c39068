package analysis

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/statplot/internal/demo"
	"github.com/san-kum/statplot/internal/figure"
	"github.com/san-kum/statplot/internal/sample"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"
)

func TestPooledCovarianceConverges(t *testing.T) {
	target := mat.NewSymDense(2, []float64{1, -0.5, -0.5, 1})

	draws := make([]*mat.Dense, 0, 200)
	for seed := int64(0); seed < 200; seed++ {
		m, err := sample.New(seed).MultivariateNormal([]float64{0, 0}, target, 100)
		if err != nil {
			t.Fatalf("draw: %v", err)
		}
		draws = append(draws, m)
	}

	pooled, err := PooledCovariance(draws)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}

	tol := 6 * StandardError(100, 200)
	if diff := MaxAbsDiff(pooled, target); diff > tol {
		t.Errorf("pooled covariance off by %.4f (tolerance %.4f)", diff, tol)
	}
}

func TestPooledCovarianceErrors(t *testing.T) {
	if _, err := PooledCovariance(nil); !errors.Is(err, ErrNoDraws) {
		t.Errorf("expected ErrNoDraws, got %v", err)
	}

	draws := []*mat.Dense{mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 7}), mat.NewDense(3, 3, nil)}
	if _, err := PooledCovariance(draws); err == nil {
		t.Error("expected error for mixed widths")
	}
}

func TestMaxAbsDiff(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{1, 2.5, 3, 3})
	if got := MaxAbsDiff(a, b); math.Abs(got-1) > 1e-12 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestCheckSpines(t *testing.T) {
	fig := figure.New(vg.Inch, vg.Inch)
	main := fig.AddAxes("main", 0, 0, 1, 1)
	marg := fig.AddAxes("marg", 0, 0, 1, 1)
	main.Despine(figure.AllSpines...)
	marg.Despine(figure.Top, figure.Right, figure.Bottom)

	want := SpineLayout{
		"main": nil,
		"marg": {figure.Left},
	}
	if err := CheckSpines(fig, want); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	marg.Respine(figure.Top)
	if err := CheckSpines(fig, want); err == nil {
		t.Error("expected mismatch after respine")
	}

	want["extra"] = nil
	marg.Despine(figure.Top)
	if err := CheckSpines(fig, want); err == nil {
		t.Error("expected missing axes error")
	}
}

func TestLayoutsMatchDemos(t *testing.T) {
	reg := demo.NewRegistry()
	for _, kind := range reg.Kinds() {
		want, ok := Layouts[kind]
		if !ok {
			t.Errorf("no spine layout for %s", kind)
			continue
		}

		res, err := reg.Render(context.Background(), kind, nil, 3)
		if err != nil {
			t.Fatalf("render %s: %v", kind, err)
		}
		if err := CheckSpines(res.Figure, want); err != nil {
			t.Errorf("%s: %v", kind, err)
		}
	}
}
