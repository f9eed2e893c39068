// Package sample draws seeded random samples for the demo plots.
//
// Every draw goes through a [Sampler], which owns a PCG source seeded from
// a single int64. Two samplers built from the same seed produce identical
// matrices:
//
//	s := sample.New(0)
//	xy := s.StandardNormal(2, 100)
//	pts, err := s.MultivariateNormal([]float64{0, 0}, cov, 100)
//
// Matrices are row-major [mat.Dense] values. The shape is whatever the
// caller asks for, so the same sampler serves both variable-per-row and
// observation-per-row layouts.
package sample
