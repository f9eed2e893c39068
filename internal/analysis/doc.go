// Package analysis checks rendered demos against their expected structure
// and statistics.
//
//   - [PooledCovariance]: mean sample covariance over repeated draws
//   - [MaxAbsDiff]: largest elementwise deviation between two matrices
//   - [CheckSpines]: compares visible spines against an expected layout
//
// # Convergence
//
// Covariance estimates from n observations scatter around the target with
// a standard error of roughly 1/sqrt(n). Pooling r independent runs shrinks
// that by sqrt(r), which is what the verify command relies on:
//
//	pooled, _ := analysis.PooledCovariance(draws)
//	if analysis.MaxAbsDiff(pooled, target) > tol {
//	    // sampler or parameters are off
//	}
package analysis
