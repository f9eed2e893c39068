package sample

import "errors"

var (
	// ErrNotPositiveDefinite indicates a covariance matrix that cannot back a normal distribution.
	ErrNotPositiveDefinite = errors.New("sample: covariance is not positive definite")

	// ErrDimension indicates mismatched mean and covariance sizes.
	ErrDimension = errors.New("sample: mean and covariance dimensions differ")

	// ErrSize indicates a non-positive sample count or shape.
	ErrSize = errors.New("sample: sample size must be positive")
)
