package demo

import "errors"

var (
	// ErrUnknownKind indicates a demo name with no registered constructor.
	ErrUnknownKind = errors.New("demo: unknown plot kind")

	// ErrAxesLayout indicates a figure without the axes a demo expects.
	ErrAxesLayout = errors.New("demo: unexpected axes layout")

	// ErrInvalidCovariance indicates a covariance matrix that is not positive definite.
	ErrInvalidCovariance = errors.New("demo: covariance is not positive definite")
)
