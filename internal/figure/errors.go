package figure

import "errors"

var (
	// ErrUnknownFormat indicates an output format gonum cannot encode.
	ErrUnknownFormat = errors.New("figure: unknown output format")

	// ErrUnknownColor indicates a color name that is neither a CSS name nor #rrggbb.
	ErrUnknownColor = errors.New("figure: unknown color")
)
