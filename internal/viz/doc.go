// Package viz provides terminal output for rendered demos.
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 dots per cell
//   - [Preview]: scatter of the samples plus marginal density curves
//   - [Picker]: Bubble Tea menu for choosing a kind and seed
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	j/k   - Move through plot kinds
//	h/l   - Decrease/increase seed
//	r     - Random seed
//	Enter - Render selected kind
//	q     - Quit
package viz
