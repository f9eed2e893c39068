// Package figure provides explicit figure and axes handles on top of
// gonum/plot.
//
// A [Figure] has a physical size and an ordered list of [Axes]. Each axes
// owns its own [plot.Plot] and is placed by the fractional position of its
// data area, the same convention matplotlib's add_axes uses, so tick labels
// and axis titles extend outside the requested rectangle:
//
//	fig := figure.New(6*vg.Inch, 6*vg.Inch)
//	ax := fig.AddAxes("main", 0.125, 0.11, 0.775, 0.77)
//	ax.Plot.Add(scatter)
//	ax.Despine(figure.Top, figure.Right)
//	err := fig.Save("out.png")
//
// # Spines
//
// The border lines around an axes data area are drawn by the axes itself
// rather than by gonum's axis lines, which lets each side be hidden on its
// own with [Axes.Despine].
package figure
