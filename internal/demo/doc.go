// Package demo renders the named statistical demo plots.
//
// Each kind is a self-contained [Demo] built by the [Registry] from a
// [config.Config]:
//
//   - "scatter": a regression scatter of two standard-normal rows with
//     histogram and density marginals; main axes fully despined, the
//     x marginal keeps only its left spine, the y marginal only its bottom.
//   - "multivar": a bivariate normal sample drawn as kernel density
//     contours on a 6x6 inch figure using a dark-to-palegreen color map.
//
// Every run draws from a [sample.Sampler], so a fixed seed reproduces the
// exact figure:
//
//	reg := demo.NewRegistry()
//	res, err := reg.Render(ctx, "multivar", config.DefaultConfig(), 0)
//	err = res.Figure.Save("density.png")
package demo
