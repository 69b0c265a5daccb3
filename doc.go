// Package ggchart builds the speedup versus perceptual distance comparison
// chart: one method's trade-off curve across its operating presets plotted
// against single-point baselines.
//
// # Overview
//
// Building and drawing are separate. [Build] turns a [Dataset] and a [Style]
// into a [Figure], a backend-neutral scene in data coordinates. Backends in
// the render sub-packages draw a Figure to PNG, JPEG, SVG, PDF or EPS.
//
//	fig, err := ggchart.Build(ggchart.DefaultDataset(), ggchart.DefaultStyle())
//	if err != nil {
//	    return err
//	}
//	err = render.WriteFile(ctx, fig, "speedup_lpips.png", "")
//
// # Style
//
// All presentation settings travel in a Style value. Nothing is configured
// through package-level defaults, so any number of charts with different
// styles can be built in one process.
//
// # Coordinates
//
// Figure elements use data coordinates (speedup on x, LPIPS on y).
// [Figure.Layout] maps them to canvas points with the origin at the
// top-left, x growing right and y growing down.
package ggchart
