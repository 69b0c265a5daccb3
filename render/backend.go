// Package render draws ggchart Figures to image and document formats.
//
// Backends live in sub-packages and register themselves by name in init(),
// following the database/sql driver pattern:
//
//	import (
//	    "github.com/gogpu/ggchart/render"
//	    _ "github.com/gogpu/ggchart/render/raster" // png, jpeg
//	    _ "github.com/gogpu/ggchart/render/svg"    // svg
//	    _ "github.com/gogpu/ggchart/render/vector" // pdf, eps
//	)
//
//	err := render.WriteFile(ctx, fig, "chart.svg", "")
package render

import (
	"context"
	"io"

	"github.com/gogpu/ggchart"
)

// Backend draws a Figure into one output format.
//
// Render must not retain fig or w after it returns. A Backend instance is
// used for a single Render call; the registry hands out a fresh one each
// time, so implementations need no locking.
type Backend interface {
	// Render draws fig and writes the encoded result to w. It checks ctx
	// before starting and may check it between element groups.
	Render(ctx context.Context, fig *ggchart.Figure, w io.Writer) error
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(ctx context.Context, fig *ggchart.Figure, w io.Writer) error

// Render implements Backend.
func (f BackendFunc) Render(ctx context.Context, fig *ggchart.Figure, w io.Writer) error {
	return f(ctx, fig, w)
}
