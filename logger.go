package ggchart

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a render is logging from another goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggchart, its render backends and the
// underlying gg renderer. By default nothing is logged.
//
// Pass nil to restore the silent default.
//
// Log levels used by ggchart:
//   - [slog.LevelDebug]: build stages, element counts, backend selected,
//     raster size, font source
//   - [slog.LevelInfo]: files written
//   - [slog.LevelWarn]: font fallbacks
//
// Example:
//
//	ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// gg keeps its own sink; share ours so rasterizer diagnostics land
	// next to chart diagnostics.
	gg.SetLogger(l)
}

// Logger returns the current logger used by ggchart.
// Sub-packages (render/..., internal/fonts) call this so they follow the
// same configuration without an import cycle.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
