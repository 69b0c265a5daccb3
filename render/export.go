package render

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/ggchart"
)

// Write draws fig with the named backend into w.
func Write(ctx context.Context, fig *ggchart.Figure, w io.Writer, format string) error {
	b, err := NewBackend(format)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	ggchart.Logger().Debug("render: drawing figure", "backend", format)
	return b.Render(ctx, fig, w)
}

// WriteFile draws fig into the file at path. An empty format selects the
// backend from the file extension.
//
// The file is created (or truncated) only once a backend is found. A
// partially written file is left in place when rendering fails.
func WriteFile(ctx context.Context, fig *ggchart.Figure, path, format string) (err error) {
	if format == "" {
		format, err = ForPath(path)
		if err != nil {
			return err
		}
	} else if !IsRegistered(format) {
		return fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, format)
	}

	f, err := os.Create(path) // #nosec G304 -- output path is chosen by the caller
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()

	if err := Write(ctx, fig, f, format); err != nil {
		return fmt.Errorf("render: %s: %w", format, err)
	}

	if info, serr := f.Stat(); serr == nil {
		ggchart.Logger().Info("render: wrote figure",
			"path", path, "backend", format, "bytes", info.Size())
	}
	return nil
}
