// Package fonts resolves the typefaces used to draw chart text.
package fonts

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggchart"
)

// Origin records where a Set's fonts came from.
type Origin string

const (
	OriginFile     Origin = "file"
	OriginSystem   Origin = "system"
	OriginEmbedded Origin = "embedded"
)

// Options selects the fonts to load. Sources are tried in order: File,
// then Family among system fonts when SystemLookup is set, then the
// embedded Go fonts.
type Options struct {
	File         string
	Family       string
	SystemLookup bool

	// CacheDir holds the system font index. Empty picks the platform
	// default.
	CacheDir string
}

// OptionsFor derives font options from a chart style.
func OptionsFor(st ggchart.Style) Options {
	return Options{
		File:         st.FontFile,
		Family:       st.FontFamily,
		SystemLookup: st.SystemFonts,
	}
}

// Set is a regular and bold font pair.
type Set struct {
	Regular *text.FontSource
	Bold    *text.FontSource
	Origin  Origin
}

// Load resolves opts to a font Set. Unusable file or system fonts are
// logged and skipped; Load only fails if the embedded fonts cannot be
// parsed.
func Load(opts Options) (*Set, error) {
	log := ggchart.Logger()

	if opts.File != "" {
		s, err := fromFile(opts.File)
		if err == nil {
			log.Debug("fonts: using font file", "path", opts.File)
			return s, nil
		}
		log.Warn("fonts: font file unusable, falling back", "path", opts.File, "err", err)
	}

	if opts.SystemLookup && opts.Family != "" {
		s, err := fromSystem(opts.Family, opts.CacheDir, log)
		if err == nil {
			log.Debug("fonts: using system family", "family", opts.Family)
			return s, nil
		}
		log.Warn("fonts: system family unavailable, falling back", "family", opts.Family, "err", err)
	}

	return Embedded()
}

// Embedded returns the Go fonts bundled with golang.org/x/image.
func Embedded() (*Set, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("fonts: go regular: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("fonts: go bold: %w", err)
	}
	return &Set{Regular: regular, Bold: bold, Origin: OriginEmbedded}, nil
}

// Face returns a face of the given size in points.
func (s *Set) Face(size float64, bold bool) text.Face {
	if bold {
		return s.Bold.Face(size)
	}
	return s.Regular.Face(size)
}

// Measure returns the advance of str in points at size. It has the shape
// of ggchart.TextMeasurer so layouts can be sized with the faces that draw.
func (s *Set) Measure(str string, size float64, bold bool) float64 {
	w, _ := text.Measure(str, s.Face(size, bold))
	return w
}

// Close releases both font sources.
func (s *Set) Close() error {
	err := s.Regular.Close()
	if s.Bold != s.Regular {
		if berr := s.Bold.Close(); err == nil {
			err = berr
		}
	}
	return err
}

// fromFile uses one file for both weights; a single file carries a single
// weight and no bold is synthesized.
func fromFile(path string) (*Set, error) {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, err
	}
	return &Set{Regular: src, Bold: src, Origin: OriginFile}, nil
}

func fromSystem(family, cacheDir string, log *slog.Logger) (*Set, error) {
	fm := fontscan.NewFontMap(printfLogger{log})
	if err := fm.UseSystemFonts(cacheDir); err != nil {
		return nil, err
	}

	locs := fm.FindSystemFonts(family)
	if len(locs) == 0 {
		return nil, fmt.Errorf("fonts: no installed family %q", family)
	}

	regular, bold := pickWeights(locs)
	rs, err := text.NewFontSourceFromFile(regular.File, text.WithCollectionIndex(int(regular.Index)))
	if err != nil {
		return nil, err
	}
	if bold == regular {
		return &Set{Regular: rs, Bold: rs, Origin: OriginSystem}, nil
	}
	bs, err := text.NewFontSourceFromFile(bold.File, text.WithCollectionIndex(int(bold.Index)))
	if err != nil {
		log.Warn("fonts: bold face unusable, using regular", "path", bold.File, "err", err)
		return &Set{Regular: rs, Bold: rs, Origin: OriginSystem}, nil
	}
	return &Set{Regular: rs, Bold: bs, Origin: OriginSystem}, nil
}

// pickWeights chooses upright regular and bold faces from a family by file
// name, the only attribute fontscan exposes per location.
func pickWeights(locs []fontscan.Location) (regular, bold fontscan.Location) {
	regular, bold = locs[0], locs[0]
	foundRegular, foundBold := false, false
	for _, loc := range locs {
		name := strings.ToLower(filepath.Base(loc.File))
		italic := strings.Contains(name, "italic") || strings.Contains(name, "oblique")
		switch {
		case italic:
		case strings.Contains(name, "bold") || strings.HasSuffix(strings.TrimSuffix(name, filepath.Ext(name)), "bd"):
			if !foundBold {
				bold, foundBold = loc, true
			}
		default:
			if !foundRegular {
				regular, foundRegular = loc, true
			}
		}
	}
	if !foundBold {
		bold = regular
	}
	return regular, bold
}

// printfLogger adapts slog to fontscan's Printf logger.
type printfLogger struct {
	l *slog.Logger
}

func (p printfLogger) Printf(format string, args ...interface{}) {
	p.l.Debug("fonts: fontscan: " + fmt.Sprintf(format, args...))
}
