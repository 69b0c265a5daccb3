package ggchart

import (
	"github.com/gogpu/gg"
	"golang.org/x/text/language"
)

// StyleOption adjusts a Style created by NewStyle.
//
// Example:
//
//	st := ggchart.NewStyle(
//	    ggchart.WithDPI(300),
//	    ggchart.WithFontFile("/usr/share/fonts/TTF/times.ttf"),
//	)
type StyleOption func(*Style)

// WithFontFamily sets the preferred typeface name.
func WithFontFamily(family string) StyleOption {
	return func(s *Style) {
		s.FontFamily = family
	}
}

// WithFontFile renders text with the font at path.
func WithFontFile(path string) StyleOption {
	return func(s *Style) {
		s.FontFile = path
	}
}

// WithSystemFonts enables resolving FontFamily among installed fonts.
func WithSystemFonts(enabled bool) StyleOption {
	return func(s *Style) {
		s.SystemFonts = enabled
	}
}

// WithFontSize sets the size of all chart text in points.
func WithFontSize(pt float64) StyleOption {
	return func(s *Style) {
		s.FontSize = pt
	}
}

// WithFigureSize sets the figure size in inches.
func WithFigureSize(w, h float64) StyleOption {
	return func(s *Style) {
		s.Width = w
		s.Height = h
	}
}

// WithDPI sets the raster resolution.
func WithDPI(dpi float64) StyleOption {
	return func(s *Style) {
		s.DPI = dpi
	}
}

// WithBackground sets the figure background.
func WithBackground(c gg.RGBA) StyleOption {
	return func(s *Style) {
		s.Background = c
	}
}

// WithLocale sets the locale used to format tick labels.
func WithLocale(tag language.Tag) StyleOption {
	return func(s *Style) {
		s.Locale = tag
	}
}
