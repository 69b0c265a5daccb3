package ggchart

import (
	"fmt"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
)

// Style holds every presentation setting of a chart. It is passed to Build
// by value; nothing is configured through package state, so charts with
// different styles can be built side by side.
type Style struct {
	// FontFamily names the preferred typeface. Backends that can resolve
	// families use it; others fall back to their default serif.
	FontFamily string

	// FontFile, when set, is a TTF/OTF file used instead of FontFamily.
	FontFile string

	// SystemFonts enables looking FontFamily up among installed fonts.
	// The first lookup scans the system and can take a while.
	SystemFonts bool

	// FontSize is the size of all chart text, in points.
	FontSize float64

	Background gg.RGBA
	Foreground gg.RGBA

	// Width and Height are the figure size in inches.
	Width, Height float64

	// DPI converts inches to pixels for raster output.
	DPI float64

	// BarWidth is the width of baseline bars in x data units.
	BarWidth float64

	// BarAlpha and FillAlpha are the opacities of baseline bars and of the
	// area under the trend.
	BarAlpha  float64
	FillAlpha float64

	// LineWidth is the trend stroke width and MarkerSize the trend marker
	// diameter, both in points.
	LineWidth  float64
	MarkerSize float64

	// Pad is the outer figure margin as a fraction of FontSize.
	Pad float64

	// Locale formats tick labels.
	Locale language.Tag
}

// DefaultStyle returns the style of the published figure: 16pt Times New
// Roman on white, 8×5 inches at 100 DPI.
func DefaultStyle() Style {
	return Style{
		FontFamily: "Times New Roman",
		FontSize:   16,
		Background: gg.White,
		Foreground: gg.Black,
		Width:      8,
		Height:     5,
		DPI:        100,
		BarWidth:   0.18,
		BarAlpha:   0.4,
		FillAlpha:  0.2,
		LineWidth:  3,
		MarkerSize: 6,
		Pad:        0.1,
		Locale:     language.English,
	}
}

// NewStyle returns DefaultStyle with opts applied in order.
func NewStyle(opts ...StyleOption) Style {
	s := DefaultStyle()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Validate reports settings no backend can render.
func (s Style) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: figure size %gx%g", ErrInvalidStyle, s.Width, s.Height)
	case s.DPI <= 0:
		return fmt.Errorf("%w: dpi %g", ErrInvalidStyle, s.DPI)
	case s.FontSize <= 0:
		return fmt.Errorf("%w: font size %g", ErrInvalidStyle, s.FontSize)
	case s.BarWidth <= 0:
		return fmt.Errorf("%w: bar width %g", ErrInvalidStyle, s.BarWidth)
	}
	return nil
}

// PixelSize returns the raster size of the figure.
func (s Style) PixelSize() (w, h int) {
	return int(s.Width*s.DPI + 0.5), int(s.Height*s.DPI + 0.5)
}
