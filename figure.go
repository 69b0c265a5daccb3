package ggchart

import "github.com/gogpu/gg"

// XY is a position in data coordinates: speedup on x, distance on y.
type XY struct {
	X, Y float64
}

// HAlign is the horizontal anchor of a label relative to its position.
type HAlign uint8

const (
	AlignCenter HAlign = iota
	AlignLeft
	AlignRight
)

// VAlign is the vertical anchor of a label relative to its position.
type VAlign uint8

const (
	// AlignBottom puts the bottom of the text box at the label position,
	// so the text sits above the point.
	AlignBottom VAlign = iota
	AlignMiddle
	AlignTop
)

// MarkerShape selects the glyph drawn at polyline vertices.
type MarkerShape uint8

const (
	MarkerNone MarkerShape = iota
	MarkerCircle
)

// Marker describes the glyph drawn at each polyline vertex.
type Marker struct {
	Shape MarkerShape
	// Size is the marker diameter in points.
	Size float64
}

// Bar is a vertical bar from y=0 up to Height, centered on X.
type Bar struct {
	Label  string
	X      float64
	Height float64
	Width  float64
	Color  gg.RGBA
	Alpha  float64
}

// Polyline is a connected line through Points in order.
type Polyline struct {
	Points []XY
	Color  gg.RGBA
	// Width is the stroke width in points.
	Width  float64
	Marker Marker
}

// Area is the region between a polyline through Points and the horizontal
// line y=Baseline.
type Area struct {
	Points   []XY
	Baseline float64
	Color    gg.RGBA
	Alpha    float64
}

// Label is a piece of text anchored at a data position.
type Label struct {
	Text   string
	X, Y   float64
	Color  gg.RGBA
	Bold   bool
	HAlign HAlign
	VAlign VAlign
}

// Figure is a fully resolved chart scene. Backends draw it element group by
// element group: areas, bars, lines, then labels, with axes framing the
// plot region. A Figure carries no legend.
type Figure struct {
	Style Style

	Areas  []Area
	Bars   []Bar
	Lines  []Polyline
	Labels []Label

	XAxis Axis
	YAxis Axis
}

// Layout resolves where the plot region sits on the canvas, sizing text
// with EstimateTextWidth.
func (f *Figure) Layout() Layout {
	return newLayout(f, nil)
}

// LayoutWith is like Layout but sizes text with measure, typically backed
// by the faces a backend draws with. A nil measure behaves like Layout.
func (f *Figure) LayoutWith(measure TextMeasurer) Layout {
	return newLayout(f, measure)
}
