package ggchart

import "math"

// Spacing constants in points.
const (
	TickLength = 3.5
	TickPad    = 3.5
	LabelPad   = 4.0

	// lineHeight is the text box height as a multiple of the font size.
	lineHeight = 1.2
)

// Rect is an axis-aligned rectangle in points with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Layout places a figure's plot region on its canvas. All values are in
// points (1/72 inch) with y growing downwards, matching both gg and SVG.
type Layout struct {
	Canvas Rect
	Plot   Rect

	FontSize float64

	x, y    Axis
	measure TextMeasurer
}

// TextMeasurer returns the advance width of s in points when set at size.
type TextMeasurer func(s string, size float64, bold bool) float64

// TextWidth measures s with the same function that sized the margins.
func (l Layout) TextWidth(s string, bold bool) float64 {
	if l.measure == nil {
		return EstimateTextWidth(s, l.FontSize, bold)
	}
	return l.measure(s, l.FontSize, bold)
}

// MapX converts a data x value to a canvas x coordinate.
func (l Layout) MapX(v float64) float64 {
	return l.Plot.X + l.x.Norm(v)*l.Plot.W
}

// MapY converts a data y value to a canvas y coordinate.
func (l Layout) MapY(v float64) float64 {
	return l.Plot.Bottom() - l.y.Norm(v)*l.Plot.H
}

// Map converts a data point to canvas coordinates.
func (l Layout) Map(p XY) (x, y float64) {
	return l.MapX(p.X), l.MapY(p.Y)
}

// LineHeight returns the height reserved for one line of text.
func (l Layout) LineHeight() float64 {
	return l.FontSize * lineHeight
}

// newLayout computes the plot rectangle the way a tight layout does: axis
// decorations get exactly the room they need, plus the style pad, and the
// region grows back wherever in-plot labels would spill off the canvas.
func newLayout(f *Figure, measure TextMeasurer) Layout {
	if measure == nil {
		measure = EstimateTextWidth
	}
	st := f.Style
	size := st.FontSize
	pad := st.Pad * size
	lh := size * lineHeight

	canvas := Rect{W: st.Width * 72, H: st.Height * 72}

	var yTickW float64
	for _, t := range f.YAxis.Ticks {
		yTickW = math.Max(yTickW, measure(t.Label, size, false))
	}

	left := pad + lh + LabelPad + yTickW + TickPad + TickLength
	bottom := pad + lh + LabelPad + lh + TickPad + TickLength
	top := pad
	right := pad
	if n := len(f.XAxis.Ticks); n > 0 {
		last := f.XAxis.Ticks[n-1]
		right = math.Max(right, pad+measure(last.Label, size, false)/2)
	}

	l := Layout{Canvas: canvas, FontSize: size, x: f.XAxis, y: f.YAxis, measure: measure}
	setPlot := func() {
		l.Plot = Rect{
			X: left,
			Y: top,
			W: math.Max(1, canvas.W-left-right),
			H: math.Max(1, canvas.H-top-bottom),
		}
	}
	setPlot()

	// Labels are placed relative to the plot region, which depends on
	// the margins they force; a few rounds settle it.
	for range 3 {
		t, r := top, right
		for _, lb := range f.Labels {
			x, y := l.MapX(lb.X), l.MapY(lb.Y)
			_, y0, x1, _ := labelBox(lb, x, y, size, measure(lb.Text, size, lb.Bold))
			t = math.Max(t, pad+(l.Plot.Y-y0))
			r = math.Max(r, pad+(x1-l.Plot.Right()))
		}
		if t == top && r == right {
			break
		}
		top, right = t, r
		setPlot()
	}

	return l
}

// labelBox returns the canvas box of lb drawn at (x, y) with advance w.
func labelBox(lb Label, x, y, size, w float64) (x0, y0, x1, y1 float64) {
	h := size * lineHeight

	switch lb.HAlign {
	case AlignLeft:
		x0 = x
	case AlignRight:
		x0 = x - w
	default:
		x0 = x - w/2
	}
	switch lb.VAlign {
	case AlignTop:
		y0 = y
	case AlignMiddle:
		y0 = y - h/2
	default:
		y0 = y - h
	}
	return x0, y0, x0 + w, y0 + h
}

// EstimateTextWidth approximates the advance of s in points for a
// proportional serif face. It is the measurer for outputs whose fonts are
// chosen by the viewer, such as SVG.
func EstimateTextWidth(s string, size float64, bold bool) float64 {
	var em float64
	for _, r := range s {
		switch {
		case r == ' ':
			em += 0.25
		case r == 'i' || r == 'j' || r == 'l' || r == 'I' || r == '.' || r == ',' || r == '\'' || r == '|':
			em += 0.28
		case r == 'f' || r == 't' || r == 'r' || r == '(' || r == ')':
			em += 0.35
		case r == 'm' || r == 'w' || r == 'M' || r == 'W':
			em += 0.8
		case r >= 'A' && r <= 'Z':
			em += 0.68
		case r >= '0' && r <= '9':
			em += 0.5
		default:
			em += 0.5
		}
	}
	if bold {
		em *= 1.06
	}
	return em * size
}
