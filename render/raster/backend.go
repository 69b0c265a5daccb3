// Package raster draws ggchart Figures to PNG and JPEG using gg.Context.
//
// The figure is laid out in points and drawn through a uniform scale of
// DPI/72, so an 8×5 inch figure at 100 DPI becomes an 800×500 image. Text
// uses the faces resolved by the fonts package: an explicit font file, an
// installed family, or the embedded Go fonts.
//
// # Example
//
//	// Import to register the "png" and "jpeg" backends
//	import _ "github.com/gogpu/ggchart/render/raster"
//
//	err := render.WriteFile(ctx, fig, "chart.png", "")
//
//	// Or draw without encoding
//	img, err := raster.Rasterize(ctx, fig)
package raster

import (
	"context"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/fonts"
	"github.com/gogpu/ggchart/render"
)

// Format selects the image encoding.
type Format uint8

const (
	FormatPNG Format = iota
	FormatJPEG
)

// DefaultJPEGQuality is the quality used by the registered "jpeg" backend.
const DefaultJPEGQuality = 95

// spineWidth is the width of the plot frame and tick marks in points.
const spineWidth = 0.8

func init() {
	render.Register("png", func() render.Backend {
		return NewBackend(FormatPNG)
	}, ".png")
	render.Register("jpeg", func() render.Backend {
		return NewBackend(FormatJPEG)
	}, ".jpg", ".jpeg")
}

// Backend rasterizes a Figure and encodes it.
type Backend struct {
	format  Format
	quality int

	dc     *gg.Context
	fonts  *fonts.Set
	layout ggchart.Layout
	style  ggchart.Style
}

var _ render.Backend = (*Backend)(nil)

// NewBackend creates a raster backend for the given format.
func NewBackend(format Format) *Backend {
	return &Backend{format: format, quality: DefaultJPEGQuality}
}

// SetJPEGQuality sets the JPEG quality in [1, 100]. Ignored for PNG.
func (b *Backend) SetJPEGQuality(q int) {
	b.quality = min(max(q, 1), 100)
}

// Render implements render.Backend.
func (b *Backend) Render(ctx context.Context, fig *ggchart.Figure, w io.Writer) error {
	if err := b.draw(ctx, fig); err != nil {
		return err
	}
	defer b.release()

	switch b.format {
	case FormatJPEG:
		return b.dc.EncodeJPEG(w, b.quality)
	default:
		return b.dc.EncodePNG(w)
	}
}

// Rasterize draws fig and returns the image without encoding it.
func Rasterize(ctx context.Context, fig *ggchart.Figure) (image.Image, error) {
	b := NewBackend(FormatPNG)
	if err := b.draw(ctx, fig); err != nil {
		return nil, err
	}
	defer b.release()
	return b.dc.Image(), nil
}

func (b *Backend) release() {
	if b.fonts != nil {
		_ = b.fonts.Close()
		b.fonts = nil
	}
	if b.dc != nil {
		_ = b.dc.Close()
	}
}

func (b *Backend) draw(ctx context.Context, fig *ggchart.Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	set, err := fonts.Load(fonts.OptionsFor(fig.Style))
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	b.fonts = set

	b.style = fig.Style
	b.layout = fig.LayoutWith(set.Measure)

	pw, ph := fig.Style.PixelSize()
	b.dc = gg.NewContext(pw, ph)
	b.dc.ClearWithColor(fig.Style.Background)
	// Points to pixels; exact per axis so the canvas fills the image.
	b.dc.Scale(float64(pw)/b.layout.Canvas.W, float64(ph)/b.layout.Canvas.H)

	ggchart.Logger().Debug("raster: drawing",
		"width", pw, "height", ph, "fonts", string(set.Origin))

	steps := []func(*ggchart.Figure){
		b.drawData,
		b.drawAxes,
		b.drawLabels,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			b.release()
			return err
		}
		step(fig)
	}
	return nil
}

// drawData draws areas, bars and lines clipped to the plot region.
func (b *Backend) drawData(fig *ggchart.Figure) {
	dc, l := b.dc, b.layout

	dc.Push()
	defer dc.Pop()
	dc.ClipRect(l.Plot.X, l.Plot.Y, l.Plot.W, l.Plot.H)

	for _, a := range fig.Areas {
		if len(a.Points) == 0 {
			continue
		}
		first, last := a.Points[0], a.Points[len(a.Points)-1]
		dc.MoveTo(l.MapX(first.X), l.MapY(a.Baseline))
		for _, p := range a.Points {
			dc.LineTo(l.Map(p))
		}
		dc.LineTo(l.MapX(last.X), l.MapY(a.Baseline))
		dc.ClosePath()
		dc.SetColor(ggchart.WithAlpha(a.Color, a.Alpha))
		_ = dc.Fill()
	}

	for _, bar := range fig.Bars {
		x0 := l.MapX(bar.X - bar.Width/2)
		x1 := l.MapX(bar.X + bar.Width/2)
		top, base := l.MapY(bar.Height), l.MapY(0)
		dc.DrawRectangle(x0, top, x1-x0, base-top)
		dc.SetColor(ggchart.WithAlpha(bar.Color, bar.Alpha))
		_ = dc.Fill()
	}

	for _, line := range fig.Lines {
		if len(line.Points) == 0 {
			continue
		}
		dc.SetColor(line.Color)
		dc.SetLineWidth(line.Width)
		dc.SetLineJoin(gg.LineJoinRound)
		dc.SetLineCap(gg.LineCapRound)
		dc.MoveTo(l.Map(line.Points[0]))
		for _, p := range line.Points[1:] {
			dc.LineTo(l.Map(p))
		}
		_ = dc.Stroke()

		if line.Marker.Shape == ggchart.MarkerCircle {
			for _, p := range line.Points {
				x, y := l.Map(p)
				dc.DrawCircle(x, y, line.Marker.Size/2)
				_ = dc.Fill()
			}
		}
	}
}

// drawAxes draws the plot frame, ticks, tick labels and axis titles.
func (b *Backend) drawAxes(fig *ggchart.Figure) {
	dc, l, st := b.dc, b.layout, b.style
	plot := l.Plot

	dc.SetColor(st.Foreground)
	dc.SetLineWidth(spineWidth)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinMiter)
	dc.DrawRectangle(plot.X, plot.Y, plot.W, plot.H)
	_ = dc.Stroke()

	dc.SetFont(b.fonts.Face(st.FontSize, false))

	for _, t := range fig.XAxis.Ticks {
		if !fig.XAxis.Contains(t.Value) {
			continue
		}
		x := l.MapX(t.Value)
		dc.DrawLine(x, plot.Bottom(), x, plot.Bottom()+ggchart.TickLength)
		_ = dc.Stroke()
		dc.DrawStringAnchored(t.Label, x, plot.Bottom()+ggchart.TickLength+ggchart.TickPad, 0.5, 0)
	}

	var tickW float64
	for _, t := range fig.YAxis.Ticks {
		if !fig.YAxis.Contains(t.Value) {
			continue
		}
		y := l.MapY(t.Value)
		dc.DrawLine(plot.X-ggchart.TickLength, y, plot.X, y)
		_ = dc.Stroke()
		dc.DrawStringAnchored(t.Label, plot.X-ggchart.TickLength-ggchart.TickPad, y, 1, 0.5)
		tickW = math.Max(tickW, l.TextWidth(t.Label, false))
	}

	lh := l.LineHeight()
	xTitleY := plot.Bottom() + ggchart.TickLength + ggchart.TickPad + lh + ggchart.LabelPad
	dc.DrawStringAnchored(fig.XAxis.Label, plot.X+plot.W/2, xTitleY, 0.5, 0)

	yTitleX := plot.X - ggchart.TickLength - ggchart.TickPad - tickW - ggchart.LabelPad - lh/2
	dc.Push()
	dc.Translate(yTitleX, plot.Y+plot.H/2)
	dc.Rotate(-math.Pi / 2)
	dc.DrawStringAnchored(fig.YAxis.Label, 0, 0, 0.5, 0.5)
	dc.Pop()
}

// drawLabels draws the point annotations, unclipped so they may overhang
// the plot frame.
func (b *Backend) drawLabels(fig *ggchart.Figure) {
	dc, l, st := b.dc, b.layout, b.style

	for _, lb := range fig.Labels {
		dc.SetFont(b.fonts.Face(st.FontSize, lb.Bold))
		dc.SetColor(lb.Color)
		ax, ay := anchor(lb)
		x, y := l.Map(ggchart.XY{X: lb.X, Y: lb.Y})
		dc.DrawStringAnchored(lb.Text, x, y, ax, ay)
	}
}

// anchor converts label alignment to gg's anchor fractions, where (0, 0)
// is the top-left of the text box.
func anchor(lb ggchart.Label) (ax, ay float64) {
	switch lb.HAlign {
	case ggchart.AlignLeft:
		ax = 0
	case ggchart.AlignRight:
		ax = 1
	default:
		ax = 0.5
	}
	switch lb.VAlign {
	case ggchart.AlignTop:
		ay = 0
	case ggchart.AlignMiddle:
		ay = 0.5
	default:
		ay = 1
	}
	return ax, ay
}
