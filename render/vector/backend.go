// Package vector draws ggchart Figures as PDF and EPS through gonum/plot.
//
// Text uses Liberation Serif, which is metric compatible with Times New
// Roman, unless the style names a font file that parses as OpenType.
package vector

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/gogpu/gg"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/render"
)

const (
	serif        = font.Variant("Serif")
	fileTypeface = font.Typeface("ggchart-file")

	spineWidth = 0.8
)

func init() {
	render.Register("pdf", func() render.Backend { return New("pdf") }, ".pdf")
	render.Register("eps", func() render.Backend { return New("eps") }, ".eps")
}

// Backend writes a Figure in one of gonum/plot's vector formats.
type Backend struct {
	format string
}

var _ render.Backend = (*Backend)(nil)

// New creates a backend for format, "pdf" or "eps".
func New(format string) *Backend {
	return &Backend{format: format}
}

// Render implements render.Backend.
func (b *Backend) Render(ctx context.Context, fig *ggchart.Figure, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := Plot(fig)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	st := fig.Style
	wt, err := p.WriterTo(vg.Length(st.Width)*vg.Inch, vg.Length(st.Height)*vg.Inch, b.format)
	if err != nil {
		return fmt.Errorf("vector: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("vector: %s: %w", b.format, err)
	}
	return nil
}

// Plot converts fig into a gonum plot without drawing it.
func Plot(fig *ggchart.Figure) (*plot.Plot, error) {
	st := fig.Style
	fonts := newTextStyler(st)

	p := plot.New()
	p.TextHandler = fonts.handler
	p.BackgroundColor = nrgba(st.Background, 1)

	fg := nrgba(st.Foreground, 1)
	setupAxis(&p.X, fig.XAxis, fonts.style(false, fg), fg)
	setupAxis(&p.Y, fig.YAxis, fonts.style(false, fg), fg)

	for _, a := range fig.Areas {
		if len(a.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, 0, len(a.Points)+2)
		xys = append(xys, plotter.XY{X: a.Points[0].X, Y: a.Baseline})
		for _, pt := range a.Points {
			xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
		}
		xys = append(xys, plotter.XY{X: a.Points[len(a.Points)-1].X, Y: a.Baseline})
		poly, err := plotter.NewPolygon(xys)
		if err != nil {
			return nil, fmt.Errorf("vector: area: %w", err)
		}
		poly.Color = nrgba(a.Color, a.Alpha)
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	for _, bar := range fig.Bars {
		x0, x1 := bar.X-bar.Width/2, bar.X+bar.Width/2
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: x0, Y: 0}, {X: x1, Y: 0}, {X: x1, Y: bar.Height}, {X: x0, Y: bar.Height},
		})
		if err != nil {
			return nil, fmt.Errorf("vector: bar %s: %w", bar.Label, err)
		}
		poly.Color = nrgba(bar.Color, bar.Alpha)
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	for _, line := range fig.Lines {
		xys := toXYs(line.Points)
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("vector: line: %w", err)
		}
		l.Color = nrgba(line.Color, 1)
		l.Width = vg.Points(line.Width)
		p.Add(l)

		if line.Marker.Shape == ggchart.MarkerCircle {
			s, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, fmt.Errorf("vector: markers: %w", err)
			}
			s.GlyphStyle = draw.GlyphStyle{
				Color:  nrgba(line.Color, 1),
				Radius: vg.Points(line.Marker.Size / 2),
				Shape:  draw.CircleGlyph{},
			}
			p.Add(s)
		}
	}

	// Frame the full plot region; gonum only draws the two axis lines.
	frame, err := plotter.NewPolygon(plotter.XYs{
		{X: fig.XAxis.Min, Y: fig.YAxis.Min}, {X: fig.XAxis.Max, Y: fig.YAxis.Min},
		{X: fig.XAxis.Max, Y: fig.YAxis.Max}, {X: fig.XAxis.Min, Y: fig.YAxis.Max},
	})
	if err != nil {
		return nil, fmt.Errorf("vector: frame: %w", err)
	}
	frame.LineStyle = draw.LineStyle{Color: fg, Width: vg.Points(spineWidth)}
	p.Add(frame)

	if len(fig.Labels) > 0 {
		labels, err := newLabels(fig.Labels, fonts)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	return p, nil
}

// textStyler builds text styles in the figure's typeface and size.
type textStyler struct {
	handler  text.Handler
	typeface font.Typeface
	size     vg.Length
}

func newTextStyler(st ggchart.Style) textStyler {
	cache, typeface := fontCache(st.FontFile)
	return textStyler{
		handler:  text.Plain{Fonts: cache},
		typeface: typeface,
		size:     vg.Points(st.FontSize),
	}
}

func (ts textStyler) style(bold bool, c color.Color) text.Style {
	f := font.Font{Typeface: ts.typeface, Variant: serif, Size: ts.size}
	if bold {
		f.Weight = xfont.WeightBold
	}
	return text.Style{Color: c, Font: f, Handler: ts.handler}
}

func newLabels(lbs []ggchart.Label, fonts textStyler) (*plotter.Labels, error) {
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(lbs)),
		Labels: make([]string, len(lbs)),
	}
	for i, lb := range lbs {
		xyl.XYs[i] = plotter.XY{X: lb.X, Y: lb.Y}
		xyl.Labels[i] = lb.Text
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, fmt.Errorf("vector: labels: %w", err)
	}
	for i, lb := range lbs {
		ts := fonts.style(lb.Bold, nrgba(lb.Color, 1))
		ts.XAlign, ts.YAlign = align(lb)
		labels.TextStyle[i] = ts
	}
	return labels, nil
}

func setupAxis(a *plot.Axis, ax ggchart.Axis, ts text.Style, fg color.Color) {
	a.Min, a.Max = ax.Min, ax.Max
	a.Padding = 0
	a.Color = fg
	a.Width = vg.Points(spineWidth)

	// Keep gonum's per-axis alignment and rotation; only the face and
	// colour follow the figure.
	a.Label.Text = ax.Label
	restyle(&a.Label.TextStyle, ts)
	a.Label.Padding = vg.Points(ggchart.LabelPad)

	restyle(&a.Tick.Label, ts)
	a.Tick.Color = fg
	a.Tick.Width = vg.Points(spineWidth)
	a.Tick.Length = vg.Points(ggchart.TickLength)

	ticks := make(plot.ConstantTicks, len(ax.Ticks))
	for i, t := range ax.Ticks {
		ticks[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	a.Tick.Marker = ticks
}

func restyle(dst *text.Style, src text.Style) {
	dst.Font = src.Font
	dst.Color = src.Color
	dst.Handler = src.Handler
}

// fontCache returns the fonts for a plot and the typeface to request. The
// Liberation collection is always present so lookups have a default.
func fontCache(file string) (*font.Cache, font.Typeface) {
	cache := font.NewCache(liberation.Collection())
	if file == "" {
		return cache, "Liberation"
	}

	data, err := os.ReadFile(file) // #nosec G304 -- font path is chosen by the caller
	if err == nil {
		var face *opentype.Font
		if face, err = opentype.Parse(data); err == nil {
			cache.Add(font.Collection{
				{Font: font.Font{Typeface: fileTypeface, Variant: serif}, Face: face},
			})
			return cache, fileTypeface
		}
	}
	ggchart.Logger().Warn("vector: font file unusable, using Liberation Serif", "path", file, "err", err)
	return cache, "Liberation"
}

func toXYs(pts []ggchart.XY) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return xys
}

func nrgba(c gg.RGBA, alpha float64) color.NRGBA {
	u := func(v float64) uint8 {
		return uint8(min(max(v, 0), 1)*255 + 0.5)
	}
	return color.NRGBA{R: u(c.R), G: u(c.G), B: u(c.B), A: u(alpha)}
}

// align converts label alignment to gonum text alignment, where XAlign is
// a fraction of the text width added to x and YAlign likewise for height.
func align(lb ggchart.Label) (text.XAlignment, text.YAlignment) {
	var x text.XAlignment
	switch lb.HAlign {
	case ggchart.AlignLeft:
		x = text.XLeft
	case ggchart.AlignRight:
		x = text.XRight
	default:
		x = text.XCenter
	}
	var y text.YAlignment
	switch lb.VAlign {
	case ggchart.AlignTop:
		y = text.YTop
	case ggchart.AlignMiddle:
		y = text.YCenter
	default:
		y = text.YBottom
	}
	return x, y
}
