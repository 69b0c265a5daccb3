// Package svg draws ggchart Figures as SVG documents using svgo.
//
// The document is sized in points with a matching viewBox, so one user
// unit is one point and the layout maps straight onto SVG coordinates.
// Text is left to the viewer's font engine; the style's font family is
// requested with a generic serif fallback.
package svg

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo/float"
	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/render"
)

// Approximate font metrics as fractions of the font size, used to turn a
// text box anchor into an SVG baseline.
const (
	ascent  = 0.8
	descent = 0.2

	spineWidth = 0.8
	clipID     = "plot-area"
)

func init() {
	render.Register("svg", func() render.Backend { return New() }, ".svg")
}

// Backend writes a Figure as SVG.
type Backend struct {
	canvas *svgo.SVG
	layout ggchart.Layout
	style  ggchart.Style
}

var _ render.Backend = (*Backend)(nil)

// New creates an SVG backend.
func New() *Backend {
	return &Backend{}
}

// Render implements render.Backend.
func (b *Backend) Render(ctx context.Context, fig *ggchart.Figure, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ew := &errWriter{w: w}
	b.canvas = svgo.New(ew)
	b.layout = fig.Layout()
	b.style = fig.Style

	c, l := b.canvas, b.layout
	c.StartviewUnit(l.Canvas.W, l.Canvas.H, "pt", 0, 0, l.Canvas.W, l.Canvas.H)
	c.Title(fig.YAxis.Label + " vs " + fig.XAxis.Label)
	c.Rect(0, 0, l.Canvas.W, l.Canvas.H, fillStyle(fig.Style.Background, 1))

	c.Def()
	c.ClipPath(`id="` + clipID + `"`)
	c.Rect(l.Plot.X, l.Plot.Y, l.Plot.W, l.Plot.H)
	c.ClipEnd()
	c.DefEnd()

	steps := []func(*ggchart.Figure){
		b.drawData,
		b.drawAxes,
		b.drawLabels,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		step(fig)
	}

	c.End()
	if ew.err != nil {
		return fmt.Errorf("svg: %w", ew.err)
	}
	return nil
}

func (b *Backend) drawData(fig *ggchart.Figure) {
	c, l := b.canvas, b.layout

	c.Group(`clip-path="url(#` + clipID + `)"`)
	defer c.Gend()

	for _, a := range fig.Areas {
		if len(a.Points) == 0 {
			continue
		}
		xs := make([]float64, 0, len(a.Points)+2)
		ys := make([]float64, 0, len(a.Points)+2)
		xs = append(xs, l.MapX(a.Points[0].X))
		ys = append(ys, l.MapY(a.Baseline))
		for _, p := range a.Points {
			x, y := l.Map(p)
			xs = append(xs, x)
			ys = append(ys, y)
		}
		xs = append(xs, l.MapX(a.Points[len(a.Points)-1].X))
		ys = append(ys, l.MapY(a.Baseline))
		c.Polygon(xs, ys, fillStyle(a.Color, a.Alpha)+";stroke:none")
	}

	for _, bar := range fig.Bars {
		x0 := l.MapX(bar.X - bar.Width/2)
		x1 := l.MapX(bar.X + bar.Width/2)
		top, base := l.MapY(bar.Height), l.MapY(0)
		c.Rect(x0, top, x1-x0, base-top, fillStyle(bar.Color, bar.Alpha)+";stroke:none")
	}

	for _, line := range fig.Lines {
		if len(line.Points) == 0 {
			continue
		}
		xs := make([]float64, len(line.Points))
		ys := make([]float64, len(line.Points))
		for i, p := range line.Points {
			xs[i], ys[i] = l.Map(p)
		}
		hex := ggchart.Hex(line.Color)
		c.Polyline(xs, ys, "fill:none;stroke:"+hex+
			";stroke-width:"+num(line.Width)+";stroke-linejoin:round;stroke-linecap:round")

		if line.Marker.Shape == ggchart.MarkerCircle {
			for i := range xs {
				c.Circle(xs[i], ys[i], line.Marker.Size/2, "fill:"+hex+";stroke:none")
			}
		}
	}
}

func (b *Backend) drawAxes(fig *ggchart.Figure) {
	c, l, st := b.canvas, b.layout, b.style
	plot := l.Plot
	fg := ggchart.Hex(st.Foreground)
	stroke := "stroke:" + fg + ";stroke-width:" + num(spineWidth)

	c.Rect(plot.X, plot.Y, plot.W, plot.H, "fill:none;"+stroke)

	c.Gstyle(b.fontStyle(false) + ";fill:" + fg)
	defer c.Gend()

	for _, t := range fig.XAxis.Ticks {
		if !fig.XAxis.Contains(t.Value) {
			continue
		}
		x := l.MapX(t.Value)
		c.Line(x, plot.Bottom(), x, plot.Bottom()+ggchart.TickLength, stroke)
		top := plot.Bottom() + ggchart.TickLength + ggchart.TickPad
		c.Text(x, baseline(top, ggchart.AlignTop, st.FontSize), t.Label, "text-anchor:middle")
	}

	var tickW float64
	for _, t := range fig.YAxis.Ticks {
		if !fig.YAxis.Contains(t.Value) {
			continue
		}
		y := l.MapY(t.Value)
		c.Line(plot.X-ggchart.TickLength, y, plot.X, y, stroke)
		c.Text(plot.X-ggchart.TickLength-ggchart.TickPad, baseline(y, ggchart.AlignMiddle, st.FontSize),
			t.Label, "text-anchor:end")
		tickW = math.Max(tickW, l.TextWidth(t.Label, false))
	}

	lh := l.LineHeight()
	xTitleTop := plot.Bottom() + ggchart.TickLength + ggchart.TickPad + lh + ggchart.LabelPad
	c.Text(plot.X+plot.W/2, baseline(xTitleTop, ggchart.AlignTop, st.FontSize), fig.XAxis.Label, "text-anchor:middle")

	yTitleX := plot.X - ggchart.TickLength - ggchart.TickPad - tickW - ggchart.LabelPad - lh/2
	c.Text(0, baseline(0, ggchart.AlignMiddle, st.FontSize), fig.YAxis.Label,
		`transform="translate(`+num(yTitleX)+`,`+num(plot.Y+plot.H/2)+`) rotate(-90)"`,
		"text-anchor:middle")
}

func (b *Backend) drawLabels(fig *ggchart.Figure) {
	c, l, st := b.canvas, b.layout, b.style

	for _, lb := range fig.Labels {
		x, y := l.Map(ggchart.XY{X: lb.X, Y: lb.Y})
		c.Text(x, baseline(y, lb.VAlign, st.FontSize), lb.Text,
			b.fontStyle(lb.Bold)+";fill:"+ggchart.Hex(lb.Color)+";text-anchor:"+textAnchor(lb.HAlign))
	}
}

func (b *Backend) fontStyle(bold bool) string {
	var sb strings.Builder
	sb.WriteString("font-family:")
	if fam := b.style.FontFamily; fam != "" {
		sb.WriteString("'" + strings.ReplaceAll(fam, "'", "") + "',")
	}
	sb.WriteString("serif;font-size:")
	sb.WriteString(num(b.style.FontSize))
	if bold {
		sb.WriteString(";font-weight:bold")
	}
	return sb.String()
}

// baseline returns the SVG text baseline for a text box anchored at y.
func baseline(y float64, v ggchart.VAlign, size float64) float64 {
	switch v {
	case ggchart.AlignTop:
		return y + ascent*size
	case ggchart.AlignMiddle:
		return y + (ascent-descent)*size/2
	default:
		return y - descent*size
	}
}

func textAnchor(h ggchart.HAlign) string {
	switch h {
	case ggchart.AlignLeft:
		return "start"
	case ggchart.AlignRight:
		return "end"
	default:
		return "middle"
	}
}

func fillStyle(c gg.RGBA, alpha float64) string {
	s := "fill:" + ggchart.Hex(c)
	if alpha < 1 {
		s += ";fill-opacity:" + num(alpha)
	}
	return s
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
