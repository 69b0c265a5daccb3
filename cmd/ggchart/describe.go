package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggchart"
)

// figureDoc is the YAML view of a built figure.
type figureDoc struct {
	Size   sizeDoc    `yaml:"size"`
	XAxis  axisDoc    `yaml:"x_axis"`
	YAxis  axisDoc    `yaml:"y_axis"`
	Bars   []barDoc   `yaml:"bars"`
	Trend  trendDoc   `yaml:"trend"`
	Labels []labelDoc `yaml:"labels"`
}

type sizeDoc struct {
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`
	DPI      float64 `yaml:"dpi"`
	Pixels   [2]int  `yaml:"pixels,flow"`
	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"font_size"`
}

type axisDoc struct {
	Label string    `yaml:"label"`
	Range []float64 `yaml:"range,flow"`
	Ticks []string  `yaml:"ticks,flow"`
}

type barDoc struct {
	Label  string  `yaml:"label"`
	X      float64 `yaml:"x"`
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
	Color  string  `yaml:"color"`
	Alpha  float64 `yaml:"alpha"`
}

type trendDoc struct {
	Color     string       `yaml:"color"`
	Width     float64      `yaml:"width"`
	FillAlpha float64      `yaml:"fill_alpha"`
	Points    [][2]float64 `yaml:"points,flow"`
}

type labelDoc struct {
	Text  string  `yaml:"text"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color"`
	Bold  bool    `yaml:"bold"`
}

func describe(fig *ggchart.Figure) figureDoc {
	st := fig.Style
	pw, ph := st.PixelSize()
	doc := figureDoc{
		Size: sizeDoc{
			WidthIn:  st.Width,
			HeightIn: st.Height,
			DPI:      st.DPI,
			Pixels:   [2]int{pw, ph},
			Font:     st.FontFamily,
			FontSize: st.FontSize,
		},
		XAxis: describeAxis(fig.XAxis),
		YAxis: describeAxis(fig.YAxis),
	}

	for _, b := range fig.Bars {
		doc.Bars = append(doc.Bars, barDoc{
			Label:  b.Label,
			X:      b.X,
			Height: b.Height,
			Width:  b.Width,
			Color:  ggchart.Hex(b.Color),
			Alpha:  b.Alpha,
		})
	}

	if len(fig.Lines) > 0 {
		line := fig.Lines[0]
		doc.Trend = trendDoc{Color: ggchart.Hex(line.Color), Width: line.Width}
		for _, p := range line.Points {
			doc.Trend.Points = append(doc.Trend.Points, [2]float64{p.X, p.Y})
		}
	}
	if len(fig.Areas) > 0 {
		doc.Trend.FillAlpha = fig.Areas[0].Alpha
	}

	for _, l := range fig.Labels {
		doc.Labels = append(doc.Labels, labelDoc{
			Text:  l.Text,
			X:     l.X,
			Y:     l.Y,
			Color: ggchart.Hex(l.Color),
			Bold:  l.Bold,
		})
	}
	return doc
}

func describeAxis(a ggchart.Axis) axisDoc {
	d := axisDoc{Label: a.Label, Range: []float64{a.Min, a.Max}}
	for _, t := range a.Ticks {
		d.Ticks = append(d.Ticks, t.Label)
	}
	return d
}

func runDescribe(cmd *cobra.Command, opts *options) error {
	fig, err := opts.build()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(describe(fig)); err != nil {
		return err
	}
	return enc.Close()
}
