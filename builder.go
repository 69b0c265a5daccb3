package ggchart

// Axis titles and ranges of the speedup/LPIPS chart.
const (
	XLabel = "Speedup (×)"
	YLabel = "LPIPS ↓"

	XMin, XMax = 0.8, 3.8
	YMin, YMax = 0.0, 0.45

	// YTickStep is the fixed y tick spacing.
	YTickStep = 0.1

	// maxXTicks bounds the automatic x ticks.
	maxXTicks = 8
)

// Anchor returns the synthetic origin every trend starts from: no speedup,
// no drift.
func Anchor() XY { return XY{X: 1.0, Y: 0.0} }

// Build lays out ds with st into a Figure.
//
// Baselines become bars colored by palette position at st.BarAlpha, each
// with a bold label in the bar's hue. The proposed method becomes one trend
// line starting at Anchor() with the area beneath it shaded, and a bold label
// per operating point. Every label sits at distance + offset.
//
// Build has no side effects beyond debug logging; equal inputs give equal
// Figures.
func Build(ds Dataset, st Style) (*Figure, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}
	if ds.Palette.Len() == 0 {
		return nil, ErrEmptyPalette
	}

	log := Logger()
	fig := &Figure{Style: st}

	fig.Bars, fig.Labels = baselineBars(ds, st)
	log.Debug("ggchart: baselines placed", "bars", len(fig.Bars))

	trend := TrendPoints(ds.Ours)
	fig.Areas = []Area{{
		Points:   trend,
		Baseline: 0,
		Color:    ds.Palette.Accent,
		Alpha:    st.FillAlpha,
	}}
	fig.Lines = []Polyline{{
		Points: trend,
		Color:  ds.Palette.Accent,
		Width:  st.LineWidth,
		Marker: Marker{Shape: MarkerCircle, Size: st.MarkerSize},
	}}
	fig.Labels = append(fig.Labels, pointLabels(ds.Ours, ds.OursOffsets, st)...)
	log.Debug("ggchart: trend placed", "vertices", len(trend))

	fig.XAxis = NewAxis(XLabel, XMin, XMax, AutoTicks{MaxTicks: maxXTicks}, st.Locale)
	fig.YAxis = NewAxis(YLabel, YMin, YMax, MultipleTicks(YTickStep), st.Locale)
	log.Debug("ggchart: axes configured",
		"x_ticks", len(fig.XAxis.Ticks), "y_ticks", len(fig.YAxis.Ticks))

	return fig, nil
}

// TrendPoints returns Anchor() followed by the points of s in their given
// order.
func TrendPoints(s Series) []XY {
	out := make([]XY, 0, s.Len()+1)
	out = append(out, Anchor())
	for _, p := range s.points {
		out = append(out, XY{X: p.Speedup, Y: p.Distance})
	}
	return out
}

func baselineBars(ds Dataset, st Style) ([]Bar, []Label) {
	n := ds.Baselines.Len()
	bars := make([]Bar, n)
	labels := make([]Label, n, n+ds.Ours.Len())
	for i, p := range ds.Baselines.points {
		c := ds.Palette.At(i)
		bars[i] = Bar{
			Label:  p.Label,
			X:      p.Speedup,
			Height: p.Distance,
			Width:  st.BarWidth,
			Color:  c,
			Alpha:  st.BarAlpha,
		}
		labels[i] = Label{
			Text:   p.Label,
			X:      p.Speedup,
			Y:      p.Distance + ds.BaselineOffsets.Get(p.Label),
			Color:  c,
			Bold:   true,
			HAlign: AlignCenter,
			VAlign: AlignBottom,
		}
	}
	return bars, labels
}

func pointLabels(s Series, offsets OffsetTable, st Style) []Label {
	labels := make([]Label, s.Len())
	for i, p := range s.points {
		labels[i] = Label{
			Text:   p.Label,
			X:      p.Speedup,
			Y:      p.Distance + offsets.Get(p.Label),
			Color:  st.Foreground,
			Bold:   true,
			HAlign: AlignCenter,
			VAlign: AlignBottom,
		}
	}
	return labels
}
