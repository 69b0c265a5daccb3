package ggchart

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

// tagComparer lets cmp compare Styles, whose language.Tag has unexported
// fields.
var tagComparer = cmp.Comparer(func(a, b language.Tag) bool { return a == b })

func buildDefault(t *testing.T) (*Figure, Dataset) {
	t.Helper()
	ds := DefaultDataset()
	fig, err := Build(ds, DefaultStyle())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return fig, ds
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildOneBarPerBaseline(t *testing.T) {
	fig, ds := buildDefault(t)

	if got, want := len(fig.Bars), ds.Baselines.Len(); got != want {
		t.Fatalf("len(Bars) = %d, want %d", got, want)
	}
	if len(fig.Bars) != 5 {
		t.Errorf("len(Bars) = %d, want 5", len(fig.Bars))
	}
	for i, b := range fig.Bars {
		p := ds.Baselines.At(i)
		if b.Label != p.Label || b.X != p.Speedup || b.Height != p.Distance {
			t.Errorf("Bars[%d] = {%s %g %g}, want {%s %g %g}",
				i, b.Label, b.X, b.Height, p.Label, p.Speedup, p.Distance)
		}
		if b.Width != 0.18 {
			t.Errorf("Bars[%d].Width = %g, want 0.18", i, b.Width)
		}
	}
}

func TestBuildLabelPositions(t *testing.T) {
	fig, ds := buildDefault(t)

	type want struct {
		text string
		x, y float64
	}
	var wants []want
	for _, p := range ds.Baselines.Points() {
		wants = append(wants, want{p.Label, p.Speedup, p.Distance + ds.BaselineOffsets.Get(p.Label)})
	}
	for _, p := range ds.Ours.Points() {
		wants = append(wants, want{p.Label, p.Speedup, p.Distance + ds.OursOffsets.Get(p.Label)})
	}

	if len(fig.Labels) != len(wants) {
		t.Fatalf("len(Labels) = %d, want %d", len(fig.Labels), len(wants))
	}
	for i, w := range wants {
		l := fig.Labels[i]
		if l.Text != w.text {
			t.Errorf("Labels[%d].Text = %q, want %q", i, l.Text, w.text)
		}
		if l.X != w.x || !approx(l.Y, w.y) {
			t.Errorf("Labels[%d] %s at (%g, %g), want (%g, %g)", i, l.Text, l.X, l.Y, w.x, w.y)
		}
		if !l.Bold {
			t.Errorf("Labels[%d] %s is not bold", i, l.Text)
		}
		if l.HAlign != AlignCenter || l.VAlign != AlignBottom {
			t.Errorf("Labels[%d] %s alignment = (%d, %d), want centered above", i, l.Text, l.HAlign, l.VAlign)
		}
	}
}

func TestBuildLabelWithoutOffset(t *testing.T) {
	ds := DefaultDataset()
	ds.OursOffsets = nil
	fig, err := Build(ds, DefaultStyle())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	ours := fig.Labels[ds.Baselines.Len():]
	for i, p := range ds.Ours.Points() {
		if ours[i].Y != p.Distance {
			t.Errorf("%s label y = %g, want %g", p.Label, ours[i].Y, p.Distance)
		}
	}
}

func TestBuildTrend(t *testing.T) {
	fig, _ := buildDefault(t)

	want := []XY{
		{1.0, 0.0},
		{1.70, 0.0417},
		{1.92, 0.0436},
		{2.25, 0.0655},
		{2.91, 0.1353},
		{3.65, 0.2239},
	}

	if len(fig.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(fig.Lines))
	}
	line := fig.Lines[0]
	if diff := cmp.Diff(want, line.Points); diff != "" {
		t.Errorf("trend vertices mismatch (-want +got):\n%s", diff)
	}
	if got := Hex(line.Color); got != "#750014" {
		t.Errorf("trend color = %s, want #750014", got)
	}
	if line.Width != 3 {
		t.Errorf("trend width = %g, want 3", line.Width)
	}
	if line.Marker.Shape != MarkerCircle {
		t.Errorf("trend marker = %d, want MarkerCircle", line.Marker.Shape)
	}

	if len(fig.Areas) != 1 {
		t.Fatalf("len(Areas) = %d, want 1", len(fig.Areas))
	}
	area := fig.Areas[0]
	if diff := cmp.Diff(want, area.Points); diff != "" {
		t.Errorf("area vertices mismatch (-want +got):\n%s", diff)
	}
	if area.Baseline != 0 || area.Alpha != 0.2 || area.Color != line.Color {
		t.Errorf("area = {baseline %g alpha %g color %s}, want {0 0.2 #750014}",
			area.Baseline, area.Alpha, Hex(area.Color))
	}
}

func TestBuildBarColors(t *testing.T) {
	ds := DefaultDataset()
	// Fewer colors than bars: indices wrap.
	ds.Palette.Colors = ds.Palette.Colors[:3]

	fig, err := Build(ds, DefaultStyle())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	alpha := fig.Bars[0].Alpha
	for i, b := range fig.Bars {
		if want := ds.Palette.Colors[i%3]; b.Color != want {
			t.Errorf("Bars[%d].Color = %s, want %s", i, Hex(b.Color), Hex(want))
		}
		if b.Alpha != alpha {
			t.Errorf("Bars[%d].Alpha = %g, want %g like Bars[0]", i, b.Alpha, alpha)
		}
		if fig.Labels[i].Color != b.Color {
			t.Errorf("Labels[%d].Color = %s, want bar color %s", i, Hex(fig.Labels[i].Color), Hex(b.Color))
		}
	}
	if alpha != 0.4 {
		t.Errorf("bar alpha = %g, want 0.4", alpha)
	}
}

func TestBuildAxes(t *testing.T) {
	fig, _ := buildDefault(t)

	if fig.XAxis.Min != 0.8 || fig.XAxis.Max != 3.8 {
		t.Errorf("x range = [%g, %g], want [0.8, 3.8]", fig.XAxis.Min, fig.XAxis.Max)
	}
	if fig.YAxis.Min != 0 || fig.YAxis.Max != 0.45 {
		t.Errorf("y range = [%g, %g], want [0, 0.45]", fig.YAxis.Min, fig.YAxis.Max)
	}
	if fig.XAxis.Label != "Speedup (×)" || fig.YAxis.Label != "LPIPS ↓" {
		t.Errorf("axis labels = %q, %q", fig.XAxis.Label, fig.YAxis.Label)
	}

	wantY := []Tick{
		{0, "0.0"}, {0.1, "0.1"}, {0.2, "0.2"}, {0.3, "0.3"}, {0.4, "0.4"},
	}
	if diff := cmp.Diff(wantY, fig.YAxis.Ticks); diff != "" {
		t.Errorf("y ticks mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(fig.YAxis.Ticks); i++ {
		if step := fig.YAxis.Ticks[i].Value - fig.YAxis.Ticks[i-1].Value; !approx(step, 0.1) {
			t.Errorf("y tick step %d = %g, want 0.1", i, step)
		}
	}

	for _, tk := range fig.XAxis.Ticks {
		if !fig.XAxis.Contains(tk.Value) {
			t.Errorf("x tick %g outside axis range", tk.Value)
		}
	}
}

func TestBuildSADAScenario(t *testing.T) {
	fig, ds := buildDefault(t)

	const idx = 3
	bar := fig.Bars[idx]
	if bar.Label != "SADA" {
		t.Fatalf("Bars[%d].Label = %q, want SADA", idx, bar.Label)
	}
	if bar.X != 2.02 || bar.Height != 0.0600 {
		t.Errorf("SADA bar at (%g, %g), want (2.02, 0.06)", bar.X, bar.Height)
	}
	if bar.Color != ds.Palette.Colors[3] || Hex(bar.Color) != "#e1b168" {
		t.Errorf("SADA color = %s, want 4th palette entry #e1b168", Hex(bar.Color))
	}
	if bar.Alpha != 0.4 {
		t.Errorf("SADA alpha = %g, want 0.4", bar.Alpha)
	}

	label := fig.Labels[idx]
	if label.Text != "SADA" || !approx(label.Y, 0.0550) {
		t.Errorf("SADA label = %q at y=%g, want SADA at 0.0550", label.Text, label.Y)
	}
}

func TestBuildIdempotent(t *testing.T) {
	first, _ := buildDefault(t)
	second, _ := buildDefault(t)

	if diff := cmp.Diff(first, second, tagComparer); diff != "" {
		t.Errorf("second Build differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Layout().Plot, second.Layout().Plot); diff != "" {
		t.Errorf("second layout differs (-first +second):\n%s", diff)
	}
}

func TestBuildStylesIndependent(t *testing.T) {
	ds := DefaultDataset()
	big, err := Build(ds, NewStyle(WithFontSize(24), WithDPI(300)))
	if err != nil {
		t.Fatalf("Build(big) error = %v", err)
	}
	def, err := Build(ds, DefaultStyle())
	if err != nil {
		t.Fatalf("Build(default) error = %v", err)
	}

	if def.Style.FontSize != 16 || def.Style.DPI != 100 {
		t.Errorf("default style changed by earlier build: size %g dpi %g", def.Style.FontSize, def.Style.DPI)
	}
	if big.Style.FontSize != 24 {
		t.Errorf("big font size = %g, want 24", big.Style.FontSize)
	}
	if diff := cmp.Diff(def.Labels, big.Labels); diff != "" {
		t.Errorf("style changed data placement (-default +big):\n%s", diff)
	}
}

func TestBuildNoLegend(t *testing.T) {
	fig, _ := buildDefault(t)

	for _, l := range fig.Labels {
		if l.X < XMin || l.X > XMax {
			t.Errorf("label %q at x=%g is outside the data range", l.Text, l.X)
		}
	}
	// Only point annotations: one per baseline and one per preset.
	if got := len(fig.Labels); got != 10 {
		t.Errorf("len(Labels) = %d, want 10", got)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Dataset, *Style)
		want   error
	}{
		{
			name:   "empty palette",
			mutate: func(ds *Dataset, _ *Style) { ds.Palette.Colors = nil },
			want:   ErrEmptyPalette,
		},
		{
			name:   "zero dpi",
			mutate: func(_ *Dataset, st *Style) { st.DPI = 0 },
			want:   ErrInvalidStyle,
		},
		{
			name:   "negative size",
			mutate: func(_ *Dataset, st *Style) { st.Width = -1 },
			want:   ErrInvalidStyle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, st := DefaultDataset(), DefaultStyle()
			tt.mutate(&ds, &st)
			_, err := Build(ds, st)
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTrendPointsEmpty(t *testing.T) {
	got := TrendPoints(Series{})
	if diff := cmp.Diff([]XY{{X: 1, Y: 0}}, got); diff != "" {
		t.Errorf("TrendPoints(empty) mismatch (-want +got):\n%s", diff)
	}
}

func TestAnchorIsFixed(t *testing.T) {
	a := Anchor()
	a.X, a.Y = 5, 0.5

	pts := TrendPoints(Series{})
	pts[0] = XY{X: 9, Y: 9}

	if got := Anchor(); got != (XY{X: 1, Y: 0}) {
		t.Errorf("Anchor() = %+v after caller edits, want {1 0}", got)
	}
	if got := TrendPoints(Series{})[0]; got != (XY{X: 1, Y: 0}) {
		t.Errorf("TrendPoints()[0] = %+v after caller edits, want {1 0}", got)
	}
}
