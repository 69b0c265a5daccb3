package ggchart

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewSeries(t *testing.T) {
	s, err := NewSeries(
		[]string{"a", "b"},
		[]float64{1.5, 2},
		[]float64{0.1, 0.2},
	)
	if err != nil {
		t.Fatalf("NewSeries() error = %v", err)
	}

	want := []Point{{"a", 1.5, 0.1}, {"b", 2, 0.2}}
	if diff := cmp.Diff(want, s.Points()); diff != "" {
		t.Errorf("Points() mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 2 || s.At(1).Label != "b" {
		t.Errorf("Len() = %d, At(1) = %+v", s.Len(), s.At(1))
	}
	if diff := cmp.Diff([]string{"a", "b"}, s.Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSeriesErrors(t *testing.T) {
	tests := []struct {
		name      string
		labels    []string
		speedups  []float64
		distances []float64
		want      error
		index     int
	}{
		{
			name:      "length mismatch",
			labels:    []string{"a", "b"},
			speedups:  []float64{1.5},
			distances: []float64{0.1, 0.2},
			want:      ErrLengthMismatch,
			index:     -1,
		},
		{
			name:      "slowdown",
			labels:    []string{"a", "b"},
			speedups:  []float64{1.5, 0.9},
			distances: []float64{0.1, 0.2},
			want:      ErrInvalidSpeedup,
			index:     1,
		},
		{
			name:      "negative distance",
			labels:    []string{"a"},
			speedups:  []float64{2},
			distances: []float64{-0.1},
			want:      ErrInvalidDistance,
			index:     0,
		},
		{
			name:      "distance above one",
			labels:    []string{"a"},
			speedups:  []float64{2},
			distances: []float64{1.5},
			want:      ErrInvalidDistance,
			index:     0,
		},
		{
			name:      "NaN speedup",
			labels:    []string{"a"},
			speedups:  []float64{math.NaN()},
			distances: []float64{0.1},
			want:      ErrInvalidSpeedup,
			index:     0,
		},
		{
			name:      "infinite speedup",
			labels:    []string{"a", "b"},
			speedups:  []float64{2, math.Inf(1)},
			distances: []float64{0.1, 0.2},
			want:      ErrInvalidSpeedup,
			index:     1,
		},
		{
			name:      "NaN distance",
			labels:    []string{"a"},
			speedups:  []float64{2},
			distances: []float64{math.NaN()},
			want:      ErrInvalidDistance,
			index:     0,
		},
		{
			name:      "infinite distance",
			labels:    []string{"a"},
			speedups:  []float64{2},
			distances: []float64{math.Inf(-1)},
			want:      ErrInvalidDistance,
			index:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSeries(tt.labels, tt.speedups, tt.distances)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewSeries() error = %v, want %v", err, tt.want)
			}
			if tt.index < 0 {
				return
			}
			var pe *PointError
			if !errors.As(err, &pe) {
				t.Fatalf("error %v is not a *PointError", err)
			}
			if pe.Index != tt.index || pe.Label != tt.labels[tt.index] {
				t.Errorf("PointError = {%d %q}, want {%d %q}", pe.Index, pe.Label, tt.index, tt.labels[tt.index])
			}
			if !strings.Contains(pe.Error(), tt.labels[tt.index]) {
				t.Errorf("Error() = %q does not name the point", pe.Error())
			}
		})
	}
}

func TestMustSeriesPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for mismatched slices")
		}
	}()
	MustSeries([]string{"a"}, nil, nil)
}

func TestSeriesPointsIsCopy(t *testing.T) {
	s := MustSeries([]string{"a"}, []float64{2}, []float64{0.1})
	pts := s.Points()
	pts[0].Distance = 0.9
	if s.At(0).Distance != 0.1 {
		t.Error("modifying Points() result changed the series")
	}
}

func TestOffsetTableGet(t *testing.T) {
	tbl := OffsetTable{"SADA": -0.005, "TaylorSeer": 0}

	tests := []struct {
		label string
		want  float64
	}{
		{"SADA", -0.005},
		{"TaylorSeer", 0},
		{"Unknown", 0},
	}
	for _, tt := range tests {
		if got := tbl.Get(tt.label); got != tt.want {
			t.Errorf("Get(%q) = %g, want %g", tt.label, got, tt.want)
		}
	}

	var empty OffsetTable
	if got := empty.Get("SADA"); got != 0 {
		t.Errorf("nil table Get() = %g, want 0", got)
	}
}

func TestDefaultDataset(t *testing.T) {
	ds := DefaultDataset()

	if diff := cmp.Diff([]string{"Quality", "Balanced", "Medium", "Fast", "Turbo"}, ds.Ours.Labels()); diff != "" {
		t.Errorf("ours labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ToCa", "DiTFastAttn2", "TeaCache", "SADA", "TaylorSeer"}, ds.Baselines.Labels()); diff != "" {
		t.Errorf("baseline labels mismatch (-want +got):\n%s", diff)
	}
	if got := ds.Palette.Len(); got != 5 {
		t.Errorf("palette has %d colors, want 5", got)
	}
	for _, p := range ds.Baselines.Points() {
		if _, ok := ds.BaselineOffsets[p.Label]; !ok {
			t.Errorf("baseline %q has no offset entry", p.Label)
		}
	}
}
