package ggchart

import (
	"fmt"
	"math"
)

// Point is one named operating point: how much faster a method runs and how
// far its output drifts perceptually (LPIPS, lower is better).
type Point struct {
	Label    string
	Speedup  float64
	Distance float64
}

// Series is an ordered, validated sequence of points.
// The zero value is an empty series.
type Series struct {
	points []Point
}

// NewSeries zips three parallel slices into a Series. Index i of each slice
// describes the same point.
//
// It returns ErrLengthMismatch if the slices differ in length, and a
// *PointError wrapping ErrInvalidSpeedup or ErrInvalidDistance for the first
// point out of range.
func NewSeries(labels []string, speedups, distances []float64) (Series, error) {
	if len(labels) != len(speedups) || len(labels) != len(distances) {
		return Series{}, fmt.Errorf("%w: %d labels, %d speedups, %d distances",
			ErrLengthMismatch, len(labels), len(speedups), len(distances))
	}

	points := make([]Point, len(labels))
	for i, label := range labels {
		p := Point{Label: label, Speedup: speedups[i], Distance: distances[i]}
		if err := p.validate(); err != nil {
			return Series{}, &PointError{Index: i, Label: label, Err: err}
		}
		points[i] = p
	}
	return Series{points: points}, nil
}

// MustSeries is like NewSeries but panics on error.
// Intended for literal data known to be consistent.
func MustSeries(labels []string, speedups, distances []float64) Series {
	s, err := NewSeries(labels, speedups, distances)
	if err != nil {
		panic(err)
	}
	return s
}

func (p Point) validate() error {
	// NaN fails every comparison, so test the accepted range, not its
	// complement.
	if !(p.Speedup >= 1) || math.IsInf(p.Speedup, 1) {
		return ErrInvalidSpeedup
	}
	if !(p.Distance >= 0 && p.Distance <= 1) {
		return ErrInvalidDistance
	}
	return nil
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.points)
}

// At returns the i-th point.
func (s Series) At(i int) Point {
	return s.points[i]
}

// Points returns a copy of the points in order.
func (s Series) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Labels returns the point labels in order.
func (s Series) Labels() []string {
	out := make([]string, len(s.points))
	for i, p := range s.points {
		out[i] = p.Label
	}
	return out
}
