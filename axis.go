package ggchart

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Tick is a major tick mark and its formatted label.
type Tick struct {
	Value float64
	Label string
}

// Axis is a fixed data range with its title and ticks.
type Axis struct {
	Label    string
	Min, Max float64
	Ticks    []Tick
}

// Ticker chooses tick positions within [min, max].
type Ticker interface {
	Ticks(min, max float64) []float64
}

// NewAxis creates an axis over [min, max] with ticks chosen by t and
// formatted for tag.
func NewAxis(label string, min, max float64, t Ticker, tag language.Tag) Axis {
	values := t.Ticks(min, max)
	return Axis{
		Label: label,
		Min:   min,
		Max:   max,
		Ticks: formatTicks(values, tag),
	}
}

// Norm maps v to its fraction along the axis: 0 at Min, 1 at Max.
func (a Axis) Norm(v float64) float64 {
	if a.Max == a.Min {
		return 0
	}
	return (v - a.Min) / (a.Max - a.Min)
}

// Contains reports whether v lies within the axis range.
func (a Axis) Contains(v float64) bool {
	return v >= a.Min && v <= a.Max
}

// MultipleTicks places a tick at every integer multiple of its value that
// falls within the range.
type MultipleTicks float64

// Ticks implements Ticker.
func (m MultipleTicks) Ticks(min, max float64) []float64 {
	step := float64(m)
	if step <= 0 || max < min {
		return nil
	}
	const eps = 1e-9
	first := math.Ceil(min/step - eps)
	last := math.Floor(max/step + eps)

	out := make([]float64, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		out = append(out, roundTick(k*step))
	}
	return out
}

// AutoTicks picks the smallest step from {1, 2, 2.5, 5} × 10^k that keeps
// the tick count at or below MaxTicks.
type AutoTicks struct {
	MaxTicks int
}

var niceSteps = [...]float64{1, 2, 2.5, 5, 10}

// Ticks implements Ticker.
func (a AutoTicks) Ticks(min, max float64) []float64 {
	n := a.MaxTicks
	if n < 2 {
		n = 2
	}
	span := max - min
	if span <= 0 {
		return []float64{min}
	}

	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n))))
	for _, s := range niceSteps {
		step := s * mag
		count := math.Floor(max/step+1e-9) - math.Ceil(min/step-1e-9) + 1
		if int(count) <= n {
			return MultipleTicks(step).Ticks(min, max)
		}
	}
	return MultipleTicks(10 * mag).Ticks(min, max)
}

// roundTick removes float noise such as 0.30000000000000004.
func roundTick(v float64) float64 {
	r := math.Round(v*1e12) / 1e12
	if r == 0 {
		return 0 // no -0
	}
	return r
}

// formatTicks labels values with a shared number of fraction digits, enough
// to tell neighbouring ticks apart and never fewer than one.
func formatTicks(values []float64, tag language.Tag) []Tick {
	digits := 1
	for _, v := range values {
		if d := fractionDigits(v); d > digits {
			digits = d
		}
	}

	p := message.NewPrinter(tag)
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{
			Value: v,
			Label: p.Sprint(number.Decimal(v,
				number.MinFractionDigits(digits),
				number.MaxFractionDigits(digits))),
		}
	}
	return ticks
}

func fractionDigits(v float64) int {
	for d := 0; d < 6; d++ {
		scaled := v * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-6 {
			return d
		}
	}
	return 6
}
