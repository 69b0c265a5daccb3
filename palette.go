package ggchart

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Palette assigns colors to baseline points by position and holds the
// accent color for the proposed method's trend.
type Palette struct {
	Colors []gg.RGBA
	Accent gg.RGBA
}

// ParsePalette builds a palette from hex strings ("#RRGGBB" or any form
// accepted by gg.ParseHex).
func ParsePalette(accent string, colors ...string) (Palette, error) {
	a, err := gg.ParseHex(accent)
	if err != nil {
		return Palette{}, fmt.Errorf("ggchart: accent: %w", err)
	}
	p := Palette{Accent: a, Colors: make([]gg.RGBA, len(colors))}
	for i, s := range colors {
		c, err := gg.ParseHex(s)
		if err != nil {
			return Palette{}, fmt.Errorf("ggchart: color %d: %w", i, err)
		}
		p.Colors[i] = c
	}
	return p, nil
}

// At returns the color for baseline index i, wrapping around the palette.
// At panics on an empty palette; Build rejects those with ErrEmptyPalette.
func (p Palette) At(i int) gg.RGBA {
	n := len(p.Colors)
	return p.Colors[((i%n)+n)%n]
}

// Len returns the number of baseline colors.
func (p Palette) Len() int {
	return len(p.Colors)
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c gg.RGBA, alpha float64) gg.RGBA {
	c.A = alpha
	return c
}

// Hex formats the RGB channels of c as "#rrggbb". Alpha is dropped; callers
// that need it carry opacity separately.
func Hex(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
