package ggchart

// Dataset is everything Build plots: the proposed method's operating points,
// the competing methods' single points, their label offsets and the colors.
type Dataset struct {
	Ours      Series
	Baselines Series

	OursOffsets     OffsetTable
	BaselineOffsets OffsetTable

	Palette Palette
}

// DefaultDataset returns the published comparison: five presets of the
// proposed method (Quality through Turbo) against five baselines.
func DefaultDataset() Dataset {
	palette, err := ParsePalette("#750014",
		"#3B5B92", // arctic blue
		"#4FA3B5", // glacier cyan
		"#8CA77B", // moss sage
		"#E1B168", // muted sand
		"#D46A6A", // faded crimson
	)
	if err != nil {
		panic(err)
	}

	return Dataset{
		Ours: MustSeries(
			[]string{"Quality", "Balanced", "Medium", "Fast", "Turbo"},
			[]float64{1.70, 1.92, 2.25, 2.91, 3.65},
			[]float64{0.0417, 0.0436, 0.0655, 0.1353, 0.2239},
		),
		Baselines: MustSeries(
			[]string{"ToCa", "DiTFastAttn2", "TeaCache", "SADA", "TaylorSeer"},
			[]float64{1.36, 1.42, 2.00, 2.02, 3.18},
			[]float64{0.3469, 0.3430, 0.2160, 0.0600, 0.4259},
		),
		OursOffsets: OffsetTable{
			"Quality":  0.015,
			"Balanced": -0.005,
			"Medium":   0.012,
			"Fast":     0.008,
			"Turbo":    0.015,
		},
		BaselineOffsets: OffsetTable{
			"ToCa":         0.008,
			"DiTFastAttn2": -0.008,
			"TeaCache":     0.011,
			"SADA":         -0.005,
			"TaylorSeer":   0.000,
		},
		Palette: palette,
	}
}
