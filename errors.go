package ggchart

import "errors"

// Sentinel errors for chart construction.
var (
	// ErrLengthMismatch is returned when the label, speedup and distance
	// slices of a series differ in length.
	ErrLengthMismatch = errors.New("ggchart: series slices differ in length")

	// ErrInvalidSpeedup is returned for a speedup below 1.0.
	ErrInvalidSpeedup = errors.New("ggchart: speedup must be >= 1")

	// ErrInvalidDistance is returned for a distance outside [0, 1].
	ErrInvalidDistance = errors.New("ggchart: distance must be within [0, 1]")

	// ErrEmptyPalette is returned when a palette has no baseline colors.
	ErrEmptyPalette = errors.New("ggchart: palette has no colors")

	// ErrInvalidStyle is returned when a style has a non-positive size.
	ErrInvalidStyle = errors.New("ggchart: invalid style")
)

// PointError reports which point of a series failed validation.
type PointError struct {
	Index int
	Label string
	Err   error
}

func (e *PointError) Error() string {
	return e.Err.Error() + " (point " + e.Label + ")"
}

func (e *PointError) Unwrap() error {
	return e.Err
}
