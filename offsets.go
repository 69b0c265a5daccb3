package ggchart

// OffsetTable nudges a label vertically, in data units, away from the point
// it annotates. Negative values move the label down.
type OffsetTable map[string]float64

// Get returns the offset for label, or 0 when the label has no entry.
// A nil table is valid and returns 0 for every label.
func (t OffsetTable) Get(label string) float64 {
	if v, ok := t[label]; ok {
		return v
	}
	return 0
}
