package dataset

import "slices"

// Sequence is one timeline of events belonging to a single entity.
//
// Before aggregation Times and Events are aligned pairwise and Counts is nil.
// After aggregation Times holds the bin-end timestamps, Counts holds one row
// of per-type counts per bin and Events is nil.
type Sequence struct {
	// Times are the event timestamps, non-decreasing.
	Times []float64
	// Events are the event-type indices aligned with Times.
	Events []int
	// Counts is the bins × types count matrix of an aggregated sequence.
	Counts [][]int
	// Feature is the optional static feature vector; nil means absent.
	Feature []float64
	// TStart and TStop bound the observation window.
	TStart float64
	TStop  float64
	// Label is the optional sequence label; nil means absent.
	Label *float64
}

// LabelOf returns a label pointer for v.
func LabelOf(v float64) *float64 {
	return &v
}

// Len returns the number of timestamps: events before aggregation, bins after.
func (s Sequence) Len() int {
	return len(s.Times)
}

// Duration returns TStop - TStart.
func (s Sequence) Duration() float64 {
	return s.TStop - s.TStart
}

// IsAggregated reports whether the sequence holds binned counts.
func (s Sequence) IsAggregated() bool {
	return s.Counts != nil
}

// HasFeature reports whether the sequence carries a feature vector.
func (s Sequence) HasFeature() bool {
	return s.Feature != nil
}

// HasLabel reports whether the sequence carries a label.
func (s Sequence) HasLabel() bool {
	return s.Label != nil
}

// LabelsDiffer reports whether both sequences carry labels and the labels
// are not equal.
func (s Sequence) LabelsDiffer(other Sequence) bool {
	if s.Label == nil || other.Label == nil {
		return false
	}

	return *s.Label != *other.Label
}

// Clone returns a deep copy of s. Absent optional fields stay absent.
func (s Sequence) Clone() Sequence {
	out := Sequence{
		Times:   slices.Clone(s.Times),
		Events:  slices.Clone(s.Events),
		Feature: slices.Clone(s.Feature),
		TStart:  s.TStart,
		TStop:   s.TStop,
	}
	if s.Counts != nil {
		out.Counts = make([][]int, len(s.Counts))
		for i, row := range s.Counts {
			out.Counts[i] = slices.Clone(row)
		}
	}
	if s.Label != nil {
		out.Label = LabelOf(*s.Label)
	}

	return out
}

// MeanFeature returns the element-wise mean of the two feature vectors when
// both are present with equal dimension. Otherwise it returns a copy of a's
// feature, nil when a has none.
func MeanFeature(a, b Sequence) []float64 {
	if a.Feature == nil || b.Feature == nil || len(a.Feature) != len(b.Feature) {
		return slices.Clone(a.Feature)
	}

	out := make([]float64, len(a.Feature))
	for k := range a.Feature {
		out[k] = (a.Feature[k] + b.Feature[k]) / 2
	}

	return out
}
