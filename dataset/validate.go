package dataset

import (
	"fmt"
	"math"

	"github.com/arloliu/evseq/errs"
)

// Validate checks the structural invariants of d:
//
//   - TypeToIndex and IndexToType are inverse bijections onto [0, NumTypes);
//   - SeqToIndex and IndexToSeq, when present, are inverse bijections onto
//     the sequence positions;
//   - EventFeatures, when present, has one equally sized row per type;
//   - every sequence has TStart <= TStop, and either aligned Times/Events
//     with in-range, non-decreasing data, or a count matrix with one row
//     per timestamp and one column per type.
//
// Aggregated and per-event sequences cannot be mixed in one dataset.
func (d *Dataset) Validate() error {
	n := d.NumTypes()
	if err := checkBijection(d.TypeToIndex, d.IndexToType, n); err != nil {
		return fmt.Errorf("event types: %w", err)
	}

	if len(d.SeqToIndex) != 0 || len(d.IndexToSeq) != 0 {
		if err := checkBijection(d.SeqToIndex, d.IndexToSeq, len(d.Sequences)); err != nil {
			return fmt.Errorf("sequence names: %w", err)
		}
	}

	if d.EventFeatures != nil {
		if len(d.EventFeatures) != n {
			return fmt.Errorf("%w: %d event feature rows for %d types", errs.ErrInvalidFeatureShape, len(d.EventFeatures), n)
		}
		dim := d.EventFeatureDim()
		for c, row := range d.EventFeatures {
			if len(row) != dim {
				return fmt.Errorf("%w: event feature row %d has dimension %d, want %d", errs.ErrInvalidFeatureShape, c, len(row), dim)
			}
		}
	}

	aggregated := d.IsAggregated()
	for i := range d.Sequences {
		seq := &d.Sequences[i]
		if seq.IsAggregated() != aggregated {
			return fmt.Errorf("sequence %d: %w: mixed aggregated and per-event sequences", i, errs.ErrInvalidCountMatrix)
		}
		if err := seq.validate(n); err != nil {
			return fmt.Errorf("sequence %d: %w", i, err)
		}
	}

	return nil
}

func (s *Sequence) validate(numTypes int) error {
	if math.IsNaN(s.TStart) || math.IsNaN(s.TStop) || math.IsInf(s.TStart, 0) || math.IsInf(s.TStop, 0) {
		return fmt.Errorf("%w: window [%v, %v] is not finite", errs.ErrInvalidWindow, s.TStart, s.TStop)
	}
	if s.TStart > s.TStop {
		return fmt.Errorf("%w: %v > %v", errs.ErrInvalidWindow, s.TStart, s.TStop)
	}

	if s.IsAggregated() {
		if len(s.Counts) != len(s.Times) {
			return fmt.Errorf("%w: %d rows for %d bins", errs.ErrInvalidCountMatrix, len(s.Counts), len(s.Times))
		}
		for n, row := range s.Counts {
			if len(row) != numTypes {
				return fmt.Errorf("%w: bin %d has %d columns, want %d", errs.ErrInvalidCountMatrix, n, len(row), numTypes)
			}
		}

		return nil
	}

	if len(s.Times) != len(s.Events) {
		return fmt.Errorf("%w: %d times, %d events", errs.ErrLengthMismatch, len(s.Times), len(s.Events))
	}
	for k, c := range s.Events {
		if c < 0 || c >= numTypes {
			return fmt.Errorf("%w: event %d has type %d", errs.ErrUnknownEventType, k, c)
		}
	}
	for k := 1; k < len(s.Times); k++ {
		if s.Times[k] < s.Times[k-1] {
			return fmt.Errorf("%w: times[%d]=%v < times[%d]=%v", errs.ErrUnsortedTimes, k, s.Times[k], k-1, s.Times[k-1])
		}
	}

	return nil
}

func checkBijection(forward map[string]int, backward map[int]string, size int) error {
	if len(forward) != size || len(backward) != size {
		return fmt.Errorf("%w: %d names, %d indices, %d entries", errs.ErrInvalidIndexMap, len(forward), len(backward), size)
	}

	for name, idx := range forward {
		if idx < 0 || idx >= size {
			return fmt.Errorf("%w: %q maps to %d", errs.ErrInvalidIndexMap, name, idx)
		}
		if backward[idx] != name {
			return fmt.Errorf("%w: %q maps to %d but %d maps to %q", errs.ErrInvalidIndexMap, name, idx, idx, backward[idx])
		}
	}

	return nil
}
