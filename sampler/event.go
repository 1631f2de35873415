package sampler

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/arloliu/evseq/dataset"
	"github.com/arloliu/evseq/errs"
)

// EventSampler yields one sample per event across all sequences.
type EventSampler struct {
	samples
	memorySize int
}

// NewEventSampler builds the event samples of ds. Each sample carries the
// memorySize events preceding the current one; slots before the first
// event of a sequence hold random event types at the sequence TStart.
func NewEventSampler(ds *dataset.Dataset, memorySize int, opts ...Option) (*EventSampler, error) {
	if err := checkInput(ds, memorySize); err != nil {
		return nil, err
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	s := &EventSampler{memorySize: memorySize}
	numTypes := ds.NumTypes()
	for i := range ds.Sequences {
		seq := &ds.Sequences[i]
		for j, target := range seq.Events {
			events, times := padded(cfg, numTypes, memorySize, seq.TStart)
			lo := max(0, j-memorySize)
			copy(events[memorySize-(j-lo):], seq.Events[lo:j])
			copy(times[memorySize-(j-lo):], seq.Times[lo:j])

			smp := Sample{
				Time:                 seq.Times[j],
				HistoryTimes:         times,
				Target:               target,
				HistoryEvents:        events,
				Seq:                  i,
				SeqFeature:           slices.Clone(seq.Feature),
				HistoryEventFeatures: eventRows(ds, events),
			}
			if ds.HasEventFeatures() {
				smp.EventFeature = slices.Clone(ds.EventFeatures[target])
			}
			s.samples = append(s.samples, smp)
		}
	}

	cfg.logger.Info("event sampler ready",
		zap.Int("events", s.Len()),
		zap.Int("memory_size", memorySize),
	)

	return s, nil
}

// MemorySize returns the history window length.
func (s *EventSampler) MemorySize() int {
	return s.memorySize
}

func checkInput(ds *dataset.Dataset, memorySize int) error {
	if ds == nil {
		return errs.ErrNilDataset
	}
	if memorySize < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidMemorySize, memorySize)
	}
	if ds.Len() == 0 {
		return errs.ErrEmptyDataset
	}
	if ds.IsAggregated() {
		return errs.ErrAlreadyAggregated
	}

	return ds.Validate()
}

// padded returns a history window of random event types at tStart.
func padded(cfg *config, numTypes, size int, tStart float64) ([]int, []float64) {
	events := make([]int, size)
	times := make([]float64, size)
	for k := range events {
		if numTypes > 0 {
			events[k] = cfg.rng.IntN(numTypes)
		}
		times[k] = tStart
	}

	return events, times
}
