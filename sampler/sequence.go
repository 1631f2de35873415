package sampler

import (
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/arloliu/evseq/dataset"
)

// SequenceSampler yields one sample per sequence, targeting its label.
type SequenceSampler struct {
	samples
	memorySize int
}

// NewSequenceSampler builds the sequence samples of ds.
//
// With memorySize 0 the history is the whole sequence, so samples have
// different lengths and batches can hold only one sample. Otherwise the
// history is the last memorySize events, leading-padded with random event
// types at TStart when the sequence is shorter.
func NewSequenceSampler(ds *dataset.Dataset, memorySize int, opts ...Option) (*SequenceSampler, error) {
	if err := checkInput(ds, memorySize); err != nil {
		return nil, err
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if memorySize == 0 {
		cfg.logger.Warn("memory size is not given, the sampler can only sample one sequence per batch")
	}

	s := &SequenceSampler{memorySize: memorySize}
	numTypes := ds.NumTypes()
	for i := range ds.Sequences {
		seq := &ds.Sequences[i]

		var (
			events []int
			times  []float64
		)
		if memorySize == 0 {
			events = slices.Clone(seq.Events)
			times = slices.Clone(seq.Times)
		} else {
			events, times = padded(cfg, numTypes, memorySize, seq.TStart)
			n := min(len(seq.Events), memorySize)
			copy(events[memorySize-n:], seq.Events[len(seq.Events)-n:])
			copy(times[memorySize-n:], seq.Times[len(seq.Times)-n:])
		}

		s.samples = append(s.samples, Sample{
			Time:                 seq.TStop,
			HistoryTimes:         times,
			Target:               labelCode(seq.Label),
			HistoryEvents:        events,
			Seq:                  i,
			SeqFeature:           slices.Clone(seq.Feature),
			HistoryEventFeatures: eventRows(ds, events),
		})
	}

	cfg.logger.Info("sequence sampler ready",
		zap.Int("sequences", s.Len()),
		zap.Int("memory_size", memorySize),
	)

	return s, nil
}

// MemorySize returns the history window length, 0 for whole sequences.
func (s *SequenceSampler) MemorySize() int {
	return s.memorySize
}

func labelCode(label *float64) int {
	if label == nil {
		return -1
	}

	return int(math.Round(*label))
}
