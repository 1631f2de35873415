package sampler

import (
	"fmt"

	"github.com/arloliu/evseq/dataset"
	"github.com/arloliu/evseq/errs"
)

// EventTable lists every event type of a vocabulary for one sequence.
type EventTable struct {
	// Ci holds every type index in order.
	Ci []int
	// Sn repeats the sequence index once per type.
	Sn []int
	// Fsn repeats the sequence feature once per type, nil when absent.
	Fsn [][]float64
	// Cs holds every type index in order.
	Cs []int
	// FCs is the event feature table, nil when absent.
	FCs [][]float64
}

// EnumerateAllEvents builds the event table of sequence seqIndex.
func EnumerateAllEvents(ds *dataset.Dataset, seqIndex int) (EventTable, error) {
	if ds == nil {
		return EventTable{}, errs.ErrNilDataset
	}
	if seqIndex < 0 || seqIndex >= ds.Len() {
		return EventTable{}, fmt.Errorf("%w: %d of %d", errs.ErrSequenceOutOfRange, seqIndex, ds.Len())
	}

	n := ds.NumTypes()
	tbl := EventTable{
		Ci: make([]int, n),
		Sn: make([]int, n),
		Cs: make([]int, n),
	}
	for c := 0; c < n; c++ {
		tbl.Ci[c] = c
		tbl.Cs[c] = c
		tbl.Sn[c] = seqIndex
	}

	if feature := ds.Sequences[seqIndex].Feature; feature != nil {
		tbl.Fsn = make([][]float64, n)
		for c := range tbl.Fsn {
			tbl.Fsn[c] = feature
		}
	}
	if ds.HasEventFeatures() {
		tbl.FCs = ds.EventFeatures
	}

	return tbl, nil
}

// Fields returns the table as a name → value mapping with keys ci, sn, fsn,
// Cs and FCs. Absent optional entries map to nil.
func (t EventTable) Fields() map[string]any {
	return map[string]any{
		"ci":  t.Ci,
		"sn":  t.Sn,
		"fsn": nilIfEmpty(t.Fsn),
		"Cs":  t.Cs,
		"FCs": nilIfEmpty(t.FCs),
	}
}

// Batch is a collated group of samples.
type Batch struct {
	Ti   []float64
	Tjs  [][]float64
	Ci   []int
	Cjs  [][]int
	Sn   []int
	Fsn  [][]float64
	Fci  [][]float64
	Fcjs [][][]float64

	// Cs and FCs come from the event table passed to Collate.
	Cs  []int
	FCs [][]float64
}

// Collate packs samples into a Batch. All samples must agree on which
// optional features they carry.
func Collate(samples []Sample, table EventTable) (Batch, error) {
	if len(samples) == 0 {
		return Batch{}, errs.ErrEmptyBatch
	}

	first := &samples[0]
	hasSeqFeature := first.SeqFeature != nil
	hasEventFeature := first.EventFeature != nil
	hasHistoryFeature := first.HistoryEventFeatures != nil

	n := len(samples)
	b := Batch{
		Ti:  make([]float64, n),
		Tjs: make([][]float64, n),
		Ci:  make([]int, n),
		Cjs: make([][]int, n),
		Sn:  make([]int, n),
		Cs:  table.Cs,
		FCs: table.FCs,
	}
	if hasSeqFeature {
		b.Fsn = make([][]float64, n)
	}
	if hasEventFeature {
		b.Fci = make([][]float64, n)
	}
	if hasHistoryFeature {
		b.Fcjs = make([][][]float64, n)
	}

	for i := range samples {
		s := &samples[i]
		if (s.SeqFeature != nil) != hasSeqFeature ||
			(s.EventFeature != nil) != hasEventFeature ||
			(s.HistoryEventFeatures != nil) != hasHistoryFeature {
			return Batch{}, fmt.Errorf("%w: sample %d", errs.ErrMixedBatch, i)
		}

		b.Ti[i] = s.Time
		b.Tjs[i] = s.HistoryTimes
		b.Ci[i] = s.Target
		b.Cjs[i] = s.HistoryEvents
		b.Sn[i] = s.Seq
		if hasSeqFeature {
			b.Fsn[i] = s.SeqFeature
		}
		if hasEventFeature {
			b.Fci[i] = s.EventFeature
		}
		if hasHistoryFeature {
			b.Fcjs[i] = s.HistoryEventFeatures
		}
	}

	return b, nil
}

// Fields returns the batch as a name → value mapping with keys ti, tjs, ci,
// cjs, sn, fsn, fci, fcjs, Cs and FCs. Absent optional entries map to nil.
func (b Batch) Fields() map[string]any {
	return map[string]any{
		"ti":   b.Ti,
		"tjs":  b.Tjs,
		"ci":   b.Ci,
		"cjs":  b.Cjs,
		"sn":   b.Sn,
		"fsn":  nilIfEmpty(b.Fsn),
		"fci":  nilIfEmpty(b.Fci),
		"fcjs": nilIfEmpty(b.Fcjs),
		"Cs":   b.Cs,
		"FCs":  nilIfEmpty(b.FCs),
	}
}

// nilIfEmpty maps a nil slice to an untyped nil.
func nilIfEmpty[T any](v []T) any {
	if v == nil {
		return nil
	}

	return v
}
