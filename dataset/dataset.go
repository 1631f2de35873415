package dataset

import (
	"cmp"
	"maps"
	"slices"

	"github.com/arloliu/evseq/internal/hash"
)

// Dataset is a collection of sequences sharing one event-type vocabulary.
//
// Operations in evseq never modify a Dataset in place. They return new
// values whose sequence list and slices are freshly allocated.
type Dataset struct {
	// EventFeatures holds one feature row per event type (types × dim).
	// Nil means the dataset has no event features.
	EventFeatures [][]float64

	TypeToIndex map[string]int
	IndexToType map[int]string

	SeqToIndex map[string]int
	IndexToSeq map[int]string

	Sequences []Sequence
}

// NumTypes returns the vocabulary size.
func (d *Dataset) NumTypes() int {
	return len(d.TypeToIndex)
}

// Len returns the number of sequences.
func (d *Dataset) Len() int {
	return len(d.Sequences)
}

// HasEventFeatures reports whether event features are present.
func (d *Dataset) HasEventFeatures() bool {
	return d.EventFeatures != nil
}

// EventFeatureDim returns the event feature dimension, 0 when absent.
func (d *Dataset) EventFeatureDim() int {
	if len(d.EventFeatures) == 0 {
		return 0
	}

	return len(d.EventFeatures[0])
}

// IsAggregated reports whether any sequence holds binned counts.
func (d *Dataset) IsAggregated() bool {
	for i := range d.Sequences {
		if d.Sequences[i].IsAggregated() {
			return true
		}
	}

	return false
}

// TypeNames returns the event-type names ordered by index.
func (d *Dataset) TypeNames() []string {
	return namesByIndex(d.TypeToIndex)
}

// SequenceNames returns the sequence names ordered by index.
func (d *Dataset) SequenceNames() []string {
	return namesByIndex(d.SeqToIndex)
}

// Fingerprint hashes the vocabulary in index order.
// Compatible datasets always share a fingerprint.
func (d *Dataset) Fingerprint() uint64 {
	return hash.Fingerprint(d.TypeNames())
}

// Compatible reports whether d and other share exactly the same
// TypeToIndex mapping: same names mapped to the same indices.
func (d *Dataset) Compatible(other *Dataset) bool {
	if d == nil || other == nil {
		return false
	}

	return maps.Equal(d.TypeToIndex, other.TypeToIndex)
}

// Clone returns a deep copy of d.
func (d *Dataset) Clone() *Dataset {
	if d.Sequences == nil {
		return d.WithSequences(nil)
	}

	out := d.WithSequences(make([]Sequence, len(d.Sequences)))
	for i := range d.Sequences {
		out.Sequences[i] = d.Sequences[i].Clone()
	}

	return out
}

// WithSequences returns a dataset with d's index maps and event features
// structurally copied and seqs adopted as its sequence list.
func (d *Dataset) WithSequences(seqs []Sequence) *Dataset {
	out := &Dataset{
		TypeToIndex: maps.Clone(d.TypeToIndex),
		IndexToType: maps.Clone(d.IndexToType),
		SeqToIndex:  maps.Clone(d.SeqToIndex),
		IndexToSeq:  maps.Clone(d.IndexToSeq),
		Sequences:   seqs,
	}
	if d.EventFeatures != nil {
		out.EventFeatures = make([][]float64, len(d.EventFeatures))
		for i, row := range d.EventFeatures {
			out.EventFeatures[i] = slices.Clone(row)
		}
	}

	return out
}

func namesByIndex(m map[string]int) []string {
	type entry struct {
		name string
		idx  int
	}

	entries := make([]entry, 0, len(m))
	for name, idx := range m {
		entries = append(entries, entry{name: name, idx: idx})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(a.idx, b.idx); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}

	return names
}
