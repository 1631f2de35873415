package dataset

import (
	"fmt"
	"slices"

	"github.com/arloliu/evseq/internal/collision"
)

// Builder assembles a Dataset from named event types and named sequences.
//
// Types receive dense indices in the order they are added, sequences keep
// the order they are added in. A Builder is not safe for concurrent use.
type Builder struct {
	types         *collision.Tracker
	seqNames      *collision.Tracker
	eventFeatures [][]float64
	sequences     []Sequence
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		types:    collision.NewTracker(),
		seqNames: collision.NewTracker(),
	}
}

// AddType registers an event type and returns its index.
func (b *Builder) AddType(name string) (int, error) {
	idx, err := b.types.Track(name)
	if err != nil {
		return -1, fmt.Errorf("event type: %w", err)
	}

	return idx, nil
}

// AddTypes registers several event types in order.
func (b *Builder) AddTypes(names ...string) error {
	for _, name := range names {
		if _, err := b.AddType(name); err != nil {
			return err
		}
	}

	return nil
}

// TypeIndex returns the index of a registered event type.
func (b *Builder) TypeIndex(name string) (int, bool) {
	idx := slices.Index(b.types.Names(), name)

	return idx, idx >= 0
}

// SetEventFeatures sets the per-type feature table. The rows are copied.
func (b *Builder) SetEventFeatures(features [][]float64) {
	if features == nil {
		b.eventFeatures = nil
		return
	}

	b.eventFeatures = make([][]float64, len(features))
	for i, row := range features {
		b.eventFeatures[i] = slices.Clone(row)
	}
}

// AddSequence appends a copy of seq under name and returns its index.
func (b *Builder) AddSequence(name string, seq Sequence) (int, error) {
	idx, err := b.seqNames.Track(name)
	if err != nil {
		return -1, fmt.Errorf("sequence: %w", err)
	}
	b.sequences = append(b.sequences, seq.Clone())

	return idx, nil
}

// Build returns the validated dataset. The builder can keep being used;
// later additions do not affect datasets already built.
func (b *Builder) Build() (*Dataset, error) {
	d := &Dataset{
		TypeToIndex: make(map[string]int, b.types.Count()),
		IndexToType: make(map[int]string, b.types.Count()),
		SeqToIndex:  make(map[string]int, b.seqNames.Count()),
		IndexToSeq:  make(map[int]string, b.seqNames.Count()),
		Sequences:   make([]Sequence, len(b.sequences)),
	}

	for i, name := range b.types.Names() {
		d.TypeToIndex[name] = i
		d.IndexToType[i] = name
	}
	for i, name := range b.seqNames.Names() {
		d.SeqToIndex[name] = i
		d.IndexToSeq[i] = name
	}
	for i := range b.sequences {
		d.Sequences[i] = b.sequences[i].Clone()
	}
	if b.eventFeatures != nil {
		d.EventFeatures = make([][]float64, len(b.eventFeatures))
		for i, row := range b.eventFeatures {
			d.EventFeatures[i] = slices.Clone(row)
		}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}
