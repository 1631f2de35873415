package sampler

import (
	"slices"

	"github.com/arloliu/evseq/dataset"
)

// Sample is one training example drawn from a dataset.
//
// For the event sampler Target is the current event type and Time its
// timestamp. For the sequence sampler Target is the sequence label code
// (-1 when unlabeled) and Time is the sequence TStop.
//
// Every slice of a Sample is its own copy; modifying a sample never
// changes the sampled dataset.
type Sample struct {
	Time          float64
	HistoryTimes  []float64
	Target        int
	HistoryEvents []int
	Seq           int

	// SeqFeature is the sequence feature, nil when absent.
	SeqFeature []float64
	// EventFeature is the feature row of the target event type. It is only
	// set by the event sampler on datasets with event features.
	EventFeature []float64
	// HistoryEventFeatures holds one feature row per history event, nil
	// when the dataset has no event features.
	HistoryEventFeatures [][]float64
}

// Sampler exposes a fixed list of samples.
type Sampler interface {
	Len() int
	At(i int) Sample
	Samples() []Sample
}

type samples []Sample

func (s samples) Len() int          { return len(s) }
func (s samples) At(i int) Sample   { return s[i] }
func (s samples) Samples() []Sample { return s }

// eventRows returns the event feature rows of the given types, nil when the
// dataset has no event features.
func eventRows(ds *dataset.Dataset, types []int) [][]float64 {
	if !ds.HasEventFeatures() {
		return nil
	}

	rows := make([][]float64, len(types))
	for k, c := range types {
		rows[k] = slices.Clone(ds.EventFeatures[c])
	}

	return rows
}
