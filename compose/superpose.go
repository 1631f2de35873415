package compose

import (
	"slices"

	"github.com/arloliu/evseq/dataset"
	"github.com/arloliu/evseq/internal/pool"
)

// Superpose merges, for every sequence of a, the events of one paired
// sequence of b into a single time-sorted timeline without shifting.
//
// Ties keep a's events before b's. The output window is
//
//	TStart = min(a.TStart, b.TStop)
//	TStop  = max(a.TStop, b.TStop)
//
// Feature-mode pairing uses the same weights as Stitch.
//
// Fault handling matches Stitch.
func (c *Composer) Superpose(a, b *dataset.Dataset, mode Mode) (*dataset.Dataset, error) {
	return c.compose("superposition", a, b, mode, superposePair)
}

// SuperposeByName is Superpose with the mode given by name.
func (c *Composer) SuperposeByName(a, b *dataset.Dataset, mode string) (*dataset.Dataset, error) {
	return c.composeByName("superposition", a, b, mode, superposePair)
}

func superposePair(a, b *dataset.Sequence) dataset.Sequence {
	n := len(a.Times) + len(b.Times)

	merged, release := pool.GetFloat64Slice(n)
	defer release()
	merged = append(merged[:0], a.Times...)
	merged = append(merged, b.Times...)

	order, releaseOrder := pool.GetIntSlice(n)
	defer releaseOrder()
	for k := range order {
		order[k] = k
	}
	slices.SortStableFunc(order, func(x, y int) int {
		switch {
		case merged[x] < merged[y]:
			return -1
		case merged[x] > merged[y]:
			return 1
		default:
			return 0
		}
	})

	times := make([]float64, n)
	events := make([]int, n)
	na := len(a.Events)
	for k, src := range order {
		times[k] = merged[src]
		if src < na {
			events[k] = a.Events[src]
		} else {
			events[k] = b.Events[src-na]
		}
	}

	out := dataset.Sequence{
		Times:   times,
		Events:  events,
		Feature: dataset.MeanFeature(*a, *b),
		TStart:  min(a.TStart, b.TStop),
		TStop:   max(a.TStop, b.TStop),
	}
	if a.Label != nil {
		out.Label = dataset.LabelOf(*a.Label)
	}

	return out
}
