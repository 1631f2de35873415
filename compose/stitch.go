package compose

import "github.com/arloliu/evseq/dataset"

// Stitch appends, for every sequence of a, the events of one paired
// sequence of b shifted to start at the target's TStop.
//
// The output keeps a's sequence order, names, labels, vocabulary and event
// features. Each output sequence has
//
//	Times  = a.Times ++ (b.Times - b.TStart + a.TStop)
//	Events = a.Events ++ b.Events
//	TStop  = a.TStop + (b.TStop - b.TStart)
//
// and the element-wise mean of both features when they share a dimension.
//
// When the datasets are incompatible, the mode is unknown, b is empty or
// either dataset is aggregated, Stitch logs a warning and returns a copy of
// a together with an error for which errs.IsRecoverable reports true.
func (c *Composer) Stitch(a, b *dataset.Dataset, mode Mode) (*dataset.Dataset, error) {
	return c.compose("stitching", a, b, mode, stitchPair)
}

// StitchByName is Stitch with the mode given by name, as accepted by
// ParseMode. An unknown name returns a copy of a and errs.ErrUnknownMode.
func (c *Composer) StitchByName(a, b *dataset.Dataset, mode string) (*dataset.Dataset, error) {
	return c.composeByName("stitching", a, b, mode, stitchPair)
}

func stitchPair(a, b *dataset.Sequence) dataset.Sequence {
	times := make([]float64, 0, len(a.Times)+len(b.Times))
	times = append(times, a.Times...)
	// shift relative to b's window first so an event at b.TStart lands on a.TStop exactly
	for _, t := range b.Times {
		times = append(times, t-b.TStart+a.TStop)
	}

	events := make([]int, 0, len(a.Events)+len(b.Events))
	events = append(events, a.Events...)
	events = append(events, b.Events...)

	out := dataset.Sequence{
		Times:   times,
		Events:  events,
		Feature: dataset.MeanFeature(*a, *b),
		TStart:  a.TStart,
		TStop:   a.TStop + (b.TStop - b.TStart),
	}
	if a.Label != nil {
		out.Label = dataset.LabelOf(*a.Label)
	}

	return out
}
