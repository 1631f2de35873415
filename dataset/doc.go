// Package dataset defines the event-sequence data model shared by every
// evseq operation.
//
// A Dataset holds an ordered list of Sequences that share one event-type
// vocabulary (TypeToIndex / IndexToType). Each Sequence is a timeline of
// typed events bounded by [TStart, TStop], optionally carrying a static
// feature vector and a scalar label.
//
// # Building
//
//	b := dataset.NewBuilder()
//	_ = b.AddTypes("click", "view", "buy")
//	_, _ = b.AddSequence("user-1", dataset.Sequence{
//		Times:  []float64{0.5, 1.2},
//		Events: []int{0, 2},
//		TStart: 0,
//		TStop:  2,
//	})
//	ds, err := b.Build()
//
// # Value semantics
//
// Operations never modify a Dataset in place. Clone and WithSequences are
// the building blocks used by the compose and aggregate packages to derive
// new datasets that share no memory with their inputs.
package dataset
