// Package compose combines two event-sequence datasets.
//
// Stitching appends a paired sequence of the second dataset after every
// sequence of the first, shifted in time. Superposition interleaves the
// paired events into one sorted timeline. Pairing is either a random
// permutation of the candidates (ModeRandom) or a draw from a similarity
// distribution (ModeFeature, see Weights).
//
//	c, err := compose.New(compose.WithSeed(42), compose.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	out, err := c.Stitch(a, b, compose.ModeRandom)
//	if err != nil && !errs.IsRecoverable(err) {
//		return err
//	}
//
// Composition faults (incompatible vocabularies, unknown mode, empty or
// aggregated input) never abort: the first dataset is returned as a copy
// alongside the error.
package compose
