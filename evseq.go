// Package evseq prepares event-sequence datasets for sequence models.
//
// A dataset is a collection of sequences of timestamped, typed events that
// share one event-type vocabulary (see package dataset). evseq composes
// two datasets into a new one, either by stitching (appending a time-shifted
// sequence after another) or by superposition (merging two sequences on a
// common timeline), and aggregates irregular events into fixed-width binned
// counts.
//
// The functions in this package are convenience wrappers. Package compose
// exposes a reusable Composer with an explicit random source, package
// aggregate an Aggregator with an explicit out-of-range policy, and package
// archive the binary and JSON dataset formats.
//
// Basic usage:
//
//	out, err := evseq.Stitch(a, b, compose.ModeRandom, compose.WithSeed(42))
//	if err != nil && !errs.IsRecoverable(err) {
//		return err
//	}
//	binned, err := evseq.Aggregate(out, 0.5)
//	data, err := evseq.Encode(binned)
package evseq

import (
	"github.com/arloliu/evseq/aggregate"
	"github.com/arloliu/evseq/archive"
	"github.com/arloliu/evseq/compose"
	"github.com/arloliu/evseq/dataset"
)

// Stitch pairs every sequence of a with one sequence of b and appends the
// partner's events after it, shifted to start at the sequence's TStop.
//
// Incompatible vocabularies, an unknown mode, an aggregated or empty b
// leave a unchanged: a copy of a is returned along with an error for which
// errs.IsRecoverable is true.
func Stitch(a, b *dataset.Dataset, mode compose.Mode, opts ...compose.Option) (*dataset.Dataset, error) {
	c, err := compose.New(opts...)
	if err != nil {
		return nil, err
	}

	return c.Stitch(a, b, mode)
}

// Superpose pairs every sequence of a with one sequence of b and merges
// both event streams on a common timeline. Faults are handled as in Stitch.
func Superpose(a, b *dataset.Dataset, mode compose.Mode, opts ...compose.Option) (*dataset.Dataset, error) {
	c, err := compose.New(opts...)
	if err != nil {
		return nil, err
	}

	return c.Superpose(a, b, mode)
}

// Aggregate converts every sequence of ds into binned counts of width dt.
func Aggregate(ds *dataset.Dataset, dt float64, opts ...aggregate.Option) (*dataset.Dataset, error) {
	return aggregate.Aggregate(ds, dt, opts...)
}

// Encode serializes ds into a binary archive.
func Encode(ds *dataset.Dataset, opts ...archive.Option) ([]byte, error) {
	return archive.Encode(ds, opts...)
}

// Decode parses a binary archive produced by Encode.
func Decode(data []byte) (*dataset.Dataset, error) {
	return archive.Decode(data)
}
