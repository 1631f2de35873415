// Package errs defines the sentinel errors shared by every evseq package.
//
// Errors are compared with errors.Is; call sites add context with
// fmt.Errorf("...: %w", err).
package errs

import "errors"

// Composition faults. Stitch and Superpose recover from these: the first
// dataset is returned together with an error wrapping one of them.
var (
	// ErrIncompatibleDatasets reports differing event-type vocabularies.
	ErrIncompatibleDatasets = errors.New("datasets do not share the same event types")
	// ErrUnknownMode reports an unrecognized pairing mode.
	ErrUnknownMode = errors.New("unknown pairing mode")
	// ErrEmptyDataset reports a dataset without sequences where at least one is required.
	ErrEmptyDataset = errors.New("dataset has no sequences")
	// ErrNoCandidates reports a nil or empty second dataset in a composition.
	ErrNoCandidates = errors.New("second dataset has no sequences to pair with")
	// ErrAlreadyAggregated reports an aggregated dataset passed where per-event data is required.
	ErrAlreadyAggregated = errors.New("dataset is already aggregated")
)

// Aggregation errors.
var (
	// ErrInvalidBinWidth reports a non-positive or non-finite bin width.
	ErrInvalidBinWidth = errors.New("bin width must be a positive finite number")
	// ErrBinOutOfRange reports an event whose bin index falls outside the count matrix.
	ErrBinOutOfRange = errors.New("event bin index out of range")
	// ErrInvalidBinPolicy reports an unknown out-of-range bin policy.
	ErrInvalidBinPolicy = errors.New("invalid bin policy")
	// ErrInvalidBinAssignment reports an unknown bin assignment rule.
	ErrInvalidBinAssignment = errors.New("invalid bin assignment")
)

// Dataset model errors.
var (
	ErrNilDataset          = errors.New("dataset is nil")
	ErrInvalidName         = errors.New("name must not be empty")
	ErrDuplicateName       = errors.New("duplicate name")
	ErrHashCollision       = errors.New("name hash collision")
	ErrLengthMismatch      = errors.New("times and events length mismatch")
	ErrUnknownEventType    = errors.New("event type index out of range")
	ErrInvalidWindow       = errors.New("t_start is after t_stop")
	ErrUnsortedTimes       = errors.New("timestamps are not non-decreasing")
	ErrInvalidIndexMap     = errors.New("index maps are not a bijection")
	ErrInvalidFeatureShape = errors.New("invalid feature shape")
	ErrInvalidCountMatrix  = errors.New("invalid count matrix")
	ErrSequenceOutOfRange  = errors.New("sequence index out of range")
)

// Sampler errors.
var (
	ErrInvalidMemorySize = errors.New("memory size must not be negative")
	ErrEmptyBatch        = errors.New("batch has no samples")
	ErrMixedBatch        = errors.New("batch samples carry different optional fields")
)

// Archive errors.
var (
	ErrInvalidHeaderSize    = errors.New("invalid header size")
	ErrInvalidMagicNumber   = errors.New("invalid magic number")
	ErrInvalidHeaderFlags   = errors.New("invalid header flags")
	ErrInvalidCompression   = errors.New("invalid compression type")
	ErrTruncatedPayload     = errors.New("truncated payload")
	ErrChecksumMismatch     = errors.New("payload checksum mismatch")
	ErrFingerprintMismatch  = errors.New("vocabulary fingerprint mismatch")
	ErrInvalidNamesPayload  = errors.New("invalid names payload")
	ErrInvalidNamesCount    = errors.New("invalid names count")
	ErrTrailingPayloadBytes = errors.New("unexpected trailing payload bytes")
	ErrPayloadTooLarge      = errors.New("payload exceeds the archive size limit")
)

// Configuration errors.
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrInvalidConfig = errors.New("invalid configuration")
)

var recoverable = []error{
	ErrIncompatibleDatasets,
	ErrUnknownMode,
	ErrNoCandidates,
	ErrAlreadyAggregated,
}

// IsRecoverable reports whether err is a composition fault after which the
// returned dataset is still well formed.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}

	for _, target := range recoverable {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
