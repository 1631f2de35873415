package compose

import (
	"fmt"
	"strings"

	"github.com/arloliu/evseq/errs"
)

// Mode selects how a sequence of the second dataset is paired with each
// sequence of the first.
type Mode uint8

const (
	// ModeRandom pairs sequences through one random permutation of the
	// candidates per call.
	ModeRandom Mode = iota + 1
	// ModeFeature samples a candidate for every target from a distribution
	// favoring candidates that start soon after the target stops and carry
	// similar features and the same label.
	ModeFeature
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	case ModeFeature:
		return "feature"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m == ModeRandom || m == ModeFeature
}

// ParseMode converts a mode name into a Mode. The empty string selects
// ModeRandom.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "random":
		return ModeRandom, nil
	case "feature":
		return ModeFeature, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownMode, name)
	}
}
