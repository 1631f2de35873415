package aggregate

import (
	"fmt"
	"strings"

	"github.com/arloliu/evseq/errs"
)

// BinPolicy decides what happens to an event whose bin index falls outside
// the count matrix.
type BinPolicy uint8

const (
	// PolicyRaise aborts aggregation with an error wrapping errs.ErrBinOutOfRange.
	PolicyRaise BinPolicy = iota + 1
	// PolicyClamp counts the event in the nearest valid bin.
	PolicyClamp
	// PolicyDrop skips the event.
	PolicyDrop
)

func (p BinPolicy) String() string {
	switch p {
	case PolicyRaise:
		return "raise"
	case PolicyClamp:
		return "clamp"
	case PolicyDrop:
		return "drop"
	default:
		return fmt.Sprintf("BinPolicy(%d)", uint8(p))
	}
}

// ParseBinPolicy converts a policy name. The empty string selects PolicyRaise.
func ParseBinPolicy(name string) (BinPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "raise":
		return PolicyRaise, nil
	case "clamp":
		return PolicyClamp, nil
	case "drop":
		return PolicyDrop, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidBinPolicy, name)
	}
}

// BinAssignment maps an event time to a bin index.
type BinAssignment uint8

const (
	// AssignRound uses round((t - TStart) / dt), rounding half to even.
	AssignRound BinAssignment = iota + 1
	// AssignFloor uses floor((t - TStart) / dt), so bin n covers
	// [TStart + n·dt, TStart + (n+1)·dt).
	AssignFloor
)

func (a BinAssignment) String() string {
	switch a {
	case AssignRound:
		return "round"
	case AssignFloor:
		return "floor"
	default:
		return fmt.Sprintf("BinAssignment(%d)", uint8(a))
	}
}

// ParseBinAssignment converts an assignment name. The empty string selects
// AssignRound.
func ParseBinAssignment(name string) (BinAssignment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "round":
		return AssignRound, nil
	case "floor":
		return AssignFloor, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidBinAssignment, name)
	}
}
