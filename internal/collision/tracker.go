// Package collision tracks names handed to the dataset builder.
//
// Every name is keyed by its xxHash64 id. Re-adding a name is an error;
// two different names that share an id are accepted and flagged, since the
// dataset keeps the names themselves and only the fingerprint relies on ids.
package collision

import (
	"fmt"

	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/internal/hash"
)

// Tracker records names in insertion order and detects duplicates.
type Tracker struct {
	byID         map[uint64][]string // id → names sharing that id
	names        []string            // insertion order
	hasCollision bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byID:  make(map[uint64][]string),
		names: make([]string, 0),
	}
}

// Track registers name and returns its position in insertion order.
//
// Returns errs.ErrInvalidName for an empty name and errs.ErrDuplicateName
// when the name was tracked before.
func (t *Tracker) Track(name string) (int, error) {
	if name == "" {
		return -1, errs.ErrInvalidName
	}

	id := hash.ID(name)
	if existing, ok := t.byID[id]; ok {
		for _, n := range existing {
			if n == name {
				return -1, fmt.Errorf("%w: %q", errs.ErrDuplicateName, name)
			}
		}
		t.hasCollision = true
	}

	t.byID[id] = append(t.byID[id], name)
	t.names = append(t.names, name)

	return len(t.names) - 1, nil
}

// Contains reports whether name has been tracked.
func (t *Tracker) Contains(name string) bool {
	for _, n := range t.byID[hash.ID(name)] {
		if n == name {
			return true
		}
	}

	return false
}

// HasCollision reports whether two tracked names share an id.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in insertion order.
// The returned slice is owned by the tracker.
func (t *Tracker) Names() []string {
	return t.names
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears the tracker, keeping allocated capacity.
func (t *Tracker) Reset() {
	for k := range t.byID {
		delete(t.byID, k)
	}
	t.names = t.names[:0]
	t.hasCollision = false
}
