package encoding

import (
	"fmt"

	"github.com/arloliu/evseq/errs"
)

// EncodeNames writes an ordered name list.
// Format: [Count: uint32] [Len1: uvarint][Name1: UTF-8] [Len2: uvarint][Name2: UTF-8] ...
//
// Returns errs.ErrInvalidNamesCount when the list does not fit a uint32 count.
func EncodeNames(w *ColumnWriter, names []string) error {
	if uint64(len(names)) > uint64(^uint32(0)) {
		return fmt.Errorf("%w: %d names", errs.ErrInvalidNamesCount, len(names))
	}

	w.Uint32(uint32(len(names))) //nolint: gosec
	for _, name := range names {
		w.String(name)
	}

	return nil
}

// DecodeNames reads a name list written by EncodeNames and checks that it
// holds want names.
func DecodeNames(r *ColumnReader, want int) ([]string, error) {
	count := r.Uint32()
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidNamesPayload, err)
	}
	if int64(count) != int64(want) {
		return nil, fmt.Errorf("%w: payload holds %d names, header declares %d", errs.ErrInvalidNamesCount, count, want)
	}
	// every name takes at least its length byte
	if int64(count) > int64(r.Remaining()) {
		return nil, fmt.Errorf("%w: %d names in %d bytes", errs.ErrInvalidNamesPayload, count, r.Remaining())
	}

	names := make([]string, count)
	for i := range names {
		names[i] = r.String()
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidNamesPayload, err)
	}

	return names, nil
}
