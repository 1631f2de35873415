package archive

import (
	"fmt"
	"io"

	"github.com/arloliu/evseq/compress"
	"github.com/arloliu/evseq/dataset"
	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/internal/encoding"
	"github.com/arloliu/evseq/internal/hash"
	"github.com/arloliu/evseq/section"
)

// Decode parses an archive produced by Encode.
//
// The header, the payload checksum and the vocabulary fingerprint are all
// verified, and the rebuilt dataset is validated before it is returned.
func Decode(data []byte) (*dataset.Dataset, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	if !header.Flag.HasEventFeatures() && header.EventFeatureDim != 0 {
		return nil, fmt.Errorf("%w: event feature dimension %d without event features", errs.ErrInvalidHeaderFlags, header.EventFeatureDim)
	}

	want := uint64(section.HeaderSize) + uint64(header.PayloadSize)
	switch {
	case uint64(len(data)) < want:
		return nil, fmt.Errorf("%w: archive is %d bytes, header declares %d", errs.ErrTruncatedPayload, len(data), want)
	case uint64(len(data)) > want:
		return nil, fmt.Errorf("%w: %d bytes after the payload", errs.ErrTrailingPayloadBytes, uint64(len(data))-want)
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	raw, err := compress.DecompressSize(codec, data[section.HeaderSize:], int(header.RawPayloadSize))
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	if sum := hash.Checksum(raw); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got %016x, header declares %016x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	ds, err := readPayload(encoding.NewColumnReader(raw, header.Flag.GetEndianEngine()), &header)
	if err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return ds, nil
}

// Read reads one archive from r and decodes it.
func Read(r io.Reader) (*dataset.Dataset, error) {
	head := make([]byte, section.HeaderSize)
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, fmt.Errorf("%w: read header: %w", errs.ErrTruncatedPayload, err)
	}
	header, err := section.ParseHeader(head)
	if err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}

	payload, err := io.ReadAll(io.LimitReader(r, int64(header.PayloadSize)))
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: read %d payload bytes, header declares %d", errs.ErrTruncatedPayload, len(payload), header.PayloadSize)
	}

	return Decode(append(head, payload...))
}

func readPayload(r *encoding.ColumnReader, header *section.Header) (*dataset.Dataset, error) {
	typeCount := int(header.TypeCount)
	types, err := encoding.DecodeNames(r, typeCount)
	if err != nil {
		return nil, fmt.Errorf("event types: %w", err)
	}
	if fp := hash.Fingerprint(types); fp != header.Fingerprint {
		return nil, fmt.Errorf("%w: got %016x, header declares %016x", errs.ErrFingerprintMismatch, fp, header.Fingerprint)
	}

	ds := &dataset.Dataset{
		TypeToIndex: make(map[string]int, typeCount),
		IndexToType: make(map[int]string, typeCount),
		SeqToIndex:  make(map[string]int),
		IndexToSeq:  make(map[int]string),
	}
	for i, name := range types {
		ds.TypeToIndex[name] = i
		ds.IndexToType[i] = name
	}

	if header.Flag.HasEventFeatures() {
		dim := int(header.EventFeatureDim)
		ds.EventFeatures = make([][]float64, typeCount)
		for c := range ds.EventFeatures {
			ds.EventFeatures[c] = r.Float64s(dim)
		}
	}

	seqCount := int(header.SequenceCount)
	switch marker := r.Byte(); marker {
	case 0:
	case 1:
		names, err := encoding.DecodeNames(r, seqCount)
		if err != nil {
			return nil, fmt.Errorf("sequence names: %w", err)
		}
		for i, name := range names {
			ds.SeqToIndex[name] = i
			ds.IndexToSeq[i] = name
		}
	default:
		return nil, fmt.Errorf("%w: sequence names marker %d", errs.ErrInvalidHeaderFlags, marker)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	// every record holds at least its flag byte, the window and a length
	if seqCount > r.Remaining()/18 {
		return nil, fmt.Errorf("%w: %d sequences in %d bytes", errs.ErrTruncatedPayload, seqCount, r.Remaining())
	}
	ds.Sequences = make([]dataset.Sequence, seqCount)
	aggregated := header.Flag.IsAggregated()
	for i := range ds.Sequences {
		readSequence(r, &ds.Sequences[i], typeCount, aggregated)
		if err := r.Err(); err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
	}

	if r.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d bytes after the last sequence", errs.ErrTrailingPayloadBytes, r.Remaining())
	}

	return ds, nil
}

func readSequence(r *encoding.ColumnReader, seq *dataset.Sequence, typeCount int, aggregated bool) {
	flag := r.Byte()
	seq.TStart = r.Float64()
	seq.TStop = r.Float64()
	if flag&section.SeqHasLabel != 0 {
		seq.Label = dataset.LabelOf(r.Float64())
	}
	if flag&section.SeqHasFeature != 0 {
		seq.Feature = r.Float64s(r.Len(8))
	}

	n := r.Len(8)
	if n > 0 {
		seq.Times = r.Float64s(n)
	}

	if aggregated {
		seq.Counts = make([][]int, n)
		for k := range seq.Counts {
			row := make([]int, typeCount)
			for c := range row {
				row[c] = int(r.Uvarint()) //nolint: gosec
			}
			seq.Counts[k] = row
			if r.Err() != nil {
				return
			}
		}

		return
	}
	if n > 0 {
		seq.Events = make([]int, n)
		for k := range seq.Events {
			seq.Events[k] = int(r.Uvarint()) //nolint: gosec
		}
	}
}
