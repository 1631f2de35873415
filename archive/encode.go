package archive

import (
	"fmt"
	"io"

	"github.com/arloliu/evseq/compress"
	"github.com/arloliu/evseq/dataset"
	"github.com/arloliu/evseq/endian"
	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/internal/encoding"
	"github.com/arloliu/evseq/internal/hash"
	"github.com/arloliu/evseq/internal/pool"
	"github.com/arloliu/evseq/section"
)

// Encode serializes ds into a self-contained archive.
//
// The dataset is validated first; invalid datasets are rejected with the
// validation error.
func Encode(ds *dataset.Dataset, opts ...Option) ([]byte, error) {
	if ds == nil {
		return nil, errs.ErrNilDataset
	}
	cfg, err := newEncoderConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	if err := writePayload(encoding.NewColumnWriter(buf, cfg.engine), ds); err != nil {
		return nil, err
	}
	raw := buf.Bytes()
	if uint64(len(raw)) > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, len(raw))
	}

	codec, err := compress.CreateCodec(cfg.compression, "payload")
	if err != nil {
		return nil, err
	}
	stored, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if uint64(len(stored)) > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d compressed bytes", errs.ErrPayloadTooLarge, len(stored))
	}

	header := section.NewHeader()
	if !endian.IsLittleEndian(cfg.engine) {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetCompression(cfg.compression)
	header.Flag.SetHasEventFeatures(ds.HasEventFeatures())
	header.Flag.SetAggregated(ds.IsAggregated())
	header.TypeCount = uint32(ds.NumTypes())              //nolint: gosec
	header.SequenceCount = uint32(ds.Len())               //nolint: gosec
	header.EventFeatureDim = uint32(ds.EventFeatureDim()) //nolint: gosec
	header.Fingerprint = ds.Fingerprint()
	header.PayloadSize = uint32(len(stored)) //nolint: gosec
	header.RawPayloadSize = uint32(len(raw)) //nolint: gosec
	header.Checksum = hash.Checksum(raw)

	out := make([]byte, 0, section.HeaderSize+len(stored))
	out = header.AppendTo(out)
	out = append(out, stored...)

	return out, nil
}

// Write encodes ds and writes the archive to w.
func Write(w io.Writer, ds *dataset.Dataset, opts ...Option) error {
	data, err := Encode(ds, opts...)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	return nil
}

// writePayload lays out the uncompressed payload:
//
//	vocabulary names
//	event feature table (TypeCount × EventFeatureDim float64, when flagged)
//	sequence-names marker byte, then sequence names when it is 1
//	one record per sequence
func writePayload(w *encoding.ColumnWriter, ds *dataset.Dataset) error {
	if err := encoding.EncodeNames(w, ds.TypeNames()); err != nil {
		return err
	}
	for _, row := range ds.EventFeatures {
		w.Float64s(row)
	}

	if len(ds.SeqToIndex) > 0 {
		w.Byte(1)
		if err := encoding.EncodeNames(w, ds.SequenceNames()); err != nil {
			return err
		}
	} else {
		w.Byte(0)
	}

	for i := range ds.Sequences {
		writeSequence(w, &ds.Sequences[i])
	}

	return nil
}

// writeSequence writes one record:
//
//	flag byte, TStart, TStop, [label], [feature length, feature],
//	length, times, then per timestamp either an event type or a count row
func writeSequence(w *encoding.ColumnWriter, seq *dataset.Sequence) {
	var flag byte
	if seq.HasFeature() {
		flag |= section.SeqHasFeature
	}
	if seq.HasLabel() {
		flag |= section.SeqHasLabel
	}
	w.Byte(flag)
	w.Float64(seq.TStart)
	w.Float64(seq.TStop)
	if seq.HasLabel() {
		w.Float64(*seq.Label)
	}
	if seq.HasFeature() {
		w.Uvarint(uint64(len(seq.Feature)))
		w.Float64s(seq.Feature)
	}

	w.Uvarint(uint64(len(seq.Times)))
	w.Float64s(seq.Times)
	if seq.IsAggregated() {
		for _, row := range seq.Counts {
			for _, n := range row {
				w.Uvarint(uint64(n)) //nolint: gosec
			}
		}

		return
	}
	for _, c := range seq.Events {
		w.Uvarint(uint64(c)) //nolint: gosec
	}
}
