package section

import (
	"encoding/binary"

	"github.com/arloliu/evseq/errs"
)

// Header is the fixed-size section at the start of a dataset archive.
type Header struct {
	// Flag is a packed field for options, magic number and codec.
	Flag Flag // byte offset 0-2
	// Reserved must be 0.
	Reserved uint8 // byte offset 3
	// TypeCount is the vocabulary size.
	TypeCount uint32 // byte offset 4-7
	// SequenceCount is the number of sequences.
	SequenceCount uint32 // byte offset 8-11
	// EventFeatureDim is the width of the event feature table, 0 when absent.
	EventFeatureDim uint32 // byte offset 12-15
	// Fingerprint is the xxHash64 of the vocabulary in index order.
	Fingerprint uint64 // byte offset 16-23
	// PayloadSize is the stored (compressed) payload size in bytes.
	PayloadSize uint32 // byte offset 24-27
	// RawPayloadSize is the uncompressed payload size in bytes.
	RawPayloadSize uint32 // byte offset 28-31
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 32-39
}

// NewHeader creates a header with the default flag.
// Counts, sizes and hashes are filled in by the encoder.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 40 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 40 bytes, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// the options word is always little-endian, it carries the endianness bit
	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.CompressionType = data[2]
	h.Reserved = data[3]
	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if h.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	engine := h.Flag.GetEndianEngine()
	h.TypeCount = engine.Uint32(data[4:8])
	h.SequenceCount = engine.Uint32(data[8:12])
	h.EventFeatureDim = engine.Uint32(data[12:16])
	h.Fingerprint = engine.Uint64(data[16:24])
	h.PayloadSize = engine.Uint32(data[24:28])
	h.RawPayloadSize = engine.Uint32(data[28:32])
	h.Checksum = engine.Uint64(data[32:40])

	return nil
}

// Bytes serializes the header into a byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = binary.LittleEndian.AppendUint16(dst, h.Flag.Options)
	dst = append(dst, h.Flag.CompressionType, h.Reserved)
	dst = engine.AppendUint32(dst, h.TypeCount)
	dst = engine.AppendUint32(dst, h.SequenceCount)
	dst = engine.AppendUint32(dst, h.EventFeatureDim)
	dst = engine.AppendUint64(dst, h.Fingerprint)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint32(dst, h.RawPayloadSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ParseHeader parses a Header from the start of data.
//
// Returns ErrInvalidHeaderSize when data is shorter than HeaderSize, or the
// flag validation error.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
