package section

import (
	"github.com/arloliu/evseq/endian"
	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/format"
)

// Flag is the packed options word and compression byte of the header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is set when the event feature table is present.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2 is set when the sequences are aggregated.
	// Bit 3 is reserved, must be 0.
	// Bits 4-15 hold the magic number 0xE510.
	Options uint16

	// CompressionType is the payload codec.
	CompressionType uint8
}

// NewFlag creates a little-endian, zstd-compressed flag.
func NewFlag() Flag {
	flag := Flag{
		Options:         MagicDatasetV1Opt,
		CompressionType: uint8(format.CompressionZstd),
	}
	flag.WithLittleEndian()

	return flag
}

// HasEventFeatures returns whether the event feature table is present.
func (f Flag) HasEventFeatures() bool {
	return (f.Options & EventFeaturesMask) != 0
}

// SetHasEventFeatures sets or clears the event feature bit.
func (f *Flag) SetHasEventFeatures(enabled bool) {
	if enabled {
		f.Options |= EventFeaturesMask
	} else {
		f.Options &^= EventFeaturesMask
	}
}

// IsAggregated returns whether the sequences hold count matrices.
func (f Flag) IsAggregated() bool {
	return (f.Options & AggregatedMask) != 0
}

// SetAggregated sets or clears the aggregated bit.
func (f *Flag) SetAggregated(enabled bool) {
	if enabled {
		f.Options |= AggregatedMask
	} else {
		f.Options &^= AggregatedMask
	}
}

// IsLittleEndian returns whether the data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload codec.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload codec.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks the magic number, the reserved bit and the codec.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicDatasetV1Opt {
		return errs.ErrInvalidMagicNumber
	}
	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if !f.Compression().IsValid() {
		return errs.ErrInvalidCompression
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
