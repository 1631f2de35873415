package compress

import (
	"fmt"

	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/format"
)

// Compressor compresses a complete, already encoded archive payload.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// The input slice is not modified. Implementations may return the input
	// slice itself (see NoOpCompressor).
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original payload, or an error when data is
	// corrupted or was produced by another algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor

	// Type returns the compression type stored in the archive header.
	Type() format.CompressionType

	// MaxDecompressedSize returns the largest payload data can decode to.
	// It reads at most a frame header and never decompresses.
	MaxDecompressedSize(data []byte) int
}

// Stats describes one compression run.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Returns 0 when the original size is zero.
func (s Stats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %d", errs.ErrInvalidCompression, target, uint8(compressionType))
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(compressionType))
}

// CompressWithStats compresses data with codec and reports the sizes.
func CompressWithStats(codec Codec, data []byte) ([]byte, Stats, error) {
	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, err
	}

	return out, Stats{
		Algorithm:      codec.Type(),
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(out)),
	}, nil
}

// SizedDecompressor is implemented by codecs that decode faster when the
// decompressed size is known up front.
type SizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// DecompressSize decompresses data produced by codec whose original size is
// size, and checks that the output has that size.
//
// A size that data cannot decode to is rejected before any buffer is
// allocated, so an untrusted size never drives the allocation.
func DecompressSize(codec Codec, data []byte, size int) ([]byte, error) {
	if limit := codec.MaxDecompressedSize(data); size < 0 || size > limit {
		return nil, fmt.Errorf("%w: %s payload of %d bytes cannot hold %d bytes", errs.ErrTruncatedPayload, codec.Type(), len(data), size)
	}

	var (
		out []byte
		err error
	)
	if sd, ok := codec.(SizedDecompressor); ok {
		out, err = sd.DecompressSize(data, size)
	} else {
		out, err = codec.Decompress(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", codec.Type(), err)
	}
	if len(out) != size {
		return nil, fmt.Errorf("%w: %s output is %d bytes, want %d", errs.ErrTruncatedPayload, codec.Type(), len(out), size)
	}

	return out, nil
}
