package compress

import (
	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/evseq/format"
)

// ZstdCompressor provides Zstandard compression, the archive default.
//
// Zstd gives the best ratio on archive payloads, which are dominated by
// float64 timestamps and small varint event columns.
//
// The pure-Go implementation from klauspost/compress is used by default.
// Building with the gozstd tag and cgo enabled switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type returns format.CompressionZstd.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}

// zstdMaxRatio bounds a zstd frame: a block decodes to at most 128 KiB and
// takes at least 4 bytes (an RLE block).
const zstdMaxRatio = (128 << 10) / 4

// MaxDecompressedSize returns the frame content size when the frame header
// records one, and the block bound otherwise.
func (c ZstdCompressor) MaxDecompressedSize(data []byte) int {
	var h zstd.Header
	if err := h.Decode(data); err == nil && h.HasFCS && h.FrameContentSize <= uint64(len(data))*zstdMaxRatio {
		return int(h.FrameContentSize) //nolint: gosec
	}

	return len(data) * zstdMaxRatio
}
