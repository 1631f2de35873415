package compress

import (
	"github.com/klauspost/compress/s2"

	"github.com/arloliu/evseq/format"
)

// S2Compressor provides S2 compression, balancing ratio and speed.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Type returns format.CompressionS2.
func (c S2Compressor) Type() format.CompressionType {
	return format.CompressionS2
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSize decompresses into a buffer of the known size.
func (c S2Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(make([]byte, size), data)
}

// MaxDecompressedSize returns the length recorded in the S2 block header,
// 0 when the header is corrupt.
func (c S2Compressor) MaxDecompressedSize(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n, err := s2.DecodedLen(data)
	if err != nil {
		return 0
	}

	return n
}
