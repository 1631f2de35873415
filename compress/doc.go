// Package compress provides the payload codecs of the evseq dataset archive.
//
// The archive encoder writes the whole dataset into one payload and passes
// it through a single codec recorded in the header:
//   - None: No compression (fastest, largest)
//   - Zstd: Best compression ratio, the default
//   - S2: Balanced compression and speed
//   - LZ4: Fastest decompression
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionS2, "payload")
//	if err != nil {
//		return err
//	}
//	compressed, err := codec.Compress(payload)
//	...
//	original, err := compress.DecompressSize(codec, compressed, len(payload))
//
// # Build Tags
//
// Zstd uses github.com/klauspost/compress/zstd by default. Building with
// -tags gozstd on a cgo-enabled toolchain uses github.com/valyala/gozstd
// instead; both produce standard zstd frames, so archives stay portable.
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool and are safe for
// concurrent use.
package compress
