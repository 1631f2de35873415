package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/evseq/endian"
	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/internal/pool"
)

// ColumnWriter appends payload fields to a byte buffer.
type ColumnWriter struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewColumnWriter creates a writer appending to buf in engine byte order.
func NewColumnWriter(buf *pool.ByteBuffer, engine endian.EndianEngine) *ColumnWriter {
	return &ColumnWriter{buf: buf, engine: engine}
}

// Byte appends one byte.
func (w *ColumnWriter) Byte(b byte) {
	w.buf.B = append(w.buf.B, b)
}

// Uint32 appends a fixed-width uint32.
func (w *ColumnWriter) Uint32(v uint32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

// Uint64 appends a fixed-width uint64.
func (w *ColumnWriter) Uint64(v uint64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, v)
}

// Float64 appends the IEEE 754 bits of v.
func (w *ColumnWriter) Float64(v float64) {
	w.Uint64(math.Float64bits(v))
}

// Float64s appends every value of vs, without a length prefix.
func (w *ColumnWriter) Float64s(vs []float64) {
	w.buf.Grow(8 * len(vs))
	for _, v := range vs {
		w.Float64(v)
	}
}

// Uvarint appends v as an unsigned varint.
func (w *ColumnWriter) Uvarint(v uint64) {
	w.buf.B = binary.AppendUvarint(w.buf.B, v)
}

// Varint appends v as a zig-zag signed varint.
func (w *ColumnWriter) Varint(v int64) {
	w.buf.B = binary.AppendVarint(w.buf.B, v)
}

// String appends a uvarint length followed by the bytes of s.
func (w *ColumnWriter) String(s string) {
	w.Uvarint(uint64(len(s)))
	w.buf.B = append(w.buf.B, s...)
}

// Len returns the number of bytes written to the underlying buffer.
func (w *ColumnWriter) Len() int {
	return w.buf.Len()
}

// ColumnReader decodes payload fields written by ColumnWriter.
//
// After the first failure every method returns a zero value and Err reports
// the failure.
type ColumnReader struct {
	data   []byte
	off    int
	engine endian.EndianEngine
	err    error
}

// NewColumnReader creates a reader over data in engine byte order.
func NewColumnReader(data []byte, engine endian.EndianEngine) *ColumnReader {
	return &ColumnReader{data: data, engine: engine}
}

// Err returns the first decoding failure.
func (r *ColumnReader) Err() error {
	return r.err
}

// Offset returns the number of bytes consumed.
func (r *ColumnReader) Offset() int {
	return r.off
}

// Remaining returns the number of bytes left.
func (r *ColumnReader) Remaining() int {
	return len(r.data) - r.off
}

func (r *ColumnReader) fail(what string, need int) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s needs %d bytes at offset %d, have %d", errs.ErrTruncatedPayload, what, need, r.off, len(r.data)-r.off)
	}
}

func (r *ColumnReader) take(what string, n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.Remaining() < n {
		r.fail(what, n)
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n

	return b
}

// Byte reads one byte.
func (r *ColumnReader) Byte() byte {
	b := r.take("byte", 1)
	if b == nil {
		return 0
	}

	return b[0]
}

// Uint32 reads a fixed-width uint32.
func (r *ColumnReader) Uint32() uint32 {
	b := r.take("uint32", 4)
	if b == nil {
		return 0
	}

	return r.engine.Uint32(b)
}

// Uint64 reads a fixed-width uint64.
func (r *ColumnReader) Uint64() uint64 {
	b := r.take("uint64", 8)
	if b == nil {
		return 0
	}

	return r.engine.Uint64(b)
}

// Float64 reads an IEEE 754 float64.
func (r *ColumnReader) Float64() float64 {
	return math.Float64frombits(r.Uint64())
}

// Float64s reads n float64 values into a new slice.
func (r *ColumnReader) Float64s(n int) []float64 {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > r.Remaining()/8 {
		r.fail("float64 column", 8*n)
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float64()
	}

	return out
}

// Uvarint reads an unsigned varint.
func (r *ColumnReader) Uvarint() uint64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Uvarint(r.data[r.off:])
	if n <= 0 {
		r.fail("uvarint", 1)
		return 0
	}
	r.off += n

	return v
}

// Varint reads a zig-zag signed varint.
func (r *ColumnReader) Varint() int64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Varint(r.data[r.off:])
	if n <= 0 {
		r.fail("varint", 1)
		return 0
	}
	r.off += n

	return v
}

// Len reads a uvarint element count and checks that the remaining data can
// hold that many elements of at least minSize bytes each.
func (r *ColumnReader) Len(minSize int) int {
	v := r.Uvarint()
	if r.err != nil {
		return 0
	}
	if v > uint64(math.MaxInt32) || (minSize > 0 && v > uint64(r.Remaining()/minSize)) {
		r.fail("column", int(min(v, math.MaxInt32))*max(minSize, 1))
		return 0
	}

	return int(v)
}

// String reads a uvarint-length-prefixed string.
func (r *ColumnReader) String() string {
	n := r.Len(1)
	b := r.take("string", n)
	if b == nil {
		return ""
	}

	return string(b)
}
