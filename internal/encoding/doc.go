// Package encoding provides the column primitives of the archive payload.
//
// ColumnWriter appends fixed-width fields in the archive byte order, plus
// varints and length-prefixed strings, to a pooled buffer. ColumnReader
// decodes them back and records the first failure, so a decoder can read a
// whole record and check Err once.
//
//	w := encoding.NewColumnWriter(buf, engine)
//	w.Float64(seq.TStart)
//	w.Uvarint(uint64(len(seq.Events)))
//
//	r := encoding.NewColumnReader(payload, engine)
//	tStart := r.Float64()
//	n := r.Len(1)
//	if err := r.Err(); err != nil {
//		return err
//	}
package encoding
