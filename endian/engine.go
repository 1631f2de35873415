// Package endian provides the byte-order engines used by the evseq archive.
//
// An EndianEngine is both a binary.ByteOrder and a binary.AppendByteOrder,
// so the archive writer can append fixed-width fields straight into its
// pooled buffers while the reader decodes them in place.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, math.Float64bits(tStart))
//
// Engines are stateless and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// NativeEngine returns the engine matching the host byte order.
func NativeEngine() EndianEngine {
	// 0x0100: the first byte in memory is 0x01 only on a big-endian host.
	var probe uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&probe))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return NativeEngine() == EndianEngine(binary.LittleEndian)
}

// IsLittleEndian reports whether engine writes little-endian data.
func IsLittleEndian(engine EndianEngine) bool {
	return engine == EndianEngine(binary.LittleEndian)
}

// GetLittleEndianEngine returns the little-endian engine, the archive default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
