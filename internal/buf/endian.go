// Package buf contains little-endian codecs and bounds helpers shared by the
// node layout, the allocators and the stock comparators.
//
// Readers return 0 when b is too short. Writers panic like the
// encoding/binary functions they wrap; callers size their buffers from a
// format.Layout, so a short buffer there is a programming error.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// I16LE reads a little-endian int16 from b. Returns 0 when b is too short.
func I16LE(b []byte) int16 {
	return int16(U16LE(b))
}

// I32LE reads a little-endian int32 from b. Returns 0 when b is too short.
func I32LE(b []byte) int32 {
	return int32(U32LE(b))
}

// I64LE reads a little-endian int64 from b. Returns 0 when b is too short.
func I64LE(b []byte) int64 {
	return int64(U64LE(b))
}

// PutU16LE writes v to b[0:2].
func PutU16LE(b []byte, v uint16) {
	binary.LittleEndian.PutUint16(b, v)
}

// PutU32LE writes v to b[0:4].
func PutU32LE(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// PutU64LE writes v to b[0:8].
func PutU64LE(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

// PutI16LE writes v to b[0:2].
func PutI16LE(b []byte, v int16) {
	PutU16LE(b, uint16(v))
}

// PutI32LE writes v to b[0:4].
func PutI32LE(b []byte, v int32) {
	PutU32LE(b, uint32(v))
}

// PutI64LE writes v to b[0:8].
func PutI64LE(b []byte, v int64) {
	PutU64LE(b, uint64(v))
}
