package cmpfn

import "github.com/joshuapare/tmapkit/internal/buf"

// EncodeInt16 returns the 2-byte key for v.
func EncodeInt16(v int16) []byte {
	b := make([]byte, 2)
	buf.PutI16LE(b, v)
	return b
}

// EncodeInt32 returns the 4-byte key for v.
func EncodeInt32(v int32) []byte {
	b := make([]byte, 4)
	buf.PutI32LE(b, v)
	return b
}

// EncodeInt64 returns the 8-byte key for v.
func EncodeInt64(v int64) []byte {
	b := make([]byte, 8)
	buf.PutI64LE(b, v)
	return b
}

// EncodeUint16 returns the 2-byte key for v.
func EncodeUint16(v uint16) []byte {
	b := make([]byte, 2)
	buf.PutU16LE(b, v)
	return b
}

// EncodeUint32 returns the 4-byte key for v.
func EncodeUint32(v uint32) []byte {
	b := make([]byte, 4)
	buf.PutU32LE(b, v)
	return b
}

// EncodeUint64 returns the 8-byte key for v.
func EncodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	buf.PutU64LE(b, v)
	return b
}

// DecodeInt32 reads a key produced by EncodeInt32.
func DecodeInt32(b []byte) int32 { return buf.I32LE(b) }

// DecodeInt64 reads a key produced by EncodeInt64.
func DecodeInt64(b []byte) int64 { return buf.I64LE(b) }

// DecodeUint64 reads a key produced by EncodeUint64.
func DecodeUint64(b []byte) uint64 { return buf.U64LE(b) }
