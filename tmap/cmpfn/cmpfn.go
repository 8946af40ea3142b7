// Package cmpfn provides stock key comparators for tree-maps.
//
// A comparator receives two key regions of exactly keySize bytes and returns
// a negative number, zero, or a positive number when lhs orders before,
// equal to, or after rhs. It must impose a strict total order and stay
// consistent for the lifetime of the map.
//
// Integer comparators decode little-endian fixed-width keys, which is the
// encoding produced by the Encode* helpers in this package.
package cmpfn

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/joshuapare/tmapkit/internal/buf"
)

// Func is a three-way comparison over two key regions of keySize bytes.
type Func func(lhs, rhs []byte, keySize int) int

// ErrUnsupportedSize indicates there is no stock integer comparator for a width.
var ErrUnsupportedSize = errors.New("cmpfn: no integer comparator for size")

// integer builds a comparator for a fixed-width integer key.
// keySize must equal width; anything else is a programming error.
func integer[T constraints.Integer](width int, decode func([]byte) T) Func {
	return func(lhs, rhs []byte, keySize int) int {
		if keySize != width {
			panic(fmt.Sprintf("cmpfn: %d-byte integer comparator used with %d-byte keys", width, keySize))
		}
		return cmp.Compare(decode(lhs), decode(rhs))
	}
}

var (
	// Int16 orders little-endian int16 keys.
	Int16 = integer(2, buf.I16LE)
	// Int32 orders little-endian int32 keys.
	Int32 = integer(4, buf.I32LE)
	// Int64 orders little-endian int64 keys.
	Int64 = integer(8, buf.I64LE)
	// Uint16 orders little-endian uint16 keys.
	Uint16 = integer(2, buf.U16LE)
	// Uint32 orders little-endian uint32 keys.
	Uint32 = integer(4, buf.U32LE)
	// Uint64 orders little-endian uint64 keys.
	Uint64 = integer(8, buf.U64LE)

	// Int orders Go int keys, stored as int64.
	Int = Int64
	// Uint orders Go uint keys, stored as uint64.
	Uint = Uint64
)

// ForSize returns the stock integer comparator for a key of size bytes.
func ForSize(signed bool, size int) (Func, error) {
	switch {
	case size == 2 && signed:
		return Int16, nil
	case size == 4 && signed:
		return Int32, nil
	case size == 8 && signed:
		return Int64, nil
	case size == 2:
		return Uint16, nil
	case size == 4:
		return Uint32, nil
	case size == 8:
		return Uint64, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
}

// Bytes orders keys lexicographically over all keySize bytes.
func Bytes(lhs, rhs []byte, keySize int) int {
	return bytes.Compare(lhs[:keySize], rhs[:keySize])
}

// Reverse inverts the order of fn.
func Reverse(fn Func) Func {
	return func(lhs, rhs []byte, keySize int) int {
		return fn(rhs, lhs, keySize)
	}
}
