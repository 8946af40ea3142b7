package cmpfn

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrKeyTooLong indicates a string that does not fit the declared key size.
var ErrKeyTooLong = errors.New("cmpfn: string longer than key size")

// trimNUL returns the bytes of a NUL-terminated key. Keys that fill the whole
// region without a terminator are used as-is.
func trimNUL(key []byte, keySize int) []byte {
	key = key[:keySize]
	if i := bytes.IndexByte(key, 0); i >= 0 {
		return key[:i]
	}
	return key
}

// CString orders NUL-terminated string keys byte by byte.
func CString(lhs, rhs []byte, keySize int) int {
	return bytes.Compare(trimNUL(lhs, keySize), trimNUL(rhs, keySize))
}

// CStringIgnoreCase orders NUL-terminated UTF-8 keys after Unicode case
// folding, so "Hello" and "hELLO" compare equal.
func CStringIgnoreCase(lhs, rhs []byte, keySize int) int {
	c := cases.Fold()
	l := c.Bytes(trimNUL(lhs, keySize))
	c.Reset()
	r := c.Bytes(trimNUL(rhs, keySize))
	return bytes.Compare(l, r)
}

// Collated returns a comparator ordering NUL-terminated UTF-8 keys by the
// collation rules of tag. Collation can treat distinct byte strings as equal
// (for example with collate.IgnoreCase), in which case they share one entry.
//
// The returned comparator holds a collate.Collator and is not safe for
// concurrent use.
func Collated(tag language.Tag, opts ...collate.Option) Func {
	c := collate.New(tag, opts...)
	return func(lhs, rhs []byte, keySize int) int {
		return c.Compare(trimNUL(lhs, keySize), trimNUL(rhs, keySize))
	}
}

// CStringKey encodes s as a NUL-padded key of exactly size bytes.
func CStringKey(s string, size int) ([]byte, error) {
	if len(s) > size {
		return nil, fmt.Errorf("%w: %d > %d", ErrKeyTooLong, len(s), size)
	}
	key := make([]byte, size)
	copy(key, s)
	return key, nil
}

// CStringValue returns the string held in a NUL-padded key or value region.
func CStringValue(b []byte) string {
	return string(trimNUL(b, len(b)))
}
