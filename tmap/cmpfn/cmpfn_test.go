package cmpfn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestIntegerComparators(t *testing.T) {
	tests := []struct {
		name     string
		fn       Func
		size     int
		lhs, rhs []byte
		want     int
	}{
		{"int16 less", Int16, 2, EncodeInt16(-2), EncodeInt16(1), -1},
		{"int16 equal", Int16, 2, EncodeInt16(300), EncodeInt16(300), 0},
		{"int32 negative order", Int32, 4, EncodeInt32(-101), EncodeInt32(-102), 1},
		{"int32 extremes", Int32, 4, EncodeInt32(math.MinInt32), EncodeInt32(math.MaxInt32), -1},
		{"int64 greater", Int64, 8, EncodeInt64(202), EncodeInt64(201), 1},
		{"uint16 high bit", Uint16, 2, EncodeUint16(0x8000), EncodeUint16(1), 1},
		{"uint32 equal", Uint32, 4, EncodeUint32(7), EncodeUint32(7), 0},
		{"uint64 high bit", Uint64, 8, EncodeUint64(math.MaxUint64), EncodeUint64(0), 1},
		{"int alias", Int, 8, EncodeInt64(-1), EncodeInt64(0), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sign(tt.fn(tt.lhs, tt.rhs, tt.size)))
			assert.Equal(t, -tt.want, sign(tt.fn(tt.rhs, tt.lhs, tt.size)), "antisymmetry")
		})
	}
}

func TestIntegerComparator_SizeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		Int32(EncodeInt64(1), EncodeInt64(2), 8)
	})
}

func TestForSize(t *testing.T) {
	for _, size := range []int{2, 4, 8} {
		for _, signed := range []bool{true, false} {
			fn, err := ForSize(signed, size)
			require.NoError(t, err)
			lhs := make([]byte, size)
			rhs := make([]byte, size)
			rhs[size-1] = 0x80 // top bit: negative when signed
			got := sign(fn(lhs, rhs, size))
			if signed {
				assert.Equal(t, 1, got, "signed size %d", size)
			} else {
				assert.Equal(t, -1, got, "unsigned size %d", size)
			}
		}
	}

	_, err := ForSize(true, 3)
	require.ErrorIs(t, err, ErrUnsupportedSize)
}

func TestBytesAndReverse(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{1, 2, 4}
	assert.Equal(t, -1, sign(Bytes(a, b, 3)))
	assert.Equal(t, 0, sign(Bytes(a, b, 2)), "only keySize bytes take part")
	assert.Equal(t, 1, sign(Reverse(Bytes)(a, b, 3)))
}

func TestCString(t *testing.T) {
	key := func(s string) []byte {
		k, err := CStringKey(s, 8)
		require.NoError(t, err)
		return k
	}

	assert.Equal(t, -1, sign(CString(key("abc"), key("abd"), 8)))
	assert.Equal(t, -1, sign(CString(key("ab"), key("abc"), 8)), "prefix orders first")
	assert.Equal(t, 0, sign(CString(key("abc"), key("abc"), 8)))
	assert.Equal(t, 1, sign(CString(key("b"), key("abcdefgh"), 8)))

	// bytes after the terminator are ignored
	dirty := key("abc")
	dirty[5] = 'z'
	assert.Equal(t, 0, sign(CString(dirty, key("abc"), 8)))

	_, err := CStringKey("too long for key", 8)
	require.ErrorIs(t, err, ErrKeyTooLong)
	assert.Equal(t, "abc", CStringValue(key("abc")))
	assert.Equal(t, "abcdefgh", CStringValue(key("abcdefgh")))
}

func TestCStringIgnoreCase(t *testing.T) {
	key := func(s string) []byte {
		k, err := CStringKey(s, 16)
		require.NoError(t, err)
		return k
	}

	assert.Equal(t, 0, sign(CStringIgnoreCase(key("Hello"), key("hELLO"), 16)))
	assert.Equal(t, -1, sign(CStringIgnoreCase(key("apple"), key("Banana"), 16)))
	assert.Equal(t, 1, sign(CString(key("apple"), key("Banana"), 16)), "case-sensitive order differs")
}

// TestCStringIgnoreCase_KeysFoldedIndependently tests that folding the left
// key never leaks into the right one, whatever their lengths.
func TestCStringIgnoreCase_KeysFoldedIndependently(t *testing.T) {
	key := func(s string) []byte {
		k, err := CStringKey(s, 16)
		require.NoError(t, err)
		return k
	}

	tests := []struct {
		lhs, rhs string
		want     int
	}{
		{"ABCDEFGHIJKLMNO", "a", 1},
		{"a", "ABCDEFGHIJKLMNO", -1},
		{"", "A", -1},
		{"A", "", 1},
		{"", "", 0},
		{"QUICK", "quick", 0},
		{"Zebra", "zebrA", 0},
		{"zeb", "ZEBRA", -1},
	}
	for range 3 {
		for _, tt := range tests {
			assert.Equal(t, tt.want, sign(CStringIgnoreCase(key(tt.lhs), key(tt.rhs), 16)), "%q vs %q", tt.lhs, tt.rhs)
		}
	}
}

func TestCollated(t *testing.T) {
	key := func(s string) []byte {
		k, err := CStringKey(s, 16)
		require.NoError(t, err)
		return k
	}

	de := Collated(language.German)
	assert.Equal(t, -1, sign(de(key("Äpfel"), key("Birne"), 16)), "umlaut sorts with its base letter")
	assert.Equal(t, 1, sign(CString(key("Äpfel"), key("Birne"), 16)), "byte order puts Ä after B")

	sv := Collated(language.Swedish)
	assert.Equal(t, 1, sign(sv(key("Äpple"), key("Zebra"), 16)), "Swedish sorts Ä after Z")

	folded := Collated(language.English, collate.IgnoreCase)
	assert.Equal(t, 0, sign(folded(key("Hello"), key("hello"), 16)))
}
