package buf

import (
	"math"
	"testing"
)

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}
	if got := U64LE(data); got != 0xefcdab8967452301 {
		t.Fatalf("U64LE = 0x%x, want 0xefcdab8967452301", got)
	}
	if got := I32LE(data); got != 0x67452301 {
		t.Fatalf("I32LE = 0x%x, want 0x67452301", got)
	}

	short := []byte{0xAA}
	if U16LE(short) != 0 {
		t.Fatalf("U16LE short should be 0")
	}
	if U32LE(short) != 0 || U64LE(short) != 0 || I32LE(short) != 0 || I64LE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}

func TestSignedRoundTrip(t *testing.T) {
	b := make([]byte, 8)

	PutI16LE(b, -2)
	if got := I16LE(b); got != -2 {
		t.Fatalf("I16LE = %d, want -2", got)
	}
	PutI32LE(b, math.MinInt32)
	if got := I32LE(b); got != math.MinInt32 {
		t.Fatalf("I32LE = %d, want %d", got, math.MinInt32)
	}
	PutI64LE(b, -101)
	if got := I64LE(b); got != -101 {
		t.Fatalf("I64LE = %d, want -101", got)
	}
	if b[0] != 0x9b || b[7] != 0xff {
		t.Fatalf("unexpected encoding % x", b)
	}
}
