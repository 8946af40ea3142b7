package printer

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/joshuapare/tmapkit/internal/buf"
)

// BytesFormat selects how an opaque key or value is rendered.
type BytesFormat string

const (
	// BytesHex renders the raw bytes as lowercase hex.
	BytesHex BytesFormat = "hex"

	// BytesInt renders a 1, 2, 4 or 8 byte little-endian signed integer.
	BytesInt BytesFormat = "int"

	// BytesUint renders a 1, 2, 4 or 8 byte little-endian unsigned integer.
	BytesUint BytesFormat = "uint"

	// BytesCString renders the bytes up to the first NUL as a quoted string.
	BytesCString BytesFormat = "cstring"
)

// ParseBytesFormat validates a format name.
func ParseBytesFormat(s string) (BytesFormat, error) {
	switch f := BytesFormat(s); f {
	case BytesHex, BytesInt, BytesUint, BytesCString:
		return f, nil
	case "":
		return BytesHex, nil
	}
	return "", fmt.Errorf("printer: unknown bytes format %q", s)
}

// decode converts b to the value placed in JSON output. Integer formats on
// widths other than 1, 2, 4 or 8 fall back to hex, as do C strings that are
// not valid UTF-8.
func (f BytesFormat) decode(b []byte) any {
	switch f {
	case BytesInt:
		switch len(b) {
		case 1:
			return int64(int8(b[0]))
		case 2:
			return int64(buf.I16LE(b))
		case 4:
			return int64(buf.I32LE(b))
		case 8:
			return buf.I64LE(b)
		}
	case BytesUint:
		switch len(b) {
		case 1:
			return uint64(b[0])
		case 2:
			return uint64(buf.U16LE(b))
		case 4:
			return uint64(buf.U32LE(b))
		case 8:
			return buf.U64LE(b)
		}
	case BytesCString:
		if s := cstring(b); utf8.Valid(s) {
			return string(s)
		}
	}
	return hex.EncodeToString(b)
}

// cstring returns b up to its first NUL.
func cstring(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

// render converts b to its text form.
func (f BytesFormat) render(b []byte) string {
	if f == BytesCString {
		return strconv.Quote(string(cstring(b)))
	}
	switch v := f.decode(b).(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case string:
		return v
	}
	return hex.EncodeToString(b)
}
