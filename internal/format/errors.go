package format

import "errors"

var (
	// ErrInvalidSize indicates a key or value size that is not strictly positive.
	ErrInvalidSize = errors.New("format: key and value sizes must be positive")
	// ErrLayoutOverflow indicates the node block would not be addressable.
	ErrLayoutOverflow = errors.New("format: node size overflows")
	// ErrTruncated indicates a block shorter than the layout's node size.
	ErrTruncated = errors.New("format: truncated node block")
)
