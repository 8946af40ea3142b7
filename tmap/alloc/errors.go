package alloc

import "errors"

var (
	// ErrNoSpace indicates the allocator could not satisfy a request.
	ErrNoSpace = errors.New("alloc: out of space")

	// ErrBadRef indicates an invalid, out-of-range or already released reference.
	ErrBadRef = errors.New("alloc: bad block reference")

	// ErrSizeMismatch indicates a Resolve or Free size that differs from the Alloc size.
	ErrSizeMismatch = errors.New("alloc: size does not match allocation")

	// ErrDoubleFree indicates an attempt to free a block that is already free.
	ErrDoubleFree = errors.New("alloc: block already freed")

	// ErrNeedSmall indicates a request for fewer than one byte.
	ErrNeedSmall = errors.New("alloc: size must be positive")

	// ErrTooLarge indicates a request larger than a single arena chunk.
	ErrTooLarge = errors.New("alloc: size exceeds chunk size")

	// ErrClosed indicates use of an allocator after Close.
	ErrClosed = errors.New("alloc: allocator closed")
)
