package tmap

import "errors"

var (
	// ErrNoMemory indicates the allocator could not supply a node. The map is
	// left exactly as it was before the call. The allocator's own error is
	// wrapped as well, so errors.Is(err, alloc.ErrNoSpace) also holds for
	// the stock allocators.
	ErrNoMemory = errors.New("tmap: node allocation failed")

	// ErrInvalidSize indicates a key or value size the layout cannot represent.
	ErrInvalidSize = errors.New("tmap: invalid key or value size")

	// ErrNoComparator indicates New was called without a comparator.
	ErrNoComparator = errors.New("tmap: comparator is required")

	// ErrBadDirection indicates an unknown walk direction.
	ErrBadDirection = errors.New("tmap: invalid walk direction")

	// ErrStopWalk is a sentinel error that can be returned from walk callbacks
	// to stop the walk early without triggering an error condition.
	ErrStopWalk = errors.New("stop walk")
)
