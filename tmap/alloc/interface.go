package alloc

import "github.com/joshuapare/tmapkit/internal/format"

// Ref is a handle to an allocated block. The zero Ref is never returned by
// Alloc and is used by callers to mean "no block".
type Ref = uint32

// NilRef is the zero Ref.
const NilRef Ref = format.NilRef

// Allocator defines the interface for block allocation and release.
//
// Implementations:
//   - HeapAllocator: Go-heap blocks, the default
//   - ArenaAllocator: chunked arena, mmap-backed where supported
//   - LimitedAllocator: budget and failure-injection wrapper
type Allocator interface {
	// Alloc allocates a zeroed block of exactly size bytes.
	// Returns the block reference, the block bytes, and any error.
	// Exhaustion is reported with an error wrapping ErrNoSpace.
	Alloc(size int) (Ref, []byte, error)

	// Resolve returns the bytes of a live block. size must equal the size
	// the block was allocated with.
	Resolve(ref Ref, size int) ([]byte, error)

	// Free releases a block. size must equal the size the block was
	// allocated with.
	Free(ref Ref, size int) error
}

// Stats is a snapshot of allocator activity.
type Stats struct {
	Allocs     int // successful Alloc calls
	Frees      int // successful Free calls
	Failures   int // Alloc calls that returned an error
	LiveBlocks int
	LiveBytes  int
	PeakBytes  int
}

// StatsReporter is implemented by allocators that keep Stats.
type StatsReporter interface {
	Stats() Stats
}

// record updates s for an allocation (n > 0) or a free (n < 0).
func (s *Stats) record(n int) {
	if n > 0 {
		s.Allocs++
		s.LiveBlocks++
	} else {
		s.Frees++
		s.LiveBlocks--
	}
	s.LiveBytes += n
	if s.LiveBytes > s.PeakBytes {
		s.PeakBytes = s.LiveBytes
	}
}
