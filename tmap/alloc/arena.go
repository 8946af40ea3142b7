package alloc

import (
	"errors"
	"fmt"
	"math"

	"github.com/joshuapare/tmapkit/internal/buf"
	"github.com/joshuapare/tmapkit/internal/format"
)

const (
	// DefaultChunkSize is the default arena chunk size (1 MiB).
	DefaultChunkSize = 1 << 20

	// maxRefPositions is the number of Quantum-sized positions a Ref can address.
	maxRefPositions int64 = math.MaxUint32 - 1
)

// ArenaOptions configures an ArenaAllocator.
type ArenaOptions struct {
	// ChunkSize is the size of each chunk in bytes, rounded up to the page size.
	// A single block can never be larger than one chunk.
	// Default: DefaultChunkSize
	ChunkSize int

	// MaxChunks bounds the number of chunks. Once reached, Alloc reports
	// ErrNoSpace unless a freed block of the right size is available.
	// Default: 0 (bounded only by the Ref address space)
	MaxChunks int
}

// DefaultArenaOptions returns the default arena configuration.
func DefaultArenaOptions() ArenaOptions {
	return ArenaOptions{
		ChunkSize: DefaultChunkSize,
		MaxChunks: 0,
	}
}

// ArenaAllocator carves blocks out of large chunks with a bump pointer.
// Every block starts on a format.Quantum boundary. Freed blocks are kept on
// exact-size free lists, which suits tree-maps where every node has the
// same size.
//
// A Ref encodes the block position across all chunks in Quantum units:
//
//	ref = (chunkIndex*chunkSize + offset) / Quantum + 1
type ArenaAllocator struct {
	chunkSize int
	maxChunks int

	chunks [][]byte

	// used is the bump offset within the last chunk.
	used int

	// free holds released blocks keyed by their aligned span.
	free map[int][]Ref

	// live maps each allocated block to its requested size.
	live map[Ref]int

	stats  Stats
	closed bool
}

// NewArena creates an ArenaAllocator. No chunk is mapped until the first Alloc.
func NewArena(opts ArenaOptions) *ArenaAllocator {
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	page := pageSize()
	chunkSize = (chunkSize + page - 1) / page * page

	limit := int(maxRefPositions / int64(format.QuantaFor(chunkSize)))
	maxChunks := opts.MaxChunks
	if maxChunks <= 0 || maxChunks > limit {
		maxChunks = limit
	}

	return &ArenaAllocator{
		chunkSize: chunkSize,
		maxChunks: maxChunks,
		free:      make(map[int][]Ref),
		live:      make(map[Ref]int),
	}
}

// Alloc allocates a zeroed, Quantum-aligned block of size bytes.
func (a *ArenaAllocator) Alloc(size int) (Ref, []byte, error) {
	ref, block, err := a.alloc(size)
	if err != nil {
		a.stats.Failures++
		return NilRef, nil, err
	}
	a.live[ref] = size
	a.stats.record(size)
	return ref, block, nil
}

func (a *ArenaAllocator) alloc(size int) (Ref, []byte, error) {
	if a.closed {
		return NilRef, nil, ErrClosed
	}
	if size <= 0 {
		return NilRef, nil, ErrNeedSmall
	}
	span := format.AlignQuantum(size)
	if span > a.chunkSize || span < size {
		return NilRef, nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, size, a.chunkSize)
	}

	// Reuse a freed block of the same span first
	if list := a.free[span]; len(list) > 0 {
		ref := list[len(list)-1]
		a.free[span] = list[:len(list)-1]
		block := a.locate(ref, size)
		buf.Zero(block)
		return ref, block, nil
	}

	if len(a.chunks) == 0 || a.used+span > a.chunkSize {
		if err := a.grow(); err != nil {
			return NilRef, nil, err
		}
	}

	pos := (len(a.chunks)-1)*a.chunkSize + a.used
	a.used += span

	ref := Ref(pos/format.Quantum + 1)
	return ref, a.locate(ref, size), nil
}

// grow maps a new chunk. The unused tail of the previous chunk is abandoned.
func (a *ArenaAllocator) grow() error {
	if len(a.chunks) >= a.maxChunks {
		return fmt.Errorf("%w: arena limit of %d chunks reached", ErrNoSpace, a.maxChunks)
	}
	mem, err := mapChunk(a.chunkSize)
	if err != nil {
		return fmt.Errorf("%w: map chunk: %w", ErrNoSpace, err)
	}
	a.chunks = append(a.chunks, mem)
	a.used = 0
	return nil
}

// locate returns the bytes for ref. ref must be valid.
func (a *ArenaAllocator) locate(ref Ref, size int) []byte {
	pos := int(ref-1) * format.Quantum
	chunk := a.chunks[pos/a.chunkSize]
	block, _ := buf.Slice(chunk, pos%a.chunkSize, size)
	return block
}

// Resolve returns the bytes of a live block.
func (a *ArenaAllocator) Resolve(ref Ref, size int) ([]byte, error) {
	if err := a.check(ref, size, ErrBadRef); err != nil {
		return nil, err
	}
	return a.locate(ref, size), nil
}

// Free puts the block on its size class free list.
func (a *ArenaAllocator) Free(ref Ref, size int) error {
	if err := a.check(ref, size, ErrDoubleFree); err != nil {
		return err
	}
	delete(a.live, ref)
	span := format.AlignQuantum(size)
	a.free[span] = append(a.free[span], ref)
	a.stats.record(-size)
	return nil
}

// check validates ref and size. notLive is reported for refs that are in
// range but not currently allocated.
func (a *ArenaAllocator) check(ref Ref, size int, notLive error) error {
	if a.closed {
		return ErrClosed
	}
	if ref == NilRef || int(ref-1)*format.Quantum >= len(a.chunks)*a.chunkSize {
		return fmt.Errorf("%w: %d", ErrBadRef, ref)
	}
	got, ok := a.live[ref]
	if !ok {
		return fmt.Errorf("%w: %d", notLive, ref)
	}
	if got != size {
		return fmt.Errorf("%w: ref %d has %d bytes, got %d", ErrSizeMismatch, ref, got, size)
	}
	return nil
}

// Chunks returns the number of mapped chunks.
func (a *ArenaAllocator) Chunks() int {
	return len(a.chunks)
}

// ChunkSize returns the effective (page rounded) chunk size.
func (a *ArenaAllocator) ChunkSize() int {
	return a.chunkSize
}

// Stats returns a snapshot of allocation counters.
func (a *ArenaAllocator) Stats() Stats {
	return a.stats
}

// Close unmaps every chunk. Blocks obtained from the arena must not be used
// afterwards. Close is idempotent.
func (a *ArenaAllocator) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var errs []error
	for _, mem := range a.chunks {
		if err := unmapChunk(mem); err != nil {
			errs = append(errs, err)
		}
	}
	a.chunks = nil
	a.free = nil
	a.live = nil
	return errors.Join(errs...)
}

// Compile-time interface check
var (
	_ Allocator     = (*ArenaAllocator)(nil)
	_ StatsReporter = (*ArenaAllocator)(nil)
)
