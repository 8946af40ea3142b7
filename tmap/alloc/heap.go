package alloc

import (
	"fmt"
	"math"
)

const (
	// initialSlotCapacity is the pre-allocated capacity of the slot table.
	initialSlotCapacity = 64
)

// HeapAllocator hands out ordinary Go byte slices. Each block occupies one
// slot in a table; the slot index is the block's Ref. Slot 0 is reserved so
// that NilRef is never handed out.
type HeapAllocator struct {
	slots [][]byte
	free  []Ref
	stats Stats
}

// NewHeap creates an empty HeapAllocator.
func NewHeap() *HeapAllocator {
	slots := make([][]byte, 1, initialSlotCapacity)
	return &HeapAllocator{slots: slots}
}

// Alloc allocates a zeroed block of size bytes.
func (ha *HeapAllocator) Alloc(size int) (Ref, []byte, error) {
	if size <= 0 {
		ha.stats.Failures++
		return NilRef, nil, ErrNeedSmall
	}

	var ref Ref
	if n := len(ha.free); n > 0 {
		ref = ha.free[n-1]
		ha.free = ha.free[:n-1]
	} else {
		if uint64(len(ha.slots)) > math.MaxUint32 {
			ha.stats.Failures++
			return NilRef, nil, fmt.Errorf("%w: slot table full", ErrNoSpace)
		}
		ref = Ref(len(ha.slots))
		ha.slots = append(ha.slots, nil)
	}

	block := make([]byte, size)
	ha.slots[ref] = block
	ha.stats.record(size)
	return ref, block, nil
}

// Resolve returns the bytes of a live block.
func (ha *HeapAllocator) Resolve(ref Ref, size int) ([]byte, error) {
	block, err := ha.lookup(ref, size, ErrBadRef)
	if err != nil {
		return nil, err
	}
	return block, nil
}

// Free releases a block and recycles its slot.
func (ha *HeapAllocator) Free(ref Ref, size int) error {
	if _, err := ha.lookup(ref, size, ErrDoubleFree); err != nil {
		return err
	}
	ha.slots[ref] = nil
	ha.free = append(ha.free, ref)
	ha.stats.record(-size)
	return nil
}

// Stats returns a snapshot of allocation counters.
func (ha *HeapAllocator) Stats() Stats {
	return ha.stats
}

// lookup validates ref and size. freedErr is reported for released slots.
func (ha *HeapAllocator) lookup(ref Ref, size int, freedErr error) ([]byte, error) {
	if ref == NilRef || int(ref) >= len(ha.slots) {
		return nil, fmt.Errorf("%w: %d", ErrBadRef, ref)
	}
	block := ha.slots[ref]
	if block == nil {
		return nil, fmt.Errorf("%w: %d", freedErr, ref)
	}
	if len(block) != size {
		return nil, fmt.Errorf("%w: ref %d has %d bytes, got %d", ErrSizeMismatch, ref, len(block), size)
	}
	return block, nil
}

// Compile-time interface check
var (
	_ Allocator     = (*HeapAllocator)(nil)
	_ StatsReporter = (*HeapAllocator)(nil)
)
