// Package alloc provides the pluggable block allocators behind a tree-map.
//
// # Overview
//
// A tree-map owns no memory directly. Every node is a fixed-size byte block
// obtained from an Allocator and released back to it with the exact size it
// was allocated with. Blocks are addressed by a Ref (a uint32 handle, 0 is
// never valid) so nodes can link to each other without holding Go pointers,
// which keeps arena memory outside the garbage collector's view.
//
// # Allocator Interface
//
//   - Alloc(size): allocate a zeroed block of exactly size bytes
//   - Resolve(ref, size): obtain the bytes of a live block
//   - Free(ref, size): release a block; size must match the Alloc size
//
// # Implementations
//
// HeapAllocator: blocks are ordinary Go slices held in a slot table.
// Freed slots are recycled. This is the default for tmap.New.
//
// ArenaAllocator: blocks are carved from large chunks. On Linux, macOS and
// FreeBSD the chunks are anonymous mmap regions; elsewhere they come from the
// Go heap. Freed blocks go on exact-size free lists.
//
// LimitedAllocator: wraps another allocator with a byte budget and optional
// failure injection. Exhaustion is reported as ErrNoSpace.
//
// # Usage Example
//
//	a := alloc.NewArena(alloc.DefaultArenaOptions())
//	defer a.Close()
//
//	ref, block, err := a.Alloc(24)
//	if err != nil {
//	    return err
//	}
//	copy(block, payload)
//
//	// Later
//	err = a.Free(ref, 24)
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
