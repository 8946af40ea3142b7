package alloc

import "fmt"

// LimitedAllocator wraps another Allocator with a live-byte budget. It also
// supports deterministic failure injection, which makes it the allocator of
// choice for exercising exhaustion paths.
type LimitedAllocator struct {
	inner    Allocator
	maxBytes int

	// failAt is the 1-based Alloc attempt that will fail (0 = never).
	failAt   int
	attempts int

	stats Stats
}

// NewLimited wraps inner with a budget of maxBytes live bytes.
// A maxBytes of 0 or less means no budget.
func NewLimited(inner Allocator, maxBytes int) *LimitedAllocator {
	return &LimitedAllocator{inner: inner, maxBytes: maxBytes}
}

// FailAfter makes the n-th subsequent Alloc call fail with ErrNoSpace.
// n <= 0 disables failure injection.
func (la *LimitedAllocator) FailAfter(n int) {
	la.attempts = 0
	la.failAt = max(n, 0)
}

// Alloc allocates from the inner allocator unless the budget or an injected
// failure forbids it.
func (la *LimitedAllocator) Alloc(size int) (Ref, []byte, error) {
	la.attempts++
	if la.failAt > 0 && la.attempts == la.failAt {
		la.stats.Failures++
		return NilRef, nil, fmt.Errorf("%w: injected failure on attempt %d", ErrNoSpace, la.attempts)
	}
	if la.maxBytes > 0 && la.stats.LiveBytes+size > la.maxBytes {
		la.stats.Failures++
		return NilRef, nil, fmt.Errorf("%w: budget of %d bytes exceeded", ErrNoSpace, la.maxBytes)
	}

	ref, block, err := la.inner.Alloc(size)
	if err != nil {
		la.stats.Failures++
		return NilRef, nil, err
	}
	la.stats.record(size)
	return ref, block, nil
}

// Resolve delegates to the inner allocator.
func (la *LimitedAllocator) Resolve(ref Ref, size int) ([]byte, error) {
	return la.inner.Resolve(ref, size)
}

// Free delegates to the inner allocator and returns the bytes to the budget.
func (la *LimitedAllocator) Free(ref Ref, size int) error {
	if err := la.inner.Free(ref, size); err != nil {
		return err
	}
	la.stats.record(-size)
	return nil
}

// Stats returns counters for calls made through this wrapper.
func (la *LimitedAllocator) Stats() Stats {
	return la.stats
}

// Compile-time interface check
var (
	_ Allocator     = (*LimitedAllocator)(nil)
	_ StatsReporter = (*LimitedAllocator)(nil)
)
