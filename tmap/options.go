package tmap

import (
	"io"
	"log/slog"

	"github.com/joshuapare/tmapkit/tmap/alloc"
)

// DiscardReason tells a DestructorFunc why a value is being discarded.
type DiscardReason int

const (
	// DiscardReplaced: Insert is about to overwrite the value of an existing key.
	// The node stays in the map and the key argument is nil.
	DiscardReplaced DiscardReason = iota

	// DiscardErased: the node holding the value is about to be freed.
	DiscardErased
)

func (r DiscardReason) String() string {
	switch r {
	case DiscardReplaced:
		return "replaced"
	case DiscardErased:
		return "erased"
	}
	return "unknown"
}

// DestructorFunc is called once for every value the map discards. key is nil
// for DiscardReplaced. Both slices alias node memory and are only valid for
// the duration of the call.
type DestructorFunc func(reason DiscardReason, key, val []byte)

// Options controls map construction.
type Options struct {
	// Allocator supplies node blocks.
	// Default: a new alloc.HeapAllocator
	Allocator alloc.Allocator

	// Destructor, if set, is told about every discarded value.
	// Default: nil
	Destructor DestructorFunc

	// Logger receives debug events (allocation failures, teardown).
	// Default: discards everything
	Logger *slog.Logger
}

// DefaultOptions returns the default map options.
func DefaultOptions() Options {
	return Options{
		Allocator:  alloc.NewHeap(),
		Destructor: nil,
		Logger:     discardLogger(),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
