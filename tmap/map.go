package tmap

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/tmapkit/internal/format"
	"github.com/joshuapare/tmapkit/tmap/alloc"
	"github.com/joshuapare/tmapkit/tmap/cmpfn"
)

// Version is the library version.
const Version = "0.1.0"

const (
	// initialStackCapacity is the pre-allocated capacity for traversal stacks.
	// Balanced trees of a million entries are ~20 levels deep, so 64 avoids
	// most reallocations.
	initialStackCapacity = 64
)

// Map is an ordered map from fixed-size keys to fixed-size values.
//
// The key size, value size, comparator, destructor and allocator are fixed
// at construction. The Map exclusively owns every node reachable from its
// root; nodes are never shared.
type Map struct {
	layout     format.Layout
	cmp        cmpfn.Func
	destructor DestructorFunc
	alloc      alloc.Allocator
	log        *slog.Logger

	// size is the number of nodes reachable from root.
	size int
	root alloc.Ref
}

// New creates an empty map for keySize-byte keys and valSize-byte values
// ordered by cmp. Zero-valued fields of opts take their defaults.
func New(keySize, valSize int, cmp cmpfn.Func, opts Options) (*Map, error) {
	if cmp == nil {
		return nil, ErrNoComparator
	}
	layout, err := format.NewLayout(keySize, valSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}

	a := opts.Allocator
	if a == nil {
		a = alloc.NewHeap()
	}
	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}

	return &Map{
		layout:     layout,
		cmp:        cmp,
		destructor: opts.Destructor,
		alloc:      a,
		log:        log,
		root:       alloc.NilRef,
	}, nil
}

// Len returns the number of stored entries.
func (m *Map) Len() int { return m.size }

// IsEmpty reports whether the map holds no entries.
func (m *Map) IsEmpty() bool { return m.size == 0 }

// KeySize returns the declared key width.
func (m *Map) KeySize() int { return m.layout.KeySize }

// ValSize returns the declared value width.
func (m *Map) ValSize() int { return m.layout.ValSize }

// Layout returns the node geometry used for every allocation.
func (m *Map) Layout() format.Layout { return m.layout }

// Allocator returns the allocator supplying node blocks.
func (m *Map) Allocator() alloc.Allocator { return m.alloc }

// node resolves a ref the map owns. A failure means the tree or the
// allocator is corrupt, which is not recoverable.
func (m *Map) node(ref alloc.Ref) []byte {
	block, err := m.alloc.Resolve(ref, m.layout.NodeSize)
	if err != nil {
		panic(fmt.Sprintf("tmap: resolve node %d: %v", ref, err))
	}
	return block
}

func (m *Map) checkKey(key []byte) {
	if len(key) != m.layout.KeySize {
		panic(fmt.Sprintf("tmap: key is %d bytes, map expects %d", len(key), m.layout.KeySize))
	}
}

func (m *Map) checkValue(val []byte) {
	if len(val) != m.layout.ValSize {
		panic(fmt.Sprintf("tmap: value is %d bytes, map expects %d", len(val), m.layout.ValSize))
	}
}
