package tmap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuapare/tmapkit/tmap/alloc"
)

// Insert stores val under key. If key is already present its value is
// replaced (after the destructor, if any, sees the old value) and replaced
// is true. Otherwise a new node is linked in and the map grows by one.
//
// key and val must be exactly KeySize and ValSize bytes; anything else is a
// programming error and panics. On allocation failure the returned error
// wraps ErrNoMemory and the map is unchanged.
func (m *Map) Insert(key, val []byte) (replaced bool, err error) {
	_, replaced, err = m.InsertNode(key, val)
	return replaced, err
}

// InsertNode is Insert that also returns the node now holding key.
func (m *Map) InsertNode(key, val []byte) (Node, bool, error) {
	m.checkKey(key)
	m.checkValue(val)

	p := m.search(key)
	if p.ref != alloc.NilRef {
		value := m.layout.Value(p.block)
		m.discard(DiscardReplaced, nil, value)
		copy(value, val)
		return Node{m: m, ref: p.ref, block: p.block}, true, nil
	}

	ref, block, err := m.newNode(key, val)
	if err != nil {
		return Node{}, false, err
	}

	if p.parent == alloc.NilRef {
		if m.root != alloc.NilRef || m.size != 0 {
			panic(fmt.Sprintf("tmap: descent ended without a parent but map has %d entries", m.size))
		}
		m.root = ref
	} else {
		m.attach(p.parent, p.last, ref)
	}
	m.size++

	return Node{m: m, ref: ref, block: block}, false, nil
}

// newNode allocates a node block and fills in key and value.
func (m *Map) newNode(key, val []byte) (alloc.Ref, []byte, error) {
	size := m.layout.NodeSize

	ref, block, err := m.alloc.Alloc(size)
	if err != nil {
		m.log.Debug("tmap: node allocation failed",
			slog.Int("size", size), slog.Int("entries", m.size), slog.Any("err", err))
		return alloc.NilRef, nil, fmt.Errorf("%w: %w", ErrNoMemory, err)
	}
	if err := m.layout.Check(block); err != nil {
		if ferr := m.alloc.Free(ref, size); ferr != nil {
			m.log.Debug("tmap: releasing short block failed",
				slog.Uint64("ref", uint64(ref)), slog.Any("err", ferr))
			err = errors.Join(err, ferr)
		}
		return alloc.NilRef, nil, fmt.Errorf("%w: %w", ErrNoMemory, err)
	}

	m.layout.SetLeft(block, alloc.NilRef)
	m.layout.SetRight(block, alloc.NilRef)
	copy(m.layout.Key(block), key)
	copy(m.layout.Value(block), val)
	return ref, block, nil
}

// attach links child under parent on the side given by the comparison of
// the child's key against the parent's. The slot must be empty: search
// stopped at parent precisely because that child link was absent.
func (m *Map) attach(parent alloc.Ref, last int, child alloc.Ref) {
	// Re-resolve: Alloc may have relocated blocks.
	block := m.node(parent)

	switch {
	case last < 0:
		if m.layout.Left(block) != alloc.NilRef {
			panic(fmt.Sprintf("tmap: left slot of node %d already occupied", parent))
		}
		m.layout.SetLeft(block, child)
	case last > 0:
		if m.layout.Right(block) != alloc.NilRef {
			panic(fmt.Sprintf("tmap: right slot of node %d already occupied", parent))
		}
		m.layout.SetRight(block, child)
	default:
		panic(fmt.Sprintf("tmap: attaching a key equal to node %d", parent))
	}
}
