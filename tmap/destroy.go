package tmap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuapare/tmapkit/tmap/alloc"
)

// Clear removes every entry. Nodes are torn down post-order (left subtree,
// right subtree, then the node itself); for each one the destructor, if any,
// sees the key and value with DiscardErased before the block goes back to
// the allocator.
//
// The map is always left empty and reusable. Errors reported by the
// allocator while freeing are joined and returned after the teardown.
func (m *Map) Clear() error {
	n := m.size
	var errs []error

	stack := make([]alloc.Ref, 0, initialStackCapacity)
	if m.root != alloc.NilRef {
		stack = append(stack, m.root)
	}

	for len(stack) > 0 {
		ref := stack[len(stack)-1]

		block, err := m.alloc.Resolve(ref, m.layout.NodeSize)
		if err != nil {
			// The subtree below an unresolvable node is unreachable; drop it.
			errs = append(errs, fmt.Errorf("resolve node %d: %w", ref, err))
			stack = stack[:len(stack)-1]
			continue
		}

		// Detach children before descending so each node is revisited only
		// once both of its subtrees are gone.
		if left := m.layout.Left(block); left != alloc.NilRef {
			m.layout.SetLeft(block, alloc.NilRef)
			stack = append(stack, left)
			continue
		}
		if right := m.layout.Right(block); right != alloc.NilRef {
			m.layout.SetRight(block, alloc.NilRef)
			stack = append(stack, right)
			continue
		}

		stack = stack[:len(stack)-1]
		m.discard(DiscardErased, m.layout.Key(block), m.layout.Value(block))
		if err := m.alloc.Free(ref, m.layout.NodeSize); err != nil {
			errs = append(errs, fmt.Errorf("free node %d: %w", ref, err))
		}
	}

	m.root = alloc.NilRef
	m.size = 0

	m.log.Debug("tmap: cleared", slog.Int("entries", n), slog.Int("errors", len(errs)))
	return errors.Join(errs...)
}

// Close tears the map down. It is Clear under the name used when the map
// itself is being discarded; the allocator belongs to the caller and is not
// closed.
func (m *Map) Close() error {
	return m.Clear()
}
