package tmap

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/joshuapare/tmapkit/internal/buf"
	"github.com/joshuapare/tmapkit/tmap/alloc"
)

// Direction selects the traversal order of Walk.
type Direction int

const (
	// WalkDefault is the same as WalkDownward.
	WalkDefault Direction = iota
	// WalkForward visits keys in ascending order (in-order: left, node, right).
	WalkForward
	// WalkBackward visits keys in descending order (right, node, left).
	WalkBackward
	// WalkDownward visits each node before its subtrees (pre-order: node, left, right).
	WalkDownward
)

func (d Direction) String() string {
	switch d {
	case WalkDefault:
		return "default"
	case WalkForward:
		return "forward"
	case WalkBackward:
		return "backward"
	case WalkDownward:
		return "downward"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps a direction name (as returned by String) to a Direction.
// The empty name selects WalkDefault.
func ParseDirection(s string) (Direction, error) {
	if s == "" {
		return WalkDefault, nil
	}
	for d := WalkDefault; d <= WalkDownward; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return WalkDefault, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// VisitFunc is called for each visited entry with its depth (the root is at
// depth 0). The slices alias node memory: key must not be modified, val may
// be. The visitor must not Insert into or Clear the map.
//
// Returning ErrStopWalk ends the walk and Walk returns nil. Any other error
// ends the walk and is returned by Walk.
type VisitFunc func(depth int, key, val []byte) error

// frame is one pending node on a traversal stack.
type frame struct {
	ref   alloc.Ref
	depth int
}

// Walk visits every entry in the order given by dir.
func (m *Map) Walk(dir Direction, fn VisitFunc) error {
	var err error
	switch dir {
	case WalkForward:
		err = m.walkInOrder(fn, m.layout.Left, m.layout.Right)
	case WalkBackward:
		err = m.walkInOrder(fn, m.layout.Right, m.layout.Left)
	case WalkDefault, WalkDownward:
		err = m.walkPreOrder(fn)
	default:
		return fmt.Errorf("%w: %d", ErrBadDirection, int(dir))
	}
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}

// walkInOrder visits the "first" subtree, the node, then the "second"
// subtree. With first=left this is ascending order; with first=right it is
// descending.
func (m *Map) walkInOrder(fn VisitFunc, first, second func([]byte) uint32) error {
	stack := make([]frame, 0, initialStackCapacity)
	ref, depth := m.root, 0

	for ref != alloc.NilRef || len(stack) > 0 {
		for ref != alloc.NilRef {
			stack = append(stack, frame{ref: ref, depth: depth})
			ref = first(m.node(ref))
			depth++
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		block := m.node(f.ref)
		if err := m.visit(fn, f.depth, block); err != nil {
			return err
		}
		ref, depth = second(block), f.depth+1
	}
	return nil
}

// walkPreOrder visits each node, then its left subtree, then its right subtree.
func (m *Map) walkPreOrder(fn VisitFunc) error {
	stack := make([]frame, 0, initialStackCapacity)
	if m.root != alloc.NilRef {
		stack = append(stack, frame{ref: m.root})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		block := m.node(f.ref)
		if err := m.visit(fn, f.depth, block); err != nil {
			return err
		}

		// Right is pushed first so left is popped first.
		if right := m.layout.Right(block); right != alloc.NilRef {
			stack = append(stack, frame{ref: right, depth: f.depth + 1})
		}
		if left := m.layout.Left(block); left != alloc.NilRef {
			stack = append(stack, frame{ref: left, depth: f.depth + 1})
		}
	}
	return nil
}

// visit calls fn and normalizes a wrapped ErrStopWalk to the bare sentinel.
func (m *Map) visit(fn VisitFunc, depth int, block []byte) error {
	err := fn(depth, m.layout.Key(block), m.layout.Value(block))
	if errors.Is(err, ErrStopWalk) {
		return ErrStopWalk
	}
	return err
}

// All returns an iterator over the entries in the order given by dir.
// An invalid dir yields nothing.
func (m *Map) All(dir Direction) iter.Seq2[[]byte, []byte] {
	return func(yield func(key, val []byte) bool) {
		_ = m.Walk(dir, func(_ int, key, val []byte) error {
			if !yield(key, val) {
				return ErrStopWalk
			}
			return nil
		})
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map) Keys() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for key := range m.All(WalkForward) {
			if !yield(key) {
				return
			}
		}
	}
}

// Height returns the number of levels in the tree (0 when empty).
func (m *Map) Height() int {
	height := 0
	_ = m.walkPreOrder(func(depth int, _, _ []byte) error {
		height = max(height, depth+1)
		return nil
	})
	return height
}

// Stats summarizes the map's shape and memory use.
type Stats struct {
	Entries     int `json:"entries"`
	Height      int `json:"height"`
	KeySize     int `json:"key_size"`
	ValSize     int `json:"val_size"`
	ValueOffset int `json:"value_offset"`
	NodeSize    int `json:"node_size"`
	Bytes       int `json:"bytes"`
}

// Stats returns a summary of the map.
func (m *Map) Stats() Stats {
	return Stats{
		Entries:     m.size,
		Height:      m.Height(),
		KeySize:     m.layout.KeySize,
		ValSize:     m.layout.ValSize,
		ValueOffset: m.layout.ValueOffset,
		NodeSize:    m.layout.NodeSize,
		Bytes:       nodeBytes(m.size, m.layout.NodeSize),
	}
}

// nodeBytes is n nodes of size bytes, saturating at math.MaxInt.
func nodeBytes(n, size int) int {
	total, ok := buf.MulOverflowSafe(n, size)
	if !ok {
		return math.MaxInt
	}
	return total
}
