package tmap

import "github.com/joshuapare/tmapkit/tmap/alloc"

// Node is a view of one map entry. It aliases node memory: Key must not be
// modified, Value may be modified in place. A Node is valid until the next
// Insert or Clear on its map.
type Node struct {
	m     *Map
	ref   alloc.Ref
	block []byte
}

// Ref returns the allocator reference of the node block.
func (n Node) Ref() alloc.Ref { return n.ref }

// Key returns the key bytes.
func (n Node) Key() []byte { return n.m.layout.Key(n.block) }

// Value returns the value bytes.
func (n Node) Value() []byte { return n.m.layout.Value(n.block) }

// Left returns the left child, if any.
func (n Node) Left() (Node, bool) {
	return n.m.view(n.m.layout.Left(n.block))
}

// Right returns the right child, if any.
func (n Node) Right() (Node, bool) {
	return n.m.view(n.m.layout.Right(n.block))
}

// Root returns the root node, if the map is not empty.
func (m *Map) Root() (Node, bool) {
	return m.view(m.root)
}

func (m *Map) view(ref alloc.Ref) (Node, bool) {
	if ref == alloc.NilRef {
		return Node{}, false
	}
	return Node{m: m, ref: ref, block: m.node(ref)}, true
}
