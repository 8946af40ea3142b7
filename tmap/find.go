package tmap

import "github.com/joshuapare/tmapkit/tmap/alloc"

// probe records the outcome of one root-to-leaf descent.
type probe struct {
	// ref/block identify the node whose key compared equal (NilRef if none).
	ref   alloc.Ref
	block []byte

	// parent is the last node passed on the way down and last is the
	// comparison of the search key against it. When ref is NilRef, the new
	// key belongs in parent's left slot if last < 0 and its right slot otherwise.
	parent alloc.Ref
	last   int
}

// search descends from the root comparing key against each node.
func (m *Map) search(key []byte) probe {
	p := probe{ref: alloc.NilRef, parent: alloc.NilRef}

	for ref := m.root; ref != alloc.NilRef; {
		block := m.node(ref)
		c := m.cmp(key, m.layout.Key(block), m.layout.KeySize)
		if c == 0 {
			p.ref, p.block = ref, block
			return p
		}

		p.parent, p.last = ref, c
		if c < 0 {
			ref = m.layout.Left(block)
		} else {
			ref = m.layout.Right(block)
		}
	}
	return p
}

// Find returns the node whose key compares equal to key.
// key must be exactly KeySize bytes.
func (m *Map) Find(key []byte) (Node, bool) {
	m.checkKey(key)

	p := m.search(key)
	if p.ref == alloc.NilRef {
		return Node{}, false
	}
	return Node{m: m, ref: p.ref, block: p.block}, true
}

// Get returns the value stored under key. The slice aliases node memory.
func (m *Map) Get(key []byte) ([]byte, bool) {
	n, ok := m.Find(key)
	if !ok {
		return nil, false
	}
	return n.Value(), true
}

// Contains reports whether key is present.
func (m *Map) Contains(key []byte) bool {
	_, ok := m.Find(key)
	return ok
}
