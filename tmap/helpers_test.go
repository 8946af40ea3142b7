package tmap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tmapkit/tmap/cmpfn"
)

// i32 encodes a 4-byte key or value.
func i32(v int32) []byte { return cmpfn.EncodeInt32(v) }

// newIntMap returns an empty int32 -> int32 map that is torn down with the test.
func newIntMap(t *testing.T, opts Options) *Map {
	t.Helper()
	m, err := New(4, 4, cmpfn.Int32, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

// mustInsert inserts a new key and checks it was not a replacement.
func mustInsert(t *testing.T, m *Map, key, val int32) {
	t.Helper()
	replaced, err := m.Insert(i32(key), i32(val))
	require.NoError(t, err)
	require.False(t, replaced, "key %d should be new", key)
}

// visit is one recorded walk callback.
type visit struct {
	Depth int
	Key   int32
	Val   int32
}

// collect walks m in dir and records every visit.
func collect(t *testing.T, m *Map, dir Direction) []visit {
	t.Helper()
	var out []visit
	err := m.Walk(dir, func(depth int, key, val []byte) error {
		out = append(out, visit{Depth: depth, Key: cmpfn.DecodeInt32(key), Val: cmpfn.DecodeInt32(val)})
		return nil
	})
	require.NoError(t, err)
	return out
}

// reference walks the tree recursively through the Node API, giving the
// textbook definition of each order to compare the iterative walkers against.
func reference(m *Map, dir Direction) []visit {
	var out []visit
	var rec func(n Node, ok bool, depth int)
	rec = func(n Node, ok bool, depth int) {
		if !ok {
			return
		}
		self := visit{Depth: depth, Key: cmpfn.DecodeInt32(n.Key()), Val: cmpfn.DecodeInt32(n.Value())}
		l, lok := n.Left()
		r, rok := n.Right()
		switch dir {
		case WalkForward:
			rec(l, lok, depth+1)
			out = append(out, self)
			rec(r, rok, depth+1)
		case WalkBackward:
			rec(r, rok, depth+1)
			out = append(out, self)
			rec(l, lok, depth+1)
		default:
			out = append(out, self)
			rec(l, lok, depth+1)
			rec(r, rok, depth+1)
		}
	}
	root, ok := m.Root()
	rec(root, ok, 0)
	return out
}

// keyOf decodes the key of a node.
func keyOf(n Node) int32 { return cmpfn.DecodeInt32(n.Key()) }

// discardEvent is one recorded destructor call.
type discardEvent struct {
	Reason DiscardReason
	HasKey bool
	Key    int32
	Val    int32
}

// recorder returns a destructor that appends to events.
func recorder(events *[]discardEvent) DestructorFunc {
	return func(reason DiscardReason, key, val []byte) {
		ev := discardEvent{Reason: reason, HasKey: key != nil, Val: cmpfn.DecodeInt32(val)}
		if key != nil {
			ev.Key = cmpfn.DecodeInt32(key)
		}
		*events = append(*events, ev)
	}
}
