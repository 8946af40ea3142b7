// Package tmap implements an allocator-pluggable ordered map over fixed-size
// opaque keys and values.
//
// # Overview
//
// A Map is a plain (unbalanced) binary search tree. Each entry is one node
// block obtained from an alloc.Allocator; the block packs two child links,
// the key bytes padded to an 8-byte quantum, and the value bytes. Ordering
// is defined entirely by a user comparator (see package cmpfn); the map
// never compares key bytes itself.
//
// # Usage Example
//
//	m, err := tmap.New(8, 8, cmpfn.Int64, tmap.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer m.Close()
//
//	replaced, err := m.Insert(cmpfn.EncodeInt64(101), cmpfn.EncodeInt64(-101))
//	if err != nil {
//	    return err // allocation failure; the map is unchanged
//	}
//
//	if v, ok := m.Get(cmpfn.EncodeInt64(101)); ok {
//	    fmt.Println(cmpfn.DecodeInt64(v))
//	}
//
//	_ = m.Walk(tmap.WalkForward, func(depth int, key, val []byte) error {
//	    fmt.Println(depth, cmpfn.DecodeInt64(key))
//	    return nil
//	})
//
// # Element Lifecycle
//
// An optional DestructorFunc is told about every value the map discards:
// with DiscardReplaced (and a nil key) just before Insert overwrites a value,
// and with DiscardErased (key present) just before Clear frees a node.
//
// # Complexity
//
// Insert, Find and Get are O(depth). No rebalancing is performed, so sorted
// insertion degrades the tree to a list. Walk and Clear use explicit stacks
// and do not recurse, so degenerate trees are safe to traverse.
//
// # Thread Safety
//
// A Map is not safe for concurrent mutation. Concurrent Find/Get/Walk calls
// are safe as long as no Insert or Clear runs at the same time and the
// allocator's Resolve is safe for concurrent readers (all allocators in
// package alloc are).
package tmap
