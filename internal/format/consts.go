// Package format describes the byte layout of tree-map nodes. A node is one
// contiguous block obtained from an allocator:
//
//	0x00  left  child ref (uint32, little-endian, 0 = absent)
//	0x04  right child ref (uint32, little-endian, 0 = absent)
//	0x08  key bytes, padded up to a multiple of Quantum
//	....  value bytes (not padded)
//
// The package is pure arithmetic and slicing; it never allocates.
package format

const (
	// Quantum is the alignment unit for the key region. It matches the widest
	// scalar (int64, float64, pointer-sized) a caller is expected to embed in a key.
	Quantum = 8

	// QuantumMask is Quantum-1, used by the rounding helpers.
	QuantumMask = Quantum - 1

	// LinkSize is the encoded size of one child link.
	LinkSize = 4

	// LeftLinkOffset is the offset of the left child ref within a node block.
	LeftLinkOffset = 0

	// RightLinkOffset is the offset of the right child ref within a node block.
	RightLinkOffset = LeftLinkOffset + LinkSize

	// NodeHeaderSize is the size of the fixed header (both child links).
	// It is a multiple of Quantum so the key region starts aligned.
	NodeHeaderSize = RightLinkOffset + LinkSize

	// NilRef marks an absent child.
	NilRef uint32 = 0

	// MaxNodeSize is the largest node block the allocators can address.
	MaxNodeSize = 1<<31 - 1
)
