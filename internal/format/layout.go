package format

import (
	"fmt"

	"github.com/joshuapare/tmapkit/internal/buf"
)

// Layout is the node geometry for one (key size, value size) pair.
// It is computed once per map and is immutable.
type Layout struct {
	KeySize int // declared key width
	ValSize int // declared value width

	// KeySpan is KeySize rounded up to Quantum.
	KeySpan int

	// ValueOffset is the offset of the value region from the start of the key
	// region. Always equal to KeySpan.
	ValueOffset int

	// NodeSize is the exact block size passed to Alloc and Free.
	NodeSize int
}

// NewLayout computes the node geometry for keySize/valSize. It is a pure
// function: the same inputs always give the same Layout.
func NewLayout(keySize, valSize int) (Layout, error) {
	if keySize <= 0 || valSize <= 0 {
		return Layout{}, fmt.Errorf("%w: key=%d value=%d", ErrInvalidSize, keySize, valSize)
	}

	span, ok := buf.AddOverflowSafe(keySize, QuantumMask)
	if !ok {
		return Layout{}, fmt.Errorf("%w: key=%d", ErrLayoutOverflow, keySize)
	}
	span &^= QuantumMask

	payload, ok := buf.AddOverflowSafe(span, valSize)
	if !ok {
		return Layout{}, fmt.Errorf("%w: key=%d value=%d", ErrLayoutOverflow, keySize, valSize)
	}
	total, ok := buf.AddOverflowSafe(payload, NodeHeaderSize)
	if !ok || total > MaxNodeSize {
		return Layout{}, fmt.Errorf("%w: key=%d value=%d", ErrLayoutOverflow, keySize, valSize)
	}

	return Layout{
		KeySize:     keySize,
		ValSize:     valSize,
		KeySpan:     span,
		ValueOffset: span,
		NodeSize:    total,
	}, nil
}

// Check reports ErrTruncated when block cannot hold a node of this layout.
func (l Layout) Check(block []byte) error {
	if len(block) < l.NodeSize {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrTruncated, len(block), l.NodeSize)
	}
	return nil
}

// Key returns the key region of block (exactly KeySize bytes).
func (l Layout) Key(block []byte) []byte {
	end := NodeHeaderSize + l.KeySize
	return block[NodeHeaderSize:end:end]
}

// Value returns the value region of block (exactly ValSize bytes).
func (l Layout) Value(block []byte) []byte {
	off := NodeHeaderSize + l.ValueOffset
	return block[off : off+l.ValSize : off+l.ValSize]
}

// Left returns the left child ref stored in block.
func (l Layout) Left(block []byte) uint32 {
	return buf.U32LE(block[LeftLinkOffset:])
}

// Right returns the right child ref stored in block.
func (l Layout) Right(block []byte) uint32 {
	return buf.U32LE(block[RightLinkOffset:])
}

// SetLeft stores the left child ref in block.
func (l Layout) SetLeft(block []byte, ref uint32) {
	buf.PutU32LE(block[LeftLinkOffset:], ref)
}

// SetRight stores the right child ref in block.
func (l Layout) SetRight(block []byte, ref uint32) {
	buf.PutU32LE(block[RightLinkOffset:], ref)
}

// String is used in logs and by the CLI layout command.
func (l Layout) String() string {
	return fmt.Sprintf("key=%d(span %d) value=%d@%d node=%d",
		l.KeySize, l.KeySpan, l.ValSize, l.ValueOffset, l.NodeSize)
}
