package tmap

// discard reports a value that is about to be overwritten or freed.
// It is the only place the destructor is invoked.
func (m *Map) discard(reason DiscardReason, key, val []byte) {
	if m.destructor == nil {
		return
	}
	if reason == DiscardReplaced {
		key = nil
	}
	m.destructor(reason, key, val)
}
