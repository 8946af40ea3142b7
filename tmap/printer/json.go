package printer

import (
	"encoding/json"
	"fmt"
)

// jsonEntry represents one visited entry in JSON format.
type jsonEntry struct {
	Depth int `json:"depth"`
	Key   any `json:"key"`
	Value any `json:"value"`
}

// printJSON writes the visible entries as one indented JSON array.
func (p *Printer) printJSON() error {
	entries := make([]jsonEntry, 0, p.m.Len())
	err := p.m.Walk(p.opts.Direction, func(depth int, key, val []byte) error {
		if !p.visible(depth) {
			return nil
		}
		entries = append(entries, jsonEntry{
			Depth: depth,
			Key:   p.opts.KeyFormat.decode(key),
			Value: p.opts.ValueFormat.decode(val),
		})
		return nil
	})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
