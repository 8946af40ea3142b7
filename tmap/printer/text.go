package printer

import (
	"fmt"
	"strings"
)

// printText writes "[depth] key => value", indented by depth.
func (p *Printer) printText() error {
	return p.m.Walk(p.opts.Direction, func(depth int, key, val []byte) error {
		if !p.visible(depth) {
			return nil
		}
		indent := strings.Repeat(" ", depth*p.opts.IndentSize)
		_, err := fmt.Fprintf(p.writer, "%s[%d] %s => %s\n", indent, depth,
			p.opts.KeyFormat.render(key), p.opts.ValueFormat.render(val))
		return err
	})
}
