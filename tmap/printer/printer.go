// Package printer renders the contents of a tmap.Map as text or JSON.
//
// Entries are produced by a single Walk of the map, so the output order is
// the walk order chosen in Options.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/tmapkit/tmap"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs one indented line per entry.
	FormatText Format = "text"

	// FormatJSON outputs a JSON array of entries.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per depth level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth hides entries at this depth or deeper (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// Direction is the walk order.
	// Default: tmap.WalkDownward, which shows the tree shape
	Direction tmap.Direction

	// KeyFormat controls how key bytes are rendered.
	// Default: BytesHex
	KeyFormat BytesFormat

	// ValueFormat controls how value bytes are rendered.
	// Default: BytesHex
	ValueFormat BytesFormat
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		IndentSize:  DefaultIndentSize,
		MaxDepth:    DefaultMaxDepth,
		Direction:   tmap.WalkDownward,
		KeyFormat:   BytesHex,
		ValueFormat: BytesHex,
	}
}

// Printer handles formatted output of a map.
type Printer struct {
	opts   Options
	writer io.Writer
	m      *tmap.Map
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(m, os.Stdout, printer.DefaultOptions())
//	err := p.Print()
func New(m *tmap.Map, w io.Writer, opts Options) *Printer {
	return &Printer{
		m:      m,
		writer: w,
		opts:   opts,
	}
}

// Print walks the map and writes every entry within MaxDepth.
func (p *Printer) Print() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON()
	case FormatText, "":
		return p.printText()
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}

// visible reports whether an entry at depth passes the MaxDepth filter.
func (p *Printer) visible(depth int) bool {
	return p.opts.MaxDepth <= 0 || depth < p.opts.MaxDepth
}
