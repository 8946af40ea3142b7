package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"

	"github.com/joshuapare/tmapkit/tmap"
	"github.com/joshuapare/tmapkit/tmap/alloc"
	"github.com/joshuapare/tmapkit/tmap/cmpfn"
	"github.com/joshuapare/tmapkit/tmap/printer"
)

const (
	// scannerMaxLineSize bounds a single input line.
	scannerMaxLineSize = 1 << 20

	defaultStringSize = 16
)

var errMalformedLine = errors.New("malformed line")

// loadOptions describes how an input file becomes a map.
type loadOptions struct {
	KeyType   string
	ValType   string
	KeySize   int
	ValSize   int
	Lang      string
	Encoding  string
	Allocator string
	MaxBytes  int
}

var loadOpts loadOptions

// addLoadFlags registers the flags shared by every command that loads a file.
func addLoadFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&loadOpts.KeyType, "key-type", "int64", "Key type: int64, uint64, int32, string, istring, collate")
	f.StringVar(&loadOpts.ValType, "val-type", "int64", "Value type: int64, uint64, int32, string")
	f.IntVar(&loadOpts.KeySize, "key-size", defaultStringSize, "Key width in bytes for string keys")
	f.IntVar(&loadOpts.ValSize, "val-size", defaultStringSize, "Value width in bytes for string values")
	f.StringVar(&loadOpts.Lang, "lang", "und", "BCP 47 language for --key-type collate")
	f.StringVar(&loadOpts.Encoding, "encoding", "utf-8", "Input encoding: utf-8, windows-1252")
	f.StringVar(&loadOpts.Allocator, "allocator", "heap", "Node allocator: heap, arena")
	f.IntVar(&loadOpts.MaxBytes, "max-bytes", 0, "Fail inserts beyond this many live node bytes (0 = no limit)")
}

// codec turns the text form of a key or value into its fixed-size bytes.
type codec struct {
	size   int
	cmp    cmpfn.Func
	format printer.BytesFormat
	encode func(string) ([]byte, error)
}

func newCodec(typ string, size int, lang string) (codec, error) {
	switch typ {
	case "int64":
		return codec{8, cmpfn.Int64, printer.BytesInt, func(s string) ([]byte, error) {
			v, err := strconv.ParseInt(s, 0, 64)
			return cmpfn.EncodeInt64(v), err
		}}, nil
	case "int32":
		return codec{4, cmpfn.Int32, printer.BytesInt, func(s string) ([]byte, error) {
			v, err := strconv.ParseInt(s, 0, 32)
			return cmpfn.EncodeInt32(int32(v)), err
		}}, nil
	case "uint64":
		return codec{8, cmpfn.Uint64, printer.BytesUint, func(s string) ([]byte, error) {
			v, err := strconv.ParseUint(s, 0, 64)
			return cmpfn.EncodeUint64(v), err
		}}, nil
	case "string", "istring", "collate":
		c := codec{size, cmpfn.CString, printer.BytesCString, func(s string) ([]byte, error) {
			return cmpfn.CStringKey(s, size)
		}}
		switch typ {
		case "istring":
			c.cmp = cmpfn.CStringIgnoreCase
		case "collate":
			tag, err := language.Parse(lang)
			if err != nil {
				return codec{}, fmt.Errorf("invalid --lang %q: %w", lang, err)
			}
			c.cmp = cmpfn.Collated(tag)
		}
		return c, nil
	}
	return codec{}, fmt.Errorf("unknown type %q", typ)
}

// loadedMap is a populated map plus what is needed to print and release it.
type loadedMap struct {
	m         *tmap.Map
	alloc     alloc.Allocator
	keyFormat printer.BytesFormat
	valFormat printer.BytesFormat

	lines    int
	replaced int

	release func() error
}

// Close tears down the map and then its allocator.
func (l *loadedMap) Close() error {
	err := l.m.Close()
	if l.release != nil {
		err = errors.Join(err, l.release())
	}
	return err
}

// newAllocator builds the allocator named by opts.
func newAllocator(opts loadOptions) (alloc.Allocator, func() error, error) {
	var a alloc.Allocator
	var release func() error

	switch opts.Allocator {
	case "", "heap":
		a = alloc.NewHeap()
	case "arena":
		arena := alloc.NewArena(alloc.DefaultArenaOptions())
		a, release = arena, arena.Close
	default:
		return nil, nil, fmt.Errorf("unknown allocator %q", opts.Allocator)
	}

	if opts.MaxBytes > 0 {
		a = alloc.NewLimited(a, opts.MaxBytes)
	}
	return a, release, nil
}

// decodeInput wraps r with the decoder for the named encoding.
func decodeInput(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	case "iso-8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", encoding)
}

// splitLine splits "key<TAB>value" or "key=value".
func splitLine(line string) (string, string, bool) {
	if k, v, ok := strings.Cut(line, "\t"); ok {
		return strings.TrimSpace(k), strings.TrimSpace(v), true
	}
	if k, v, ok := strings.Cut(line, "="); ok {
		return strings.TrimSpace(k), strings.TrimSpace(v), true
	}
	return "", "", false
}

// loadFile reads path into a new map.
func loadFile(path string, opts loadOptions, logger *slog.Logger) (*loadedMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return load(f, opts, logger)
}

// load reads key/value lines from r into a new map. Blank lines and lines
// starting with '#' are skipped. A later line for the same key replaces the
// earlier value.
func load(r io.Reader, opts loadOptions, logger *slog.Logger) (*loadedMap, error) {
	keys, err := newCodec(opts.KeyType, opts.KeySize, opts.Lang)
	if err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}
	// Values are never compared, so the comparator-only string flavors are
	// not value types.
	if opts.ValType == "istring" || opts.ValType == "collate" {
		return nil, fmt.Errorf("value: unknown type %q", opts.ValType)
	}
	vals, err := newCodec(opts.ValType, opts.ValSize, opts.Lang)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}

	in, err := decodeInput(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	a, release, err := newAllocator(opts)
	if err != nil {
		return nil, err
	}

	m, err := tmap.New(keys.size, vals.size, keys.cmp, tmap.Options{
		Allocator: a,
		Logger:    logger,
	})
	if err != nil {
		if release != nil {
			_ = release()
		}
		return nil, err
	}

	lm := &loadedMap{
		m:         m,
		alloc:     a,
		keyFormat: keys.format,
		valFormat: vals.format,
		release:   release,
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), scannerMaxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ks, vs, ok := splitLine(line)
		if !ok {
			_ = lm.Close()
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, errMalformedLine, line)
		}
		key, err := keys.encode(ks)
		if err != nil {
			_ = lm.Close()
			return nil, fmt.Errorf("line %d: key %q: %w", lineNo, ks, err)
		}
		val, err := vals.encode(vs)
		if err != nil {
			_ = lm.Close()
			return nil, fmt.Errorf("line %d: value %q: %w", lineNo, vs, err)
		}

		replaced, err := m.Insert(key, val)
		if err != nil {
			_ = lm.Close()
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		lm.lines++
		if replaced {
			lm.replaced++
			logger.Debug("replaced value", "line", lineNo, "key", ks)
		}
	}
	if err := scanner.Err(); err != nil {
		_ = lm.Close()
		return nil, fmt.Errorf("read input: %w", err)
	}

	logger.Debug("loaded map", "entries", m.Len(), "lines", lm.lines, "replaced", lm.replaced)
	return lm, nil
}
