package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tmapkit/tmap"
	"github.com/joshuapare/tmapkit/tmap/alloc"
)

func init() {
	cmd := newStatsCmd()
	addLoadFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show map shape and memory statistics",
		Long: `The stats command loads a file like walk does and reports the number
of entries, tree height, node geometry and allocator counters.

Example:
  tmapctl stats pairs.txt
  tmapctl stats pairs.txt --allocator arena --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

// MapStats is the report printed by the stats command.
type MapStats struct {
	File     string       `json:"file"`
	Lines    int          `json:"lines"`
	Replaced int          `json:"replaced"`
	Map      tmap.Stats   `json:"map"`
	Alloc    *alloc.Stats `json:"allocator,omitempty"`
}

func runStats(args []string) error {
	lm, err := loadFile(args[0], loadOpts, newLogger())
	if err != nil {
		return err
	}
	defer lm.Close()

	stats := MapStats{
		File:     args[0],
		Lines:    lm.lines,
		Replaced: lm.replaced,
		Map:      lm.m.Stats(),
	}
	if sr, ok := lm.alloc.(alloc.StatsReporter); ok {
		st := sr.Stats()
		stats.Alloc = &st
	}

	if jsonOut {
		return printJSON(stats)
	}
	printStatsText(stats)
	return nil
}

func printStatsText(s MapStats) {
	printInfo("%s\n", header("Map: "+s.File))
	printInfo("%s%d\n", label("Entries"), s.Map.Entries)
	printInfo("%s%d\n", label("Lines"), s.Lines)
	printInfo("%s%d\n", label("Replaced"), s.Replaced)
	printInfo("%s%d\n", label("Height"), s.Map.Height)
	printInfo("%s%d\n", label("Key size"), s.Map.KeySize)
	printInfo("%s%d\n", label("Value size"), s.Map.ValSize)
	printInfo("%s%d\n", label("Value offset"), s.Map.ValueOffset)
	printInfo("%s%d\n", label("Node size"), s.Map.NodeSize)
	printInfo("%s%s\n", label("Node bytes"), humanBytes(s.Map.Bytes))

	if s.Alloc != nil {
		printInfo("\n%s\n", header("Allocator"))
		printInfo("%s%d\n", label("Allocs"), s.Alloc.Allocs)
		printInfo("%s%d\n", label("Frees"), s.Alloc.Frees)
		printInfo("%s%d\n", label("Failures"), s.Alloc.Failures)
		printInfo("%s%d\n", label("Live blocks"), s.Alloc.LiveBlocks)
		printInfo("%s%s\n", label("Peak bytes"), humanBytes(s.Alloc.PeakBytes))
	}
}

// humanBytes formats n with a binary unit suffix.
func humanBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
