package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tmapkit/tmap"
	"github.com/joshuapare/tmapkit/tmap/printer"
)

var (
	walkDirection string
	walkMaxDepth  int
	walkIndent    int
)

func init() {
	cmd := newWalkCmd()
	addLoadFlags(cmd)
	cmd.Flags().StringVar(&walkDirection, "direction", "forward", "Walk order: forward, backward, downward")
	cmd.Flags().IntVar(&walkMaxDepth, "max-depth", 0, "Hide entries at this depth or deeper (0 = unlimited)")
	cmd.Flags().IntVar(&walkIndent, "indent", printer.DefaultIndentSize, "Spaces per depth level")
	rootCmd.AddCommand(cmd)
}

func newWalkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk <file>",
		Short: "Load a file into a map and print it in walk order",
		Long: `The walk command reads "key<TAB>value" or "key=value" lines into a map
and prints every entry with its depth in the tree.

Example:
  tmapctl walk pairs.txt
  tmapctl walk pairs.txt --direction downward
  tmapctl walk words.txt --key-type collate --lang sv --val-type string
  tmapctl walk pairs.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(args)
		},
	}
	return cmd
}

func runWalk(args []string) error {
	dir, err := tmap.ParseDirection(walkDirection)
	if err != nil {
		return err
	}

	lm, err := loadFile(args[0], loadOpts, newLogger())
	if err != nil {
		return err
	}
	defer lm.Close()

	if quiet && !jsonOut {
		return nil
	}

	opts := printer.DefaultOptions()
	opts.Direction = dir
	opts.MaxDepth = walkMaxDepth
	opts.IndentSize = walkIndent
	opts.KeyFormat = lm.keyFormat
	opts.ValueFormat = lm.valFormat
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	if err := printer.New(lm.m, os.Stdout, opts).Print(); err != nil {
		return fmt.Errorf("print map: %w", err)
	}
	return nil
}
