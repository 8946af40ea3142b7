package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/tmapkit/tmap"
	"github.com/joshuapare/tmapkit/tmap/cmpfn"
)

var (
	layoutKeySize int
	layoutValSize int
)

func init() {
	cmd := newLayoutCmd()
	cmd.Flags().IntVar(&layoutKeySize, "key-size", 8, "Key width in bytes")
	cmd.Flags().IntVar(&layoutValSize, "val-size", 8, "Value width in bytes")
	rootCmd.AddCommand(cmd)
}

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the node layout for a key and value size",
		Long: `The layout command prints where the key and value live inside a node
block and how large each block is.

Example:
  tmapctl layout --key-size 3 --val-size 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout()
		},
	}
	return cmd
}

// LayoutInfo is the report printed by the layout command.
type LayoutInfo struct {
	KeySize     int `json:"key_size"`
	ValSize     int `json:"val_size"`
	KeySpan     int `json:"key_span"`
	ValueOffset int `json:"value_offset"`
	NodeSize    int `json:"node_size"`
}

func runLayout() error {
	m, err := tmap.New(layoutKeySize, layoutValSize, cmpfn.Bytes, tmap.DefaultOptions())
	if err != nil {
		return err
	}
	defer m.Close()

	l := m.Layout()
	info := LayoutInfo{
		KeySize:     l.KeySize,
		ValSize:     l.ValSize,
		KeySpan:     l.KeySpan,
		ValueOffset: l.ValueOffset,
		NodeSize:    l.NodeSize,
	}

	if jsonOut {
		return printJSON(info)
	}
	printInfo("%s\n", header("Node layout"))
	printInfo("%s%d\n", label("Key size"), info.KeySize)
	printInfo("%s%d\n", label("Value size"), info.ValSize)
	printInfo("%s%d\n", label("Key span"), info.KeySpan)
	printInfo("%s%d\n", label("Value offset"), info.ValueOffset)
	printInfo("%s%d\n", label("Node size"), info.NodeSize)
	return nil
}
