package main

import (
	"github.com/spf13/cobra"

	"github.com/xenia-tools/xexkit/pkg/ops"
)

func init() {
	rootCmd.AddCommand(newDirCmd())
}

func newDirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir <xex>",
		Short: "List the optional-header directory entries",
		Long: `The dir command lists every optional-header directory entry of an XEX2
image in on-disk order, annotated with known key names.

Example:
  xexctl dir default.xex
  xexctl dir default.xex --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listDirectory(args[0])
		},
	}
	return cmd
}

// listDirectory prints the directory listing; shared with clear-pal50 -v.
func listDirectory(path string) error {
	entries, err := ops.Entries(path)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(entries)
	}
	printInfo("Directory of %s (%d entries):\n", path, len(entries))
	for _, e := range entries {
		printInfo("  off=0x%08X  key=0x%08X  value=0x%08X  %-11s %s\n",
			e.Offset, e.Key, e.Value, e.Kind, e.Name)
	}
	return nil
}
