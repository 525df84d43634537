package main

import (
	"github.com/spf13/cobra"

	"github.com/xenia-tools/xexkit/pkg/ops"
)

func init() {
	rootCmd.AddCommand(newPrivilegesCmd())
}

func newPrivilegesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "privileges <xex>",
		Short: "Decode the Title Privileges bitfield",
		Long: `The privileges command decodes the Title Privileges entry of an XEX2
image into its named bits. A missing entry is reported as an error.

Example:
  xexctl privileges default.xex
  xexctl privileges default.xex --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrivileges(args)
		},
	}
	return cmd
}

func runPrivileges(args []string) error {
	priv, err := ops.Privileges(args[0])
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(priv)
	}
	printInfo("Title Privileges @ 0x%08X: 0x%08X\n", priv.EntryOffset, priv.Value)
	if len(priv.Set) == 0 {
		printInfo("  (no privilege bits set)\n")
		return nil
	}
	for _, name := range priv.Set {
		printInfo("  - %s\n", name)
	}
	return nil
}
