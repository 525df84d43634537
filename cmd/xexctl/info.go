package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/xenia-tools/xexkit/pkg/ops"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <xex>",
		Short: "Validate an XEX2 header and report basic metadata",
		Long: `The info command validates an XEX2 image and displays header metadata:
module flags, header sizes, the security info offset, the directory entry
count, and, when present, the original PE name and Title Privileges.

Example:
  xexctl info default.xex
  xexctl info default.xex --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Opening image: %s\n", path)

	info, err := ops.Info(path)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nImage Information:\n")
	printInfo("  File: %s\n", info.Path)
	printInfo("  Size: %d bytes\n", info.Size)
	printInfo("  Module flags: 0x%08X", info.ModuleFlags)
	if len(info.ModuleFlagNames) > 0 {
		printInfo(" (%s)", strings.Join(info.ModuleFlagNames, ", "))
	}
	printInfo("\n")
	printInfo("  Size of headers: 0x%X\n", info.SizeOfHeaders)
	printInfo("  Size of discardable headers: 0x%X\n", info.SizeOfDiscardableHeaders)
	printInfo("  Security info offset: 0x%X\n", info.SecurityInfoOffset)
	printInfo("  Directory entries: %d\n", info.DirectoryEntryCount)
	if info.OriginalPEName != "" {
		printInfo("  Original PE name: %s\n", info.OriginalPEName)
	}
	if info.Privileges != nil {
		printInfo("  Title privileges: 0x%08X\n", info.Privileges.Value)
		for _, name := range info.Privileges.Set {
			printInfo("    - %s\n", name)
		}
	}
	return nil
}
