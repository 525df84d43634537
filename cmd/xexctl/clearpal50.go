package main

import (
	"github.com/spf13/cobra"

	"github.com/xenia-tools/xexkit/pkg/ops"
)

var (
	clearOutput  string
	clearDryRun  bool
	clearInPlace bool
)

func init() {
	cmd := newClearPAL50Cmd()
	cmd.Flags().StringVarP(&clearOutput, "output", "o", "", "Output path (default: <input>.patched.xex)")
	cmd.Flags().BoolVar(&clearDryRun, "dry-run", false, "Only show what would be done, write nothing")
	cmd.Flags().BoolVar(&clearInPlace, "in-place", false, "Overwrite the input file itself")
	cmd.MarkFlagsMutuallyExclusive("output", "in-place")
	rootCmd.AddCommand(cmd)
}

func newClearPAL50Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-pal50 <xex>",
		Short: "Clear the PAL-50 incompatibility bit in Title Privileges",
		Long: `The clear-pal50 command clears bit 0x00000400 (PAL-50 Incompatible) in the
Title Privileges entry of an XEX2 image and writes the patched image next to
the input. The input is never modified unless --in-place is given.

Example:
  xexctl clear-pal50 default.xex
  xexctl clear-pal50 default.xex -o patched.xex
  xexctl clear-pal50 default.xex --dry-run -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClearPAL50(args)
		},
	}
	return cmd
}

func runClearPAL50(args []string) error {
	input := args[0]

	if verbose && !jsonOut {
		info, err := ops.Info(input)
		if err != nil {
			return err
		}
		printVerbose("Header: size_of_headers=0x%X  security_info=0x%X  entries=%d\n",
			info.SizeOfHeaders, info.SecurityInfoOffset, info.DirectoryEntryCount)
		if err := listDirectory(input); err != nil {
			return err
		}
	}

	res, err := ops.ClearPAL50(input, &ops.ClearOptions{
		Output:  clearOutput,
		DryRun:  clearDryRun,
		InPlace: clearInPlace,
	})
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("Privileges @ 0x%08X  value=0x%08X\n", res.EntryOffset, res.OldValue)
	if !res.Changed {
		printInfo("PAL-50 bit (0x00000400) is already 0: no patch needed.\n")
		return nil
	}
	printInfo("Patch: 0x%08X -> 0x%08X (clear PAL-50 Incompatible)\n", res.OldValue, res.NewValue)
	if clearDryRun {
		printInfo("Dry run: no write performed.\n")
		return nil
	}
	printInfo("Saved: %s\n", res.Path)
	return nil
}
