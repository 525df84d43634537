package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/xenia-tools/xexkit/pkg/ops"
	"github.com/xenia-tools/xexkit/xex"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "xexctl",
	Short: "Inspect and patch XEX2 executable headers",
	Long: `xexctl is a tool for inspecting Xbox 360 XEX2 executable headers and
patching the Title Privileges entry. The header directory is always stored in
the clear, so the tool works on compressed and encrypted images alike.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

// Exit statuses surfaced to scripts. Malformed images use a code distinct
// from both the missing-input and missing-entry conditions.
const (
	exitOK          = 0
	exitNoInput     = 1
	exitBadImage    = 2
	exitNoEntry     = 3
	exitWriteFailed = 4
)

// exitStatus maps an error to the process exit status. Write failures are
// checked first: a failed save can wrap fs errors that would otherwise look
// like input problems.
func exitStatus(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ops.ErrWriteFailed):
		return exitWriteFailed
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, ops.ErrNotRegular):
		return exitNoInput
	case errors.Is(err, xex.ErrEntryNotFound):
		return exitNoEntry
	case errors.Is(err, xex.ErrBadMagic), errors.Is(err, xex.ErrTruncated):
		return exitBadImage
	default:
		return exitNoInput
	}
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitStatus(err))
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
