package ops

import (
	"errors"
	"fmt"
	"os"
)

// DefaultOutputSuffix is appended to the input path when no explicit output
// is configured.
const DefaultOutputSuffix = ".patched.xex"

var (
	// ErrNotRegular indicates the input path exists but is not a regular file.
	ErrNotRegular = errors.New("ops: input is not a regular file")
	// ErrWriteFailed tags output persistence failures so callers can tell
	// them apart from input problems.
	ErrWriteFailed = errors.New("ops: write failed")
)

// ClearOptions control ClearPAL50.
type ClearOptions struct {
	// Output is the destination path. Empty derives <input>.patched.xex.
	Output string
	// DryRun computes and reports the patch without writing anything.
	DryRun bool
	// InPlace writes the patched image back over the input. Mutually
	// exclusive with Output.
	InPlace bool
}

// Result reports what ClearPAL50 did.
type Result struct {
	// Path is the written output file; empty when nothing was written.
	Path string `json:"path,omitempty"`
	// EntryOffset is the absolute offset of the privileges record.
	EntryOffset uint32 `json:"entry_offset"`
	OldValue    uint32 `json:"old_value"`
	NewValue    uint32 `json:"new_value"`
	// Changed reports whether the bit was set in the input. A false value
	// means the operation was a successful no-op.
	Changed bool `json:"changed"`
	// Written reports whether an output file was produced; false for dry
	// runs and no-ops.
	Written bool `json:"written"`
}

// checkRegularFile rejects paths that don't name a regular file before any
// image bytes are read.
func checkRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotRegular)
	}
	return nil
}
