package ops

import (
	"errors"
	"fmt"

	"github.com/xenia-tools/xexkit/xex"
)

// ClearPAL50 clears the PAL-50 incompatibility bit in the Title Privileges
// entry of the image at input and persists the patched image.
//
// The input file itself is only ever rewritten when opts.InPlace is set;
// otherwise the output goes to opts.Output or, when that is empty, to
// input + ".patched.xex". Writes are atomic (temp file + rename). When the
// bit is already clear, or opts.DryRun is set, nothing is written.
func ClearPAL50(input string, opts *ClearOptions) (*Result, error) {
	if opts == nil {
		opts = &ClearOptions{}
	}
	if opts.InPlace && opts.Output != "" {
		return nil, errors.New("ops: Output and InPlace are mutually exclusive")
	}
	if err := checkRegularFile(input); err != nil {
		return nil, err
	}

	x, err := xex.Load(input)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", input, err)
	}

	patch, err := x.ClearPAL50()
	if err != nil {
		return nil, err
	}
	res := &Result{
		EntryOffset: patch.EntryOffset,
		OldValue:    patch.OldValue,
		NewValue:    patch.NewValue,
		Changed:     patch.Changed,
	}
	if !patch.Changed || opts.DryRun {
		return res, nil
	}

	dest := opts.Output
	switch {
	case opts.InPlace:
		dest = input
	case dest == "":
		dest = input + DefaultOutputSuffix
	}
	if err := x.SaveFile(dest); err != nil {
		return nil, fmt.Errorf("write %s: %w", dest, errors.Join(ErrWriteFailed, err))
	}
	res.Path = dest
	res.Written = true
	return res, nil
}
