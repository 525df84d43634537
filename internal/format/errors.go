package format

import "errors"

var (
	// ErrBadMagic indicates the file did not start with the XEX2 tag.
	ErrBadMagic = errors.New("format: magic mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrNotFound indicates a requested directory entry was missing.
	ErrNotFound = errors.New("format: directory entry not found")
)
