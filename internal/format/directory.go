package format

import (
	"fmt"

	"github.com/xenia-tools/xexkit/internal/buf"
)

// DirectoryEntry is one 8-byte optional-header record from the directory that
// follows the file header.
type DirectoryEntry struct {
	// FileOffset is the absolute offset of this record within the image. The
	// value dword sits at FileOffset+DirEntryValueOffset, which is where
	// patches are applied.
	FileOffset uint32
	Key        uint32
	Value      uint32
}

// ParseDirectory decodes count directory records starting at start. Entries
// are returned in on-disk order. Keys are not required to be unique and no
// ordering is guaranteed by the format.
//
// Parsing is atomic: a directory that runs past the end of b yields an error
// naming the first missing entry, and no partial slice.
func ParseDirectory(b []byte, start int, count uint32) ([]DirectoryEntry, error) {
	if _, err := buf.CheckTableBounds(len(b), start, int(count), DirEntrySize); err != nil {
		avail := 0
		if len(b) > start {
			avail = (len(b) - start) / DirEntrySize
		}
		return nil, fmt.Errorf("xex directory: truncated at entry %d of %d: %w", avail, count, ErrTruncated)
	}
	entries := make([]DirectoryEntry, 0, count)
	off := start
	for i := uint32(0); i < count; i++ {
		rec, ok := buf.Slice(b, off, DirEntrySize)
		if !ok {
			// Unreachable after the table bounds check, kept for safety.
			return nil, fmt.Errorf("xex directory: truncated at entry %d of %d: %w", i, count, ErrTruncated)
		}
		entries = append(entries, DirectoryEntry{
			FileOffset: uint32(off),
			Key:        buf.U32BE(rec),
			Value:      buf.U32BE(rec[DirEntryValueOffset:]),
		})
		off += DirEntrySize
	}
	return entries, nil
}

// FindEntry returns the first entry whose key matches key. Duplicate keys are
// tolerated; later duplicates are ignored.
func FindEntry(entries []DirectoryEntry, key uint32) (DirectoryEntry, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e, true
		}
	}
	return DirectoryEntry{}, false
}
