package xex

import (
	"fmt"

	"github.com/xenia-tools/xexkit/internal/buf"
	"github.com/xenia-tools/xexkit/internal/format"
	"github.com/xenia-tools/xexkit/internal/writer"
)

// PatchResult describes the outcome of a privilege-bit clear.
type PatchResult struct {
	// EntryOffset is the absolute offset of the patched directory record.
	EntryOffset uint32
	OldValue    uint32
	NewValue    uint32
	// Changed is false when the requested bits were already clear and the
	// buffer was left untouched.
	Changed bool
}

// ClearPrivileges clears mask in the Title Privileges entry of the in-memory
// image. When the bits are already clear the image is not modified and the
// result reports Changed == false; that is a successful no-op, not an error.
//
// Exactly four bytes change on a patch: the big-endian value dword of the
// privileges record. Nothing else in the buffer is touched.
func (x *Xex) ClearPrivileges(mask uint32) (PatchResult, error) {
	if x.readonly {
		return PatchResult{}, ErrReadOnly
	}
	e, ok := x.Entry(format.PrivilegesKey)
	if !ok {
		return PatchResult{}, fmt.Errorf("title privileges (key 0x%08X): %w", uint32(format.PrivilegesKey), ErrEntryNotFound)
	}
	res := PatchResult{
		EntryOffset: e.FileOffset,
		OldValue:    e.Value,
		NewValue:    e.Value,
	}
	if e.Value&mask == 0 {
		return res, nil
	}
	res.NewValue = e.Value &^ mask
	valueOff := int(e.FileOffset) + format.DirEntryValueOffset
	dst, ok := buf.Slice(x.data, valueOff, 4)
	if !ok {
		// The entry came from this buffer, so its value field must fit.
		return PatchResult{}, fmt.Errorf("privileges value at %d: %w", valueOff, ErrTruncated)
	}
	buf.PutU32BE(dst, res.NewValue)
	res.Changed = true

	// Keep the cached directory view in sync with the buffer.
	for i := range x.dir {
		if x.dir[i].FileOffset == e.FileOffset {
			x.dir[i].Value = res.NewValue
			break
		}
	}
	return res, nil
}

// ClearPAL50 clears the PAL-50 incompatibility bit of the Title Privileges
// entry.
func (x *Xex) ClearPAL50() (PatchResult, error) {
	return x.ClearPrivileges(format.PAL50IncompatibleMask)
}

// SaveFile persists the image buffer to path atomically.
func (x *Xex) SaveFile(path string) error {
	return x.Save(&writer.FileWriter{Path: path})
}
