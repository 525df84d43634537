package xex

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/xenia-tools/xexkit/internal/buf"
	"github.com/xenia-tools/xexkit/internal/format"
)

// OriginalPEName resolves the Original PE Name directory entry to the linker
// filename embedded in the header region. The entry's value is the absolute
// offset of a block whose first dword is the block's byte size, followed by
// the NUL-terminated name.
func (x *Xex) OriginalPEName() (string, error) {
	e, ok := x.Entry(format.KeyOriginalPEName)
	if !ok {
		return "", fmt.Errorf("original pe name (key 0x%08X): %w", uint32(format.KeyOriginalPEName), ErrEntryNotFound)
	}
	blockOff := int(e.Value)
	sizeField, ok := buf.Slice(x.data, blockOff, 4)
	if !ok {
		return "", fmt.Errorf("original pe name block at %d: %w", blockOff, ErrTruncated)
	}
	size := int(buf.U32BE(sizeField))
	if size < 4 {
		return "", fmt.Errorf("original pe name block at %d: size %d: %w", blockOff, size, ErrTruncated)
	}
	raw, ok := buf.Slice(x.data, blockOff+4, size-4)
	if !ok {
		return "", fmt.Errorf("original pe name block at %d: %w", blockOff, ErrTruncated)
	}
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	// Names come from Windows linkers; decode as Latin-1 so stray high bytes
	// survive instead of becoming replacement runes.
	name, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode original pe name: %w", err)
	}
	return string(name), nil
}
