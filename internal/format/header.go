package format

import (
	"bytes"
	"fmt"

	"github.com/xenia-tools/xexkit/internal/buf"
)

// Header captures the fixed XEX2 file header. The diagram below shows the
// on-disk layout; every integer is stored big-endian.
//
//	Offset  Size  Description
//	------  ----  --------------------------------------------------
//	 0x00    4    'X' 'E' 'X' '2'
//	 0x04    4    Module flags
//	 0x08    4    Total size of all header data
//	 0x0C    4    Size of discardable headers (unused by this package)
//	 0x10    4    Offset of the security info block
//	 0x14    4    Number of optional-header directory entries
type Header struct {
	ModuleFlags              uint32
	SizeOfHeaders            uint32
	SizeOfDiscardableHeaders uint32
	SecurityInfoOffset       uint32
	DirectoryEntryCount      uint32
}

// ParseHeader validates and extracts the fields of an XEX2 file header.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("xex header: %d bytes, need %d: %w", len(b), HeaderSize, ErrTruncated)
	}
	if !bytes.Equal(b[:XEX2SignatureSize], XEX2Signature) {
		return Header{}, fmt.Errorf("xex header: got % X: %w", b[:XEX2SignatureSize], ErrBadMagic)
	}
	return Header{
		ModuleFlags:              buf.U32BE(b[ModuleFlagsOffset:]),
		SizeOfHeaders:            buf.U32BE(b[SizeOfHeadersOffset:]),
		SizeOfDiscardableHeaders: buf.U32BE(b[SizeOfDiscardableHeadersOffset:]),
		SecurityInfoOffset:       buf.U32BE(b[SecurityInfoOffset:]),
		DirectoryEntryCount:      buf.U32BE(b[DirectoryCountOffset:]),
	}, nil
}

// moduleFlagNames in bit order, low to high.
var moduleFlagNames = []struct {
	mask uint32
	name string
}{
	{ModuleFlagTitle, "Title Module"},
	{ModuleFlagExportsToTitle, "Exports To Title"},
	{ModuleFlagSystemDebugger, "System Debugger"},
	{ModuleFlagDLL, "DLL Module"},
	{ModuleFlagPatch, "Module Patch"},
	{ModuleFlagPatchFull, "Full Patch"},
	{ModuleFlagPatchDelta, "Delta Patch"},
	{ModuleFlagUserMode, "User Mode"},
}

// ModuleFlagNames returns the names of the flags set in the header, low bit first.
func (h Header) ModuleFlagNames() []string {
	var names []string
	for _, f := range moduleFlagNames {
		if h.ModuleFlags&f.mask != 0 {
			names = append(names, f.name)
		}
	}
	return names
}
