// Package format houses low-level decoders for the XEX2 executable container
// used by the Xbox 360. The goal is to keep the parsing focused,
// allocation-free where possible, and independent from the public API so
// higher-level packages can orchestrate the data in a more ergonomic form.
//
// Only the file header and the optional-header directory are decoded here.
// Both always live in the clear, even when the image payload itself is
// compressed or encrypted.
package format

// XEX2Signature is the four-byte magic at the start of every XEX2 image.
// Layout:
//
//	0x00  'X' 'E' 'X' '2'
var XEX2Signature = []byte{'X', 'E', 'X', '2'}

const (
	// HeaderSize is the size of the fixed XEX2 file header in bytes.
	HeaderSize = 0x18

	// XEX2SignatureSize is the length of the magic tag.
	XEX2SignatureSize = 4

	// File header field offsets. All integer fields are big-endian.
	MagicOffset                    = 0x00 // 4  "XEX2"
	ModuleFlagsOffset              = 0x04 // 4
	SizeOfHeadersOffset            = 0x08 // 4
	SizeOfDiscardableHeadersOffset = 0x0C // 4
	SecurityInfoOffset             = 0x10 // 4
	DirectoryCountOffset           = 0x14 // 4

	// DirectoryBase is the absolute file offset of the first directory entry.
	// The directory follows the fixed header immediately.
	DirectoryBase = HeaderSize

	// DirEntrySize is the on-disk size of one directory record: a 4-byte key
	// followed by a 4-byte value, both big-endian.
	DirEntrySize = 8

	// DirEntryValueOffset is the offset of the value dword within a record.
	DirEntryValueOffset = 4
)

// Module flag bits from the file header.
const (
	ModuleFlagTitle          = 0x00000001
	ModuleFlagExportsToTitle = 0x00000002
	ModuleFlagSystemDebugger = 0x00000004
	ModuleFlagDLL            = 0x00000008
	ModuleFlagPatch          = 0x00000010
	ModuleFlagPatchFull      = 0x00000020
	ModuleFlagPatchDelta     = 0x00000040
	ModuleFlagUserMode       = 0x00000080
)
