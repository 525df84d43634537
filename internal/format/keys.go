package format

import "fmt"

// Optional-header key IDs. The high 24 bits identify the field; the low byte
// encodes how the value dword is interpreted (see KindOf).
const (
	KeyResourceInfo           = 0x000002FF
	KeyBaseFileFormat         = 0x000003FF
	KeyBaseReference          = 0x00000405
	KeyDeltaPatchDescriptor   = 0x000005FF
	KeyBoundingPath           = 0x000080FF
	KeyDeviceID               = 0x00008105
	KeyOriginalBaseAddress    = 0x00010001
	KeyEntryPoint             = 0x00010100
	KeyImageBaseAddress       = 0x00010201
	KeyImportLibraries        = 0x000103FF
	KeyChecksumTimestamp      = 0x00018002
	KeyEnabledForCallcap      = 0x00018102
	KeyEnabledForFastcap      = 0x00018200
	KeyOriginalPEName         = 0x000183FF
	KeyStaticLibraries        = 0x000200FF
	KeyTLSInfo                = 0x00020104
	KeyDefaultStackSize       = 0x00020200
	KeyDefaultFSCacheSize     = 0x00020301
	KeyDefaultHeapSize        = 0x00020401
	KeyPageHeapSizeFlags      = 0x00028002
	KeyTitlePrivileges        = 0x00030000
	KeyExecutionInfo          = 0x00040006
	KeyTitleWorkspaceSize     = 0x00040201
	KeyGameRatings            = 0x00040310
	KeyLANKey                 = 0x00040404
	KeyXbox360Logo            = 0x000405FF
	KeyMultidiscMediaIDs      = 0x000406FF
	KeyAlternateTitleIDs      = 0x000407FF
	KeyAdditionalTitleMemory  = 0x00040801
	KeyExportsByName          = 0x00E10402
)

var keyNames = map[uint32]string{
	KeyResourceInfo:          "Resource Info",
	KeyBaseFileFormat:        "Base File Format",
	KeyBaseReference:         "Base Reference",
	KeyDeltaPatchDescriptor:  "Delta Patch Descriptor",
	KeyBoundingPath:          "Bounding Path",
	KeyDeviceID:              "Device ID",
	KeyOriginalBaseAddress:   "Original Base Address",
	KeyEntryPoint:            "Entry Point",
	KeyImageBaseAddress:      "Image Base Address",
	KeyImportLibraries:       "Import Libraries",
	KeyChecksumTimestamp:     "Checksum & Timestamp",
	KeyEnabledForCallcap:     "Enabled For Callcap",
	KeyEnabledForFastcap:     "Enabled For Fastcap",
	KeyOriginalPEName:        "Original PE Name",
	KeyStaticLibraries:       "Static Libraries",
	KeyTLSInfo:               "TLS Info",
	KeyDefaultStackSize:      "Default Stack Size",
	KeyDefaultFSCacheSize:    "Default Filesystem Cache Size",
	KeyDefaultHeapSize:       "Default Heap Size",
	KeyPageHeapSizeFlags:     "Page Heap Size & Flags",
	KeyTitlePrivileges:       "Title Privileges",
	KeyExecutionInfo:         "Execution Info",
	KeyTitleWorkspaceSize:    "Title Workspace Size",
	KeyGameRatings:           "Game Ratings",
	KeyLANKey:                "LAN Key",
	KeyXbox360Logo:           "Xbox 360 Logo",
	KeyMultidiscMediaIDs:     "Multidisc Media IDs",
	KeyAlternateTitleIDs:     "Alternate Title IDs",
	KeyAdditionalTitleMemory: "Additional Title Memory",
	KeyExportsByName:         "Exports By Name",
}

// KeyName returns a human-readable name for key, or a hex placeholder for
// keys this package does not know about.
func KeyName(key uint32) string {
	if name, ok := keyNames[key]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%08X)", key)
}

// EntryKind classifies how a directory entry's value dword is interpreted.
type EntryKind int

const (
	// KindImmediate means the value dword holds the field itself.
	KindImmediate EntryKind = iota
	// KindOffset means the value is an absolute offset to a block whose size
	// is fixed by the key's low byte (in dwords).
	KindOffset
	// KindOffsetSized means the value is an absolute offset to a block whose
	// first dword is its total byte size.
	KindOffsetSized
)

// KindOf derives the storage shape of a key's value from the key's low byte:
// 0xFF marks variable-sized out-of-line data, 0x00 and 0x01 mark immediate
// values, anything else is the out-of-line block size in dwords.
func KindOf(key uint32) EntryKind {
	switch b := byte(key); {
	case b == 0xFF:
		return KindOffsetSized
	case b <= 0x01:
		return KindImmediate
	default:
		return KindOffset
	}
}

func (k EntryKind) String() string {
	switch k {
	case KindImmediate:
		return "immediate"
	case KindOffset:
		return "offset"
	case KindOffsetSized:
		return "offset+size"
	default:
		return "invalid"
	}
}
