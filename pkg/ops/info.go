package ops

import (
	"fmt"

	"github.com/xenia-tools/xexkit/internal/format"
	"github.com/xenia-tools/xexkit/xex"
)

// ImageInfo summarizes an XEX2 file header.
type ImageInfo struct {
	Path                     string   `json:"path"`
	Size                     int      `json:"size"`
	ModuleFlags              uint32   `json:"module_flags"`
	ModuleFlagNames          []string `json:"module_flag_names,omitempty"`
	SizeOfHeaders            uint32   `json:"size_of_headers"`
	SizeOfDiscardableHeaders uint32   `json:"size_of_discardable_headers"`
	SecurityInfoOffset       uint32   `json:"security_info_offset"`
	DirectoryEntryCount      uint32   `json:"directory_entry_count"`
	OriginalPEName           string          `json:"original_pe_name,omitempty"`
	Privileges               *PrivilegesInfo `json:"privileges,omitempty"`
}

// Info opens the image read-only and reports its header metadata. Optional
// details (original PE name, privileges) are included when present and
// resolvable; their absence is not an error.
func Info(path string) (*ImageInfo, error) {
	if err := checkRegularFile(path); err != nil {
		return nil, err
	}
	x, err := xex.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer x.Close()

	hdr := x.Header()
	info := &ImageInfo{
		Path:                     path,
		Size:                     x.Size(),
		ModuleFlags:              hdr.ModuleFlags,
		ModuleFlagNames:          hdr.ModuleFlagNames(),
		SizeOfHeaders:            hdr.SizeOfHeaders,
		SizeOfDiscardableHeaders: hdr.SizeOfDiscardableHeaders,
		SecurityInfoOffset:       hdr.SecurityInfoOffset,
		DirectoryEntryCount:      hdr.DirectoryEntryCount,
	}
	if name, err := x.OriginalPEName(); err == nil {
		info.OriginalPEName = name
	}
	if value, ok := x.Privileges(); ok {
		info.Privileges = &PrivilegesInfo{
			Value: value,
			Set:   format.PrivilegeNames(value),
		}
	}
	return info, nil
}

// PrivilegesInfo is a decoded Title Privileges bitfield.
type PrivilegesInfo struct {
	// EntryOffset is the absolute offset of the privileges record.
	EntryOffset uint32   `json:"entry_offset"`
	Value       uint32   `json:"value"`
	Set         []string `json:"set,omitempty"`
}

// Privileges opens the image read-only and decodes its Title Privileges
// entry. A missing entry is an error here, unlike in Info.
func Privileges(path string) (*PrivilegesInfo, error) {
	if err := checkRegularFile(path); err != nil {
		return nil, err
	}
	x, err := xex.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer x.Close()

	e, ok := x.Entry(format.PrivilegesKey)
	if !ok {
		return nil, fmt.Errorf("title privileges (key 0x%08X): %w", uint32(format.PrivilegesKey), xex.ErrEntryNotFound)
	}
	return &PrivilegesInfo{
		EntryOffset: e.FileOffset,
		Value:       e.Value,
		Set:         format.PrivilegeNames(e.Value),
	}, nil
}
