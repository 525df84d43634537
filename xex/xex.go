// Package xex opens XEX2 images and exposes their header directory for
// inspection and targeted patching. Only the always-unencrypted header region
// is interpreted; the image payload is carried through untouched.
package xex

import (
	"errors"
	"fmt"
	"os"

	"github.com/xenia-tools/xexkit/internal/format"
	"github.com/xenia-tools/xexkit/internal/mmfile"
)

// Re-exported parse failure kinds, so callers can classify errors without
// importing the internal format package.
var (
	// ErrBadMagic indicates the file did not start with the XEX2 tag.
	ErrBadMagic = format.ErrBadMagic
	// ErrTruncated indicates the file ended inside the header or directory.
	ErrTruncated = format.ErrTruncated
	// ErrEntryNotFound indicates a requested directory entry was missing.
	ErrEntryNotFound = format.ErrNotFound
)

// ErrReadOnly is returned when a mutation is attempted on an image opened
// with Open rather than Load.
var ErrReadOnly = errors.New("xex: image opened read-only")

// Xex is an opened XEX2 image: the raw bytes plus the parsed header and
// optional-header directory. The buffer has a single owner; images opened
// with Open are backed by a read-only mapping, images opened with Load own a
// private mutable copy.
type Xex struct {
	path     string
	data     []byte
	readonly bool
	cleanup  func() error
	hdr      format.Header
	dir      []format.DirectoryEntry
}

// Open maps the image at path read-only and parses its header and directory.
// Use it for inspection; mutations require Load.
func Open(path string) (*Xex, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	x := &Xex{path: path, data: data, readonly: true, cleanup: cleanup}
	if err := x.parse(); err != nil {
		_ = cleanup()
		return nil, err
	}
	return x, nil
}

// Load reads the image at path into a private mutable buffer and parses its
// header and directory.
func Load(path string) (*Xex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	x := &Xex{path: path, data: data}
	if err := x.parse(); err != nil {
		return nil, err
	}
	return x, nil
}

// Parse wraps a caller-owned buffer without copying. The buffer is treated
// as mutable; the caller must not alias it elsewhere.
func Parse(data []byte) (*Xex, error) {
	x := &Xex{data: data}
	if err := x.parse(); err != nil {
		return nil, err
	}
	return x, nil
}

func (x *Xex) parse() error {
	hdr, err := format.ParseHeader(x.data)
	if err != nil {
		return err
	}
	dir, err := format.ParseDirectory(x.data, format.DirectoryBase, hdr.DirectoryEntryCount)
	if err != nil {
		return err
	}
	x.hdr = hdr
	x.dir = dir
	return nil
}

// Close releases the mapping for images opened with Open. It is a no-op for
// loaded images.
func (x *Xex) Close() error {
	if x.cleanup != nil {
		cleanup := x.cleanup
		x.cleanup = nil
		x.data = nil
		return cleanup()
	}
	return nil
}

// Path returns the filesystem path the image came from, if any.
func (x *Xex) Path() string { return x.path }

// Bytes returns the backing buffer. Mutating it on a read-only image is
// undefined; use the patch operations instead.
func (x *Xex) Bytes() []byte { return x.data }

// Size returns the image length in bytes.
func (x *Xex) Size() int { return len(x.data) }

// Header returns the parsed file header.
func (x *Xex) Header() format.Header { return x.hdr }

// Directory returns the optional-header entries in on-disk order. The slice
// is shared; callers must not modify it.
func (x *Xex) Directory() []format.DirectoryEntry { return x.dir }

// Entry returns the first directory entry with the given key.
func (x *Xex) Entry(key uint32) (format.DirectoryEntry, bool) {
	return format.FindEntry(x.dir, key)
}

// Privileges returns the Title Privileges bitfield, when present.
func (x *Xex) Privileges() (uint32, bool) {
	e, ok := x.Entry(format.PrivilegesKey)
	if !ok {
		return 0, false
	}
	return e.Value, ok
}

// ImageWriter persists a complete image buffer.
type ImageWriter interface {
	WriteImage(buf []byte) error
}

// Save writes the current image buffer through w.
func (x *Xex) Save(w ImageWriter) error {
	if err := w.WriteImage(x.data); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	return nil
}
