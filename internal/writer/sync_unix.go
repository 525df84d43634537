//go:build linux || freebsd

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// datasync flushes file data without forcing a metadata sync.
func datasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
