// Package writer exposes sinks for patched image emission.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes image bytes to a filesystem path atomically.
type FileWriter struct {
	Path string
}

// WriteImage writes buf to the configured path atomically via temp file +
// rename, so a failed write never leaves a partially written output behind.
func (w *FileWriter) WriteImage(buf []byte) error {
	// Temp file must live in the same directory for the rename to be atomic.
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".xexkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	if syncErr := datasync(tmpFile); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // skip cleanup in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}
