package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xex")
	w := &FileWriter{Path: path}
	want := []byte{'X', 'E', 'X', '2', 0, 0, 0, 1}
	if err := w.WriteImage(want); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("written bytes mismatch: got % X want % X", got, want)
	}
}

func TestFileWriterOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xex")
	if err := os.WriteFile(path, []byte("old contents"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	w := &FileWriter{Path: path}
	if err := w.WriteImage([]byte("new")); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "new" {
		t.Fatalf("overwrite failed, got %q", got)
	}
}

func TestFileWriterLeavesNoTempOnFailure(t *testing.T) {
	dir := t.TempDir()
	// Target path inside a missing directory, so CreateTemp fails.
	w := &FileWriter{Path: filepath.Join(dir, "missing", "out.xex")}
	if err := w.WriteImage([]byte{1}); err == nil {
		t.Fatalf("expected error for unwritable destination")
	}
	left, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("temp files left behind: %v", left)
	}
}

func TestMemWriterCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	w := &MemWriter{}
	if err := w.WriteImage(src); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}
	src[0] = 9
	if w.Buf[0] != 1 {
		t.Fatalf("MemWriter aliased the caller's buffer")
	}
}
