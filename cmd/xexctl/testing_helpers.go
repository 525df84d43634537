package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// makeTestImage writes a minimal synthetic XEX2 image to a temp file and
// returns its path. Each pair is an optional-header (key, value) record.
func makeTestImage(t *testing.T, pairs ...[2]uint32) string {
	t.Helper()
	b := make([]byte, 24+len(pairs)*8)
	copy(b, "XEX2")
	binary.BigEndian.PutUint32(b[8:], uint32(len(b)))  // size of headers
	binary.BigEndian.PutUint32(b[20:], uint32(len(pairs))) // entry count
	for i, kv := range pairs {
		off := 24 + i*8
		binary.BigEndian.PutUint32(b[off:], kv[0])
		binary.BigEndian.PutUint32(b[off+4:], kv[1])
	}
	path := filepath.Join(t.TempDir(), "title.xex")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write test image: %v", err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// resetFlags restores global flag state between table-driven cases.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	clearOutput = ""
	clearDryRun = false
	clearInPlace = false
}
