// Package testutil provides filesystem fixtures for tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// RemoveAll removes the path and any children. Errors are ignored.
func RemoveAll(path string) { _ = os.RemoveAll(path) }

// TempDir creates a fresh directory that is removed when the test ends.
func TempDir(t testing.TB) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "impress-test-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { RemoveAll(dir) })
	return dir
}

// WriteFiles creates each named file under dir, filled with size bytes.
func WriteFiles(t testing.TB, dir string, files map[string]int) {
	t.Helper()
	for name, size := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, bytes.Repeat([]byte{0x89}, size), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}
