package impress

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// -----------------------------------------------------------------------------
// Filesystem Store
// -----------------------------------------------------------------------------

// fsStore implements Store using the local filesystem.
type fsStore struct {
	root string
}

// NewFS creates a filesystem-backed Store rooted at the given directory.
// The directory must exist.
//
// Consistency: each call is a single os.Stat; results may be stale by the
// time the caller acts on them.
func NewFS(root string) (Store, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("impress: %s is not a directory: %w", root, ErrInvalidPath)
	}
	return &fsStore{root: root}, nil
}

func (f *fsStore) Stat(_ context.Context, name string) (ObjectInfo, error) {
	full, err := f.join(name)
	if err != nil {
		return ObjectInfo{}, err
	}
	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return ObjectInfo{}, ErrNotFound
		}
		return ObjectInfo{}, err
	}
	return ObjectInfo{SizeBytes: info.Size(), IsDir: info.IsDir()}, nil
}

func (f *fsStore) Root() string {
	return f.root
}

// join resolves name under the root. The result must be strictly below the
// root, so the root itself ("", ".") and anything reached through ".." or an
// absolute path is ErrInvalidPath. Symlinks are not resolved.
func (f *fsStore) join(name string) (string, error) {
	if name == "" || filepath.IsAbs(name) {
		return "", ErrInvalidPath
	}

	full := filepath.Join(f.root, name)

	absRoot, err := filepath.Abs(f.root)
	if err != nil {
		return "", err
	}
	absFull, err := filepath.Abs(full)
	if err != nil {
		return "", err
	}

	// Rel rather than a prefix test: a root of "/" already ends in the
	// separator.
	rel, err := filepath.Rel(absRoot, absFull)
	if err != nil || rel == "." || escapes(rel) {
		return "", ErrInvalidPath
	}
	return full, nil
}

// escapes reports whether a relative path climbs out of its base.
func escapes(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// -----------------------------------------------------------------------------
// Memory Store
// -----------------------------------------------------------------------------

// memoryStore implements Store over a fixed set of paths and sizes.
type memoryStore struct {
	root  string
	files map[string]int64
}

// NewMemory creates an in-memory Store that reports the given files as
// present under root. The map is copied; later changes to it are not seen.
//
// root is only used to build paths and is never touched on disk.
func NewMemory(root string, files map[string]int64) Store {
	owned := make(map[string]int64, len(files))
	for p, size := range files {
		if key, ok := memoryKey(p); ok {
			owned[key] = size
		}
	}
	return &memoryStore{root: root, files: owned}
}

func (m *memoryStore) Stat(_ context.Context, name string) (ObjectInfo, error) {
	key, ok := memoryKey(name)
	if !ok {
		return ObjectInfo{}, ErrInvalidPath
	}
	size, found := m.files[key]
	if !found {
		return ObjectInfo{}, ErrNotFound
	}
	return ObjectInfo{SizeBytes: size}, nil
}

func (m *memoryStore) Root() string {
	return m.root
}

// memoryKey normalises a path to slash form without a leading slash.
// Empty paths, "." and anything that climbs out via ".." are rejected.
func memoryKey(p string) (string, bool) {
	key := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(p)), "/")
	if p == "" || key == "" || key == "." || key == ".." || strings.HasPrefix(key, "../") {
		return "", false
	}
	return key, true
}
