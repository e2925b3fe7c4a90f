// Package impress resolves a fixed catalog of image files against a
// directory.
//
// The catalog is immutable and known at build time. Every query is answered
// fresh from the filesystem: nothing is cached, nothing is written, and no
// file contents are read.
package impress

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// -----------------------------------------------------------------------------
// Core types
// -----------------------------------------------------------------------------

// Entry is the resolution state of a single catalog entry at query time.
type Entry struct {
	// Name is the catalog filename.
	Name string `json:"name"`

	// Path is the candidate path: the base directory joined with Name.
	Path string `json:"path"`

	// Exists reports whether Path existed when it was checked.
	Exists bool `json:"exists"`

	// SizeBytes is the size reported by the store. Zero when absent.
	SizeBytes int64 `json:"size_bytes"`
}

// Info summarises a catalog against a base directory.
//
// ExistingCount always equals len(ExistingFiles), and ExistingFiles keeps
// catalog order.
type Info struct {
	TotalCount    int      `json:"total_count"`
	ExistingCount int      `json:"existing_count"`
	Catalog       []string `json:"catalog"`
	ExistingFiles []string `json:"existing_files"`
	BaseDirectory string   `json:"base_directory"`
	Description   string   `json:"description"`
}

// ObjectInfo is the metadata a Store reports for an existing path.
type ObjectInfo struct {
	SizeBytes int64
	IsDir     bool
}

// -----------------------------------------------------------------------------
// Store interface
// -----------------------------------------------------------------------------

// Store abstracts read-only metadata access to a rooted directory.
//
// Paths are relative to Root. Implementations must reject paths that escape
// the root with ErrInvalidPath.
type Store interface {
	// Stat returns metadata for a path, or ErrNotFound.
	Stat(ctx context.Context, path string) (ObjectInfo, error)

	// Root returns the directory paths are resolved against.
	Root() string
}

// -----------------------------------------------------------------------------
// Codec and Compressor interfaces
// -----------------------------------------------------------------------------

// Codec serialises resolved entries for Export.
type Codec interface {
	// Name returns the codec identifier (for example, "jsonl" or "parquet").
	Name() string

	// Extension returns the file extension (for example, ".jsonl").
	Extension() string

	// Encode writes entries to the given writer.
	Encode(w io.Writer, entries []Entry) error

	// Decode reads entries from the given reader.
	Decode(r io.Reader) ([]Entry, error)
}

// Compressor wraps export streams.
type Compressor interface {
	// Name returns the compressor identifier (for example, "gzip", "zstd", "noop").
	Name() string

	// Extension returns the file extension (for example, ".gz", ".zst", "").
	Extension() string

	// Compress wraps a writer with compression.
	Compress(w io.Writer) (io.WriteCloser, error)

	// Decompress wraps a reader with decompression.
	Decompress(r io.Reader) (io.ReadCloser, error)
}

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

// Error sentinel values for common conditions.
var (
	// ErrUnknownEntry indicates a name that is not part of the catalog.
	ErrUnknownEntry = errUnknownEntry{}

	// ErrEntryNotFound indicates a catalog entry whose file is absent.
	ErrEntryNotFound = errEntryNotFound{}

	// ErrNotFound indicates a store path does not exist.
	ErrNotFound = errNotFound{}

	// ErrInvalidPath indicates a path outside a store's root, or a root
	// that is not a directory.
	ErrInvalidPath = errInvalidPath{}

	// ErrInvalidCatalog indicates a catalog that cannot be constructed.
	ErrInvalidCatalog = errInvalidCatalog{}

	// ErrInvalidFormat indicates export data that cannot be decoded.
	ErrInvalidFormat = errInvalidFormat{}
)

type errUnknownEntry struct{}

func (errUnknownEntry) Error() string { return "unknown catalog entry" }

type errEntryNotFound struct{}

func (errEntryNotFound) Error() string { return "catalog entry not found" }

type errNotFound struct{}

func (errNotFound) Error() string { return "not found" }

type errInvalidPath struct{}

func (errInvalidPath) Error() string { return "invalid path" }

type errInvalidCatalog struct{}

func (errInvalidCatalog) Error() string { return "invalid catalog" }

type errInvalidFormat struct{}

func (errInvalidFormat) Error() string { return "invalid export format" }

// UnknownEntryError is returned when a requested name is not in the catalog.
// It matches ErrUnknownEntry under errors.Is.
type UnknownEntryError struct {
	Name    string
	Catalog []string
}

func (e *UnknownEntryError) Error() string {
	quoted := make([]string, len(e.Catalog))
	for i, n := range e.Catalog {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return fmt.Sprintf("impress: %q is not in the catalog; available entries: [%s]",
		e.Name, strings.Join(quoted, ", "))
}

// Is reports whether target is ErrUnknownEntry.
func (e *UnknownEntryError) Is(target error) bool {
	return target == ErrUnknownEntry
}

// EntryNotFoundError is returned when a catalog entry has no file at its path.
// It matches ErrEntryNotFound under errors.Is.
type EntryNotFoundError struct {
	Name string
	Path string
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("impress: file not found: %s", e.Path)
}

// Is reports whether target is ErrEntryNotFound.
func (e *EntryNotFoundError) Is(target error) bool {
	return target == ErrEntryNotFound
}
