package impress

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/justapithecus/impress/internal/logging"
)

// Resolver answers catalog queries against a Store.
//
// A Resolver holds only immutable state. Every query re-reads the store, so
// results reflect the filesystem at call time and nothing more: a resolved
// path may be gone by the time the caller opens it.
type Resolver struct {
	catalog *Catalog
	store   Store
	logger  *zap.Logger
}

// NewResolver creates a resolver for catalog.
//
// Defaults:
//   - Store: the local filesystem rooted at the current working directory
//   - Logger: logging.Default()
//
// Use WithBaseDir, WithStore and WithLogger to override.
func NewResolver(catalog *Catalog, opts ...Option) (*Resolver, error) {
	if catalog == nil {
		return nil, errors.New("impress: catalog is required")
	}

	cfg := &resolverConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	store := cfg.store
	if store == nil {
		dir := cfg.baseDir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("impress: working directory: %w", err)
			}
			dir = wd
		}
		fs, err := NewFS(dir)
		if err != nil {
			return nil, fmt.Errorf("impress: base directory %s: %w", dir, err)
		}
		store = fs
	}

	logger := cfg.logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Resolver{
		catalog: catalog,
		store:   store,
		logger:  logger,
	}, nil
}

// At returns a resolver with the same catalog and logger that resolves
// against dir on the local filesystem.
func (r *Resolver) At(dir string) (*Resolver, error) {
	return NewResolver(r.catalog, WithBaseDir(dir), WithLogger(r.logger))
}

// BaseDir returns the directory entries are resolved against.
func (r *Resolver) BaseDir() string {
	return r.store.Root()
}

// Catalog returns a copy of the catalog names in their fixed order.
// It does not touch the store.
func (r *Resolver) Catalog() []string {
	return r.catalog.Names()
}

// Resolve returns the path of a catalog entry whose file exists.
//
// Returns an *UnknownEntryError if name is not in the catalog, and an
// *EntryNotFoundError if its file is absent. Other store failures are
// returned wrapped.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	e, err := r.ResolveEntry(ctx, name)
	if err != nil {
		return "", err
	}
	return e.Path, nil
}

// ResolveEntry is Resolve, returning the full entry including its size.
func (r *Resolver) ResolveEntry(ctx context.Context, name string) (Entry, error) {
	if !r.catalog.Contains(name) {
		return Entry{}, &UnknownEntryError{Name: name, Catalog: r.catalog.Names()}
	}

	e, err := r.entry(ctx, name)
	if err != nil {
		return Entry{}, err
	}
	if !e.Exists {
		return Entry{}, &EntryNotFoundError{Name: name, Path: e.Path}
	}
	return e, nil
}

// ResolveAll returns the paths of every catalog entry whose file exists, in
// catalog order.
//
// Missing entries are skipped with a warning; entries whose check failed are
// skipped with the check-failed warning only. The call never fails. The
// result is empty, not nil, when nothing exists.
func (r *Resolver) ResolveAll(ctx context.Context) []string {
	paths := make([]string, 0, r.catalog.Len())
	for _, c := range r.entries(ctx) {
		if c.failed {
			continue
		}
		if !c.Exists {
			r.logger.Warn("catalog entry not found",
				logging.Name(c.Name),
				logging.BaseDir(r.BaseDir()),
			)
			continue
		}
		paths = append(paths, c.Path)
	}
	return paths
}

// Entries returns the resolution state of every catalog entry, in catalog
// order, including absent ones.
func (r *Resolver) Entries(ctx context.Context) []Entry {
	checked := r.entries(ctx)
	out := make([]Entry, len(checked))
	for i, c := range checked {
		out[i] = c.Entry
	}
	return out
}

// Describe summarises the catalog against the base directory.
func (r *Resolver) Describe(ctx context.Context) Info {
	existing := make([]string, 0, r.catalog.Len())
	for _, c := range r.entries(ctx) {
		if c.Exists {
			existing = append(existing, c.Name)
		}
	}
	return Info{
		TotalCount:    r.catalog.Len(),
		ExistingCount: len(existing),
		Catalog:       r.catalog.Names(),
		ExistingFiles: existing,
		BaseDirectory: r.BaseDir(),
		Description:   r.catalog.Description(),
	}
}

// checkedEntry is an Entry plus whether its store check failed. A failed
// entry reports Exists=false without having been shown absent.
type checkedEntry struct {
	Entry
	failed bool
}

// entries stats every catalog entry. Store failures other than not-found are
// logged once here and marked failed.
func (r *Resolver) entries(ctx context.Context) []checkedEntry {
	out := make([]checkedEntry, 0, r.catalog.Len())
	for _, name := range r.catalog.names {
		e, err := r.entry(ctx, name)
		if err != nil {
			r.logger.Warn("catalog entry check failed",
				logging.Name(name),
				logging.BaseDir(r.BaseDir()),
				logging.Err(err),
			)
		}
		out = append(out, checkedEntry{Entry: e, failed: err != nil})
	}
	return out
}

// entry stats a single name. A missing file is not an error.
func (r *Resolver) entry(ctx context.Context, name string) (Entry, error) {
	e := Entry{Name: name, Path: filepath.Join(r.store.Root(), name)}
	info, err := r.store.Stat(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return e, nil
		}
		return e, fmt.Errorf("impress: check %s: %w", e.Path, err)
	}
	e.Exists = true
	e.SizeBytes = info.SizeBytes
	return e, nil
}
