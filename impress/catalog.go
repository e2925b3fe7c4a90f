package impress

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultDescription describes the reference impression-wave dataset.
const DefaultDescription = "ICT Impression Wave Verification Screenshots from 2025-08-17"

// defaultNames is the reference screenshot set, in capture order.
var defaultNames = []string{
	"스크린샷 2025-08-17 오후 5.49.14.png",
	"스크린샷 2025-08-17 오후 5.52.20.png",
	"스크린샷 2025-08-17 오후 5.53.59.png",
	"스크린샷 2025-08-17 오후 5.56.35.png",
	"스크린샷 2025-08-17 오후 5.58.16.png",
	"스크린샷 2025-08-17 오후 6.02.05.png",
	"스크린샷 2025-08-17 오후 6.11.50.png",
	"스크린샷 2025-08-17 오후 6.13.30.png",
	"스크린샷 2025-08-17 오후 6.15.07.png",
}

// Catalog is an ordered, immutable list of known filenames.
//
// A Catalog never changes after construction; accessors return copies.
type Catalog struct {
	names       []string
	index       map[string]int
	description string
}

// NewCatalog creates a catalog from the given names, preserving order.
//
// Names must be non-empty, unique, plain filenames: no path separators and
// not "." or "..". Returns ErrInvalidCatalog otherwise. An empty catalog is
// valid.
func NewCatalog(description string, names ...string) (*Catalog, error) {
	index := make(map[string]int, len(names))
	for i, name := range names {
		if err := validateName(name); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidCatalog, i, err)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate entry %q", ErrInvalidCatalog, name)
		}
		index[name] = i
	}

	owned := make([]string, len(names))
	copy(owned, names)
	return &Catalog{
		names:       owned,
		index:       index,
		description: description,
	}, nil
}

// DefaultCatalog returns the reference impression-wave screenshot catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultDescription, defaultNames...)
	if err != nil {
		panic(fmt.Sprintf("impress: default catalog: %v", err))
	}
	return c
}

// Names returns a copy of the catalog in its fixed order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Contains reports whether name is a catalog entry. Matching is exact and
// case-sensitive.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Description returns the fixed human-readable description.
func (c *Catalog) Description() string {
	return c.description
}

func validateName(name string) error {
	switch {
	case name == "":
		return errors.New("empty name")
	case name == "." || name == "..":
		return fmt.Errorf("name %q refers to a directory", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("name %q contains a path separator", name)
	}
	return nil
}
