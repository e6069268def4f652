// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package recommend

import (
	"fmt"
	"strings"
)

// Space identifies which of the catalog's two embedding spaces a vector
// belongs to. Text and visual embeddings live in unrelated spaces of possibly
// different dimensionality and are never compared across spaces.
type Space int

const (
	// SpaceText is the embedding space of the text model.
	SpaceText Space = iota
	// SpaceVisual is the embedding space of the image/video model.
	SpaceVisual
)

// String returns a human-readable name for the space.
func (s Space) String() string {
	switch s {
	case SpaceText:
		return "text"
	case SpaceVisual:
		return "visual"
	default:
		return "unknown"
	}
}

// TagEntry pairs a tag name with its precomputed embeddings in both spaces.
// The name is shared across both representations; the two embeddings need not
// be numerically related.
type TagEntry struct {
	// Name is the tag as it appears in the vocabulary, trimmed.
	Name string `json:"name"`

	// Text is the tag's embedding in the text model's space.
	Text Vector `json:"text"`

	// Visual is the tag's embedding in the image model's space.
	Visual Vector `json:"visual"`
}

// Catalog is an immutable, ordered list of candidate tags with their
// precomputed embeddings. It is built once at process start and treated as
// read-only for the lifetime of the process, so concurrent reads need no
// locking.
//
// Entry order is significant: the ranker uses it as the stable tie-break for
// equal confidences.
type Catalog struct {
	entries   []TagEntry
	textDim   int
	visualDim int
}

// NewCatalog validates the entries and builds a catalog.
//
// Validation enforces the vocabulary invariants: at least one entry, names
// non-empty after trimming and unique case-insensitively, and consistent
// embedding dimensionality within each space across all entries. Entry order
// is preserved.
func NewCatalog(entries []TagEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]TagEntry, 0, len(entries))
	textDim := entries[0].Text.Dim()
	visualDim := entries[0].Visual.Dim()

	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyTagName, i)
		}

		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, name)
		}
		seen[key] = struct{}{}

		if e.Text.Dim() != textDim {
			return nil, fmt.Errorf("%w: tag %q text embedding has dim %d, want %d",
				ErrDimensionMismatch, name, e.Text.Dim(), textDim)
		}
		if e.Visual.Dim() != visualDim {
			return nil, fmt.Errorf("%w: tag %q visual embedding has dim %d, want %d",
				ErrDimensionMismatch, name, e.Visual.Dim(), visualDim)
		}

		e.Name = name
		out = append(out, e)
	}

	return &Catalog{
		entries:   out,
		textDim:   textDim,
		visualDim: visualDim,
	}, nil
}

// Len returns the number of tags in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entry returns the catalog entry at position i.
func (c *Catalog) Entry(i int) TagEntry {
	return c.entries[i]
}

// Names returns the tag names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Dim returns the embedding dimensionality of the requested space.
func (c *Catalog) Dim(space Space) int {
	if space == SpaceVisual {
		return c.visualDim
	}
	return c.textDim
}

// embedding returns the entry's vector in the requested space.
func (e TagEntry) embedding(space Space) Vector {
	if space == SpaceVisual {
		return e.Visual
	}
	return e.Text
}
