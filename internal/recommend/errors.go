// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package recommend

import "errors"

// Sentinel errors for the recommendation core. Callers match them with
// errors.Is; wrapped variants carry per-call detail.
var (
	// ErrDimensionMismatch indicates an embedding vector's length disagrees
	// with the catalog's stored dimensionality for the requested space.
	// This is a configuration-level fault, never retried per request.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrNoContent indicates a request supplied no text and no embeddable
	// images or video frames, so there is nothing to score.
	ErrNoContent = errors.New("no content provided")

	// ErrEmptyCatalog indicates a catalog was constructed with zero tags.
	ErrEmptyCatalog = errors.New("tag catalog is empty")

	// ErrDuplicateTag indicates two catalog entries share a name after
	// trimming and case folding.
	ErrDuplicateTag = errors.New("duplicate tag name")

	// ErrEmptyTagName indicates a catalog entry's name is empty after
	// trimming.
	ErrEmptyTagName = errors.New("empty tag name")
)
