// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

// Package content acquires a post's raw material for the recommendation
// core: it extracts plain text and image URLs from WordPress/Gutenberg HTML,
// resolves video URLs to representative thumbnail images, downloads the
// items, and turns them into visual-space embedding vectors.
//
// Per-item failures are the rule here, not the exception: a dead image link
// or an unreachable video host is logged, counted, and skipped, shrinking
// that modality's item list (possibly to empty). A single bad item never
// aborts the recommendation.
package content
