// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

// Package catalog manages the tag vocabulary and its embedding artifacts.
//
// The vocabulary is a newline-delimited text file. At startup Ensure loads
// the precomputed embedding artifact (a JSON file stamped with the
// producing model IDs) and falls back to regenerating it through the
// embedding providers when the vocabulary or models changed.
package catalog
