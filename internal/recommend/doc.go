// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

// Package recommend implements the multi-modal embedding fusion and ranking
// engine at the heart of Tagweave.
//
// The engine turns heterogeneous blog content (text, N images, N video
// thumbnails) into per-modality similarity scores against a fixed tag
// vocabulary, fuses those scores with configurable modality weights, and
// produces an ordered, deduplicated, thresholded tag list with confidence
// scores.
//
// # Pipeline
//
//	item vectors --ScoreAgainst--> per-item scores
//	             --Aggregate-----> one score-per-tag vector per modality
//	             --Fuse----------> one combined score-per-tag vector
//	             --Rank----------> Recommendation
//
// Every stage is a pure function of its inputs. The only shared state is the
// read-only Catalog, which is safe for concurrent use. The Engine facade wires
// the stages together and is the single entry point for the API layer.
//
// # Score spaces
//
// The catalog carries two independent embedding spaces per tag: a text space
// (produced by the text embedding model) and a visual space (produced by the
// image embedding model). Item vectors are only ever compared against the
// matching space; the two spaces may have different dimensionality and their
// vectors are never numerically related.
//
// This package has no knowledge of HTTP, files, or content fetching.
package recommend
