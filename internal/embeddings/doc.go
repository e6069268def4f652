// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

// Package embeddings provides the embedding model providers the
// recommendation core depends on: a text model mapping raw text into the
// catalog's text space and a visual model mapping images (and, through its
// text tower, tag names) into the visual space.
//
// Providers are remote HTTP model servers. Two composable wrappers harden
// them:
//
//   - a circuit breaker (sony/gobreaker) that sheds load when the model
//     server is unavailable instead of letting every request time out, and
//   - an optional BadgerDB-backed cache keyed by a content hash, so repeated
//     edits of the same post do not re-embed identical inputs. Only provider
//     outputs are cached; recommendation results never are.
//
// Providers are constructed once at bootstrap, shared read-only across
// concurrent requests, and must be deterministic for identical inputs.
package embeddings
