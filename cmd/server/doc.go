// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

// Package main is the entry point for the Tagweave server.
//
// Tagweave recommends tags for blog posts by scoring the post's text,
// images, and videos against a tag vocabulary in two embedding spaces,
// fusing the per-modality scores with configurable weights.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered defaults, YAML file, TAGWEAVE_* env vars (Koanf v2)
//  2. Embedding providers: HTTP clients for the text and visual model
//     servers, wrapped with circuit breakers and a Badger-backed cache
//  3. Tag catalog: precomputed embedding artifact, regenerated through the
//     providers when the vocabulary or models changed
//  4. Recommendation engine: per-modality scoring, weighted fusion, ranking
//  5. Media fetcher: rate-limited image/thumbnail downloads
//  6. HTTP server: Chi router with CORS, rate limiting, and Prometheus
//     instrumentation, run under a suture supervisor tree
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, config file (config.yaml), then
// built-in defaults. See the config package for the full key reference.
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: the listener
// stops accepting connections, in-flight requests get the configured
// drain window, and the embedding cache is flushed and closed.
//
// # Example Usage
//
//	export TAGWEAVE_TEXT_BASE_URL=http://models:8001
//	export TAGWEAVE_VISUAL_BASE_URL=http://models:8002
//	export TAGWEAVE_TAGS_PATH=/etc/tagweave/tags.txt
//	./tagweave
package main
