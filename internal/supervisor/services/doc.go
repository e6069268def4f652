// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

// Package services wraps the application's long-running components as
// suture.Service implementations: the HTTP server and the embedding cache
// GC loop. Each wrapper translates the component's own lifecycle into
// suture's context-driven Serve contract.
package services
