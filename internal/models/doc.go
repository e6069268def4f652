// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

// Package models defines the JSON request and response shapes shared by the
// HTTP API and its clients, plus the standardized response envelope.
//
// The envelope (APIResponse / Metadata / APIError) wraps every endpoint's
// payload so clients handle success and error uniformly. The payload types
// (RecommendRequest, RecommendResponse, and friends) carry validator tags
// and are deliberately free of behavior.
package models
