// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

// Package supervisor builds the suture/v4 supervision tree that keeps the
// service's long-running components alive. Supervisor events are logged
// through sutureslog, bridged into the service's zerolog output.
package supervisor
