// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

/*
Package middleware provides HTTP middleware for the recommendation API.

The stack applied by the router is, outermost first:

	RequestID           // UUID per request, X-Request-ID header, logging context
	PrometheusMetrics   // duration, status, in-flight gauge
	Compression         // gzip for clients that accept it

All middleware operates on http.Handler so it composes with chi's
router-level Use chain alongside the chi-ecosystem middleware (CORS,
rate limiting).

Thread safety: RequestID uses immutable context values, the metrics
middleware uses Prometheus's atomic collectors, and compression pools
gzip writers per request.
*/
package middleware
