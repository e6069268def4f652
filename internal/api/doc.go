// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

/*
Package api provides the HTTP surface of the recommendation service,
built on the Chi router with the chi-ecosystem CORS and rate-limiting
middleware.

Endpoints:

	POST /api/v1/recommend/json   structured request {text, images[], videos[]}
	POST /api/v1/recommend        legacy alias, same body
	GET  /api/v1/tags             tag vocabulary
	GET  /api/v1/model-info       loaded models and fusion settings
	GET  /health                  liveness
	GET  /                        service card
	GET  /metrics                 Prometheus exposition

All responses use the models.APIResponse envelope. A request that
carries no usable content in any modality is a client error (NO_CONTENT,
HTTP 400), not a server failure; embedding backend outages surface as
PROVIDER_UNAVAILABLE (HTTP 503).
*/
package api
