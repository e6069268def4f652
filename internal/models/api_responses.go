// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package models

import (
	"time"
)

// APIResponse is the standardized wrapper used by all HTTP endpoints. It
// provides a consistent structure for both successful and error responses.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"tags": ["photography", "travel"], "confidence_scores": [0.81, 0.64]},
//	  "metadata": {
//	    "timestamp": "2026-08-29T12:00:00Z",
//	    "processing_time_ms": 45
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "NO_CONTENT",
//	    "message": "request carried no text, images, or videos"
//	  },
//	  "metadata": {"timestamp": "2026-08-29T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when the response was generated (RFC3339)
//   - ProcessingTimeMS: End-to-end handler time in milliseconds, including
//     media fetching and model calls
type Metadata struct {
	Timestamp        time.Time `json:"timestamp"`
	ProcessingTimeMS int64     `json:"processing_time_ms,omitempty"`
}

// APIError is a structured error payload.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - NO_CONTENT: Request carried no usable content in any modality
//   - PROVIDER_UNAVAILABLE: An embedding model backend is down
//   - NOT_FOUND: Route doesn't exist
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - INTERNAL_ERROR: Unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
