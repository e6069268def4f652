// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package models

// RecommendRequest is the body accepted by POST /api/v1/recommend/json and
// its legacy alias POST /api/v1/recommend.
//
// Fields:
//   - Text: Post body, plain text or WordPress/Gutenberg HTML. Markup is
//     stripped server-side before embedding.
//   - Images: Image URLs to embed (capped server-side, excess ignored).
//   - Videos: Video URLs; YouTube links resolve to thumbnails.
//
// At least one field must carry content, otherwise the request is rejected
// with NO_CONTENT.
//
// Example:
//
//	{
//	  "text": "<p>Hiking the Simien Mountains at dawn...</p>",
//	  "images": ["https://example.com/ridge.jpg"],
//	  "videos": ["https://www.youtube.com/watch?v=dQw4w9WgXcQ"]
//	}
type RecommendRequest struct {
	Text   string   `json:"text"`
	Images []string `json:"images" validate:"omitempty,dive,url"`
	Videos []string `json:"videos" validate:"omitempty,dive,url"`
}

// RecommendResponse is the success payload for the recommend endpoints.
// Tags are sorted by descending confidence; the two slices are parallel.
type RecommendResponse struct {
	Tags             []string  `json:"tags"`
	ConfidenceScores []float64 `json:"confidence_scores"`
	Message          string    `json:"message"`
}

// HealthResponse reports service liveness for GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ServiceInfo is returned from GET / as a human-readable service card.
type ServiceInfo struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// TagListResponse lists the tag vocabulary for GET /tags.
type TagListResponse struct {
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

// ModelInfo describes the loaded models and fusion settings for
// GET /model-info.
type ModelInfo struct {
	TextModel      string             `json:"text_model"`
	VisualModel    string             `json:"visual_model"`
	TextDim        int                `json:"text_dim"`
	VisualDim      int                `json:"visual_dim"`
	Weights        map[string]float64 `json:"weights"`
	MinConfidence  float64            `json:"min_confidence"`
	MaxTags        int                `json:"max_tags"`
	VocabularySize int                `json:"vocabulary_size"`
}
