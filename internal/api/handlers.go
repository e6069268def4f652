// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/mgebre/tagweave/internal/content"
	"github.com/mgebre/tagweave/internal/embeddings"
	"github.com/mgebre/tagweave/internal/metrics"
	"github.com/mgebre/tagweave/internal/models"
	"github.com/mgebre/tagweave/internal/recommend"
	"github.com/mgebre/tagweave/internal/validation"
)

// Version is the service version reported by the info endpoints.
const Version = "1.0.0"

// requestTimeout bounds one recommendation end to end, including media
// downloads and model calls.
const requestTimeout = 60 * time.Second

// Handler serves the recommendation endpoints.
type Handler struct {
	engine      *recommend.Engine
	fetcher     *content.Fetcher
	textModel   string
	visualModel string
}

// NewHandler creates a handler over the given engine and media fetcher.
// The model IDs are reported by GET /model-info.
func NewHandler(engine *recommend.Engine, fetcher *content.Fetcher, textModel, visualModel string) *Handler {
	return &Handler{
		engine:      engine,
		fetcher:     fetcher,
		textModel:   textModel,
		visualModel: visualModel,
	}
}

// Recommend handles POST /api/v1/recommend/json and its legacy alias.
// The text field may carry WordPress HTML; markup is stripped and inline
// <img> tags contribute to the image modality alongside the explicit list.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Request body must be valid JSON", err)
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error: &models.APIError{
				Code:    apiErr.Code,
				Message: apiErr.Message,
				Details: apiErr.Details,
			},
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	text := content.ExtractText(req.Text)
	imageURLs := mergeImageURLs(req.Images, content.ExtractImageURLs(req.Text))

	imageVecs := h.fetcher.EmbedImages(ctx, imageURLs)
	videoVecs := h.fetcher.EmbedVideos(ctx, req.Videos)

	metrics.ModalityItems.WithLabelValues("image").Add(float64(len(imageVecs)))
	metrics.ModalityItems.WithLabelValues("video").Add(float64(len(videoVecs)))
	if text != "" {
		metrics.ModalityItems.WithLabelValues("text").Inc()
	}

	rec, err := h.engine.Recommend(ctx, recommend.Request{
		Text:              text,
		ImageVectors:      imageVecs,
		VideoFrameVectors: videoVecs,
	})
	if err != nil {
		h.respondRecommendError(w, err)
		return
	}

	metrics.RecordRecommendation(time.Since(start), len(rec.Tags))

	message := fmt.Sprintf("Generated %d tag recommendations", len(rec.Tags))
	if rec.Empty() {
		message = "No tags passed the confidence threshold"
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RecommendResponse{
			Tags:             rec.Tags,
			ConfidenceScores: rec.Confidences,
			Message:          message,
		},
		Metadata: models.Metadata{
			Timestamp:        time.Now(),
			ProcessingTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondRecommendError maps engine failures to HTTP statuses. A request
// with nothing to embed is the caller's mistake, not a server fault.
func (h *Handler) respondRecommendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, recommend.ErrNoContent):
		respondError(w, http.StatusBadRequest, "NO_CONTENT",
			"Request carried no text, images, or videos to recommend from", nil)
	case errors.Is(err, embeddings.ErrProviderUnavailable):
		respondError(w, http.StatusServiceUnavailable, "PROVIDER_UNAVAILABLE",
			"An embedding model backend is unavailable, try again later", err)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to generate recommendations", err)
	}
}

// Tags handles GET /api/v1/tags, listing the vocabulary.
func (h *Handler) Tags(w http.ResponseWriter, _ *http.Request) {
	names := h.engine.Catalog().Names()
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.TagListResponse{
			Tags:  names,
			Count: len(names),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// ModelInfo handles GET /api/v1/model-info.
func (h *Handler) ModelInfo(w http.ResponseWriter, _ *http.Request) {
	catalog := h.engine.Catalog()
	cfg := h.engine.Config()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.ModelInfo{
			TextModel:   h.textModel,
			VisualModel: h.visualModel,
			TextDim:     catalog.Dim(recommend.SpaceText),
			VisualDim:   catalog.Dim(recommend.SpaceVisual),
			Weights: map[string]float64{
				"text":  cfg.Weights.Text,
				"image": cfg.Weights.Image,
				"video": cfg.Weights.Video,
			},
			MinConfidence:  cfg.MinConfidence,
			MaxTags:        cfg.MaxTags,
			VocabularySize: catalog.Len(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthResponse{
			Status:  "healthy",
			Service: "tagweave",
			Version: Version,
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// Root handles GET /, a small service card for humans poking at the API.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.ServiceInfo{
			Service: "tagweave",
			Version: Version,
			Endpoints: map[string]string{
				"recommend":  "POST /api/v1/recommend/json",
				"tags":       "GET /api/v1/tags",
				"model_info": "GET /api/v1/model-info",
				"health":     "GET /health",
				"metrics":    "GET /metrics",
			},
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// NotFound is the router's fallback for unknown paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "NOT_FOUND",
		"Unknown endpoint: "+sanitizeLogValue(r.URL.Path), nil)
}

// mergeImageURLs combines explicit image URLs with those extracted from the
// post body, dropping case-sensitive duplicates while preserving order.
func mergeImageURLs(explicit, extracted []string) []string {
	seen := make(map[string]struct{}, len(explicit)+len(extracted))
	merged := make([]string, 0, len(explicit)+len(extracted))
	for _, u := range append(append([]string{}, explicit...), extracted...) {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		merged = append(merged, u)
	}
	return merged
}
