// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package embeddings

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/mgebre/tagweave/internal/metrics"
	"github.com/mgebre/tagweave/internal/recommend"
)

// HTTPVisualProvider talks to a CLIP-style model server exposing both towers
// of the model:
//
//	POST {baseURL}/embed/image   {"model": "...", "image": "<base64>"}
//	POST {baseURL}/embed/text    {"model": "...", "text": "..."}
//
// Both respond {"embedding": [...]}. Image and text embeddings share one
// visual space, which is what lets tag names be compared against images.
type HTTPVisualProvider struct {
	model   string
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewHTTPVisualProvider constructs a visual provider from config.
func NewHTTPVisualProvider(cfg Config) *HTTPVisualProvider {
	return &HTTPVisualProvider{
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.timeout()},
	}
}

// ModelID identifies the backing model.
func (p *HTTPVisualProvider) ModelID() string {
	return "visual:" + p.model
}

// EmbedImage returns the visual-space embedding of raw image bytes.
func (p *HTTPVisualProvider) EmbedImage(ctx context.Context, data []byte) (recommend.Vector, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	start := time.Now()
	vec, err := p.post(ctx, "/embed/image", map[string]any{
		"model": p.model,
		"image": base64.StdEncoding.EncodeToString(data),
	})
	metrics.RecordEmbedding(p.ModelID(), "image", time.Since(start), err)
	return vec, err
}

// EmbedText runs the model's text tower, projecting text (tag names) into
// the visual space.
func (p *HTTPVisualProvider) EmbedText(ctx context.Context, text string) (recommend.Vector, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	start := time.Now()
	vec, err := p.post(ctx, "/embed/text", map[string]any{
		"model": p.model,
		"text":  text,
	})
	metrics.RecordEmbedding(p.ModelID(), "text", time.Since(start), err)
	return vec, err
}

func (p *HTTPVisualProvider) post(ctx context.Context, path string, payload map[string]any) (recommend.Vector, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrProviderUnavailable, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed struct {
		Embedding []float32 `json:"embedding"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse embedding response: %w", err)
	}
	if len(parsed.Embedding) == 0 {
		return nil, fmt.Errorf("embedding response missing embedding")
	}
	return recommend.Vector(parsed.Embedding), nil
}
