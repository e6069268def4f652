// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package embeddings

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/mgebre/tagweave/internal/metrics"
	"github.com/mgebre/tagweave/internal/recommend"
)

// maxResponseBytes caps embedding response bodies. A 1024-dim float64 JSON
// array is well under this.
const maxResponseBytes = 1 << 20

// HTTPTextProvider talks to an OpenAI-compatible embedding endpoint:
//
//	POST {baseURL}/embeddings
//	{"model": "...", "input": "..."}
//
// Sentence-transformer servers exposing that shape work unchanged.
type HTTPTextProvider struct {
	model   string
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewHTTPTextProvider constructs a text provider from config.
func NewHTTPTextProvider(cfg Config) *HTTPTextProvider {
	return &HTTPTextProvider{
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.timeout()},
	}
}

// ModelID identifies the backing model.
func (p *HTTPTextProvider) ModelID() string {
	return "text:" + p.model
}

// Embed returns the text-space embedding of the given text.
func (p *HTTPTextProvider) Embed(ctx context.Context, text string) (recommend.Vector, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	start := time.Now()
	vec, err := p.embed(ctx, text)
	metrics.RecordEmbedding(p.ModelID(), "text", time.Since(start), err)
	return vec, err
}

func (p *HTTPTextProvider) embed(ctx context.Context, text string) (recommend.Vector, error) {
	body, err := json.Marshal(map[string]any{
		"model": p.model,
		"input": text,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/embeddings", bytes.NewReader(body))
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
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse embedding response: %w", err)
	}
	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("embedding response missing embedding")
	}
	return recommend.Vector(parsed.Data[0].Embedding), nil
}
