// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package embeddings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
)

func TestHTTPTextProviderEmbed(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path

		var req struct {
			Model string `json:"model"`
			Input string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Model != "all-MiniLM-L6-v2" || req.Input != "hello world" {
			t.Errorf("unexpected request: %+v", req)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float32{0.1, 0.2, 0.3}}},
		})
	}))
	defer srv.Close()

	p := NewHTTPTextProvider(Config{BaseURL: srv.URL, Model: "all-MiniLM-L6-v2", APIKey: "secret"})

	vec, err := p.Embed(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if len(vec) != 3 {
		t.Errorf("got %d dims, want 3", len(vec))
	}
	if gotPath != "/embeddings" {
		t.Errorf("path = %q, want /embeddings", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("auth = %q, want bearer token", gotAuth)
	}
}

func TestHTTPTextProviderEmptyInput(t *testing.T) {
	p := NewHTTPTextProvider(Config{BaseURL: "http://unused", Model: "m"})
	if _, err := p.Embed(context.Background(), "   "); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestHTTPTextProviderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewHTTPTextProvider(Config{BaseURL: srv.URL, Model: "m"})
	if _, err := p.Embed(context.Background(), "x"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestHTTPVisualProviderBothTowers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/embed/image", "/embed/text":
			_ = json.NewEncoder(w).Encode(map[string]any{"embedding": []float32{1, 0}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := NewHTTPVisualProvider(Config{BaseURL: srv.URL, Model: "clip-vit-base-patch32"})

	if vec, err := p.EmbedImage(context.Background(), []byte{0xFF, 0xD8}); err != nil || len(vec) != 2 {
		t.Errorf("EmbedImage = %v, %v", vec, err)
	}
	if vec, err := p.EmbedText(context.Background(), "photography"); err != nil || len(vec) != 2 {
		t.Errorf("EmbedText = %v, %v", vec, err)
	}
	if _, err := p.EmbedImage(context.Background(), nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty image: err = %v, want ErrEmptyInput", err)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (&Config{}).Validate(); err == nil {
		t.Error("missing base_url must be rejected")
	}
	if err := (&Config{BaseURL: "http://x"}).Validate(); err == nil {
		t.Error("missing model must be rejected")
	}
	if err := (&Config{BaseURL: "http://x", Model: "m"}).Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
