// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package embeddings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mgebre/tagweave/internal/recommend"
)

// Sentinel errors shared by all providers.
var (
	// ErrEmptyInput indicates an attempt to embed empty text or zero bytes.
	ErrEmptyInput = errors.New("cannot embed empty input")

	// ErrProviderUnavailable indicates the model server rejected or failed
	// the request, or the circuit breaker is open.
	ErrProviderUnavailable = errors.New("embedding provider unavailable")
)

// TextProvider maps raw text to a vector in the catalog's text space.
// Implementations must be deterministic for the same input and model, and
// safe for concurrent use.
type TextProvider interface {
	// ModelID identifies the backing model, e.g. "st:all-MiniLM-L6-v2".
	ModelID() string

	// Embed returns the embedding of the given text.
	Embed(ctx context.Context, text string) (recommend.Vector, error)
}

// VisualProvider maps content into the catalog's visual space. EmbedImage
// handles raw image bytes (downloaded images, extracted video thumbnails);
// EmbedText runs the model's text tower, used once at startup to project the
// tag vocabulary into the visual space.
type VisualProvider interface {
	ModelID() string
	EmbedImage(ctx context.Context, data []byte) (recommend.Vector, error)
	EmbedText(ctx context.Context, text string) (recommend.Vector, error)
}

// Config holds the settings for one remote provider.
type Config struct {
	// BaseURL is the model server root, e.g. "http://localhost:8001".
	BaseURL string `koanf:"base_url"`

	// Model is the model name requested from the server.
	Model string `koanf:"model"`

	// APIKey is sent as a bearer token when non-empty.
	APIKey string `koanf:"api_key"`

	// Timeout bounds each HTTP call. Default 30s.
	Timeout time.Duration `koanf:"timeout"`
}

// Validate checks the provider configuration.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("provider base_url is required")
	}
	if c.Model == "" {
		return fmt.Errorf("provider model is required")
	}
	return nil
}

func (c *Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 30 * time.Second
	}
	return c.Timeout
}
