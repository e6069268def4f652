// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package config

import (
	"fmt"
	"time"

	"github.com/mgebre/tagweave/internal/content"
	"github.com/mgebre/tagweave/internal/embeddings"
	"github.com/mgebre/tagweave/internal/recommend"
)

// Config is the root configuration for the service.
type Config struct {
	Server    ServerConfig           `koanf:"server"`
	Logging   LoggingConfig          `koanf:"logging"`
	API       APIConfig              `koanf:"api"`
	Catalog   CatalogConfig          `koanf:"catalog"`
	Text      embeddings.Config      `koanf:"text_provider"`
	Visual    embeddings.Config      `koanf:"visual_provider"`
	Cache     embeddings.CacheConfig `koanf:"cache"`
	Recommend recommend.EngineConfig `koanf:"recommend"`
	Content   content.Config         `koanf:"content"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes file:line in every event.
	Caller bool `koanf:"caller"`
}

// APIConfig holds the HTTP surface settings: CORS for the WordPress caller
// and per-IP rate limiting.
type APIConfig struct {
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
	RateLimitRequests  int           `koanf:"rate_limit_requests"`
	RateLimitWindow    time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled  bool          `koanf:"rate_limit_disabled"`
}

// CatalogConfig locates the tag vocabulary and its embedding artifacts.
type CatalogConfig struct {
	// TagsPath is the newline-delimited vocabulary file.
	TagsPath string `koanf:"tags_path"`

	// ArtifactPath is where the precomputed tag embeddings live. When the
	// file is missing or stale the catalog is regenerated from the
	// providers at startup.
	ArtifactPath string `koanf:"artifact_path"`

	// Regenerate forces recomputation even when a fresh artifact exists.
	Regenerate bool `koanf:"regenerate"`
}

// Validate checks the configuration sections that would otherwise fail at
// first request time, so a bad deployment dies at startup.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Catalog.TagsPath == "" {
		return fmt.Errorf("catalog.tags_path is required")
	}
	if err := c.Text.Validate(); err != nil {
		return fmt.Errorf("text_provider: %w", err)
	}
	if err := c.Visual.Validate(); err != nil {
		return fmt.Errorf("visual_provider: %w", err)
	}
	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}
