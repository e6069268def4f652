// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/mgebre/tagweave/internal/content"
	"github.com/mgebre/tagweave/internal/embeddings"
	"github.com/mgebre/tagweave/internal/recommend"
)

// DefaultConfigPaths lists where a config file is searched, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/tagweave/config.yaml",
	"/etc/tagweave/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all defaults applied. These are
// layered first, then the config file, then environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    90 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		API: APIConfig{
			CORSAllowedOrigins: []string{},
			RateLimitRequests:  60,
			RateLimitWindow:    time.Minute,
			RateLimitDisabled:  false,
		},
		Catalog: CatalogConfig{
			TagsPath:     "tags.txt",
			ArtifactPath: "data/catalog.json",
			Regenerate:   false,
		},
		Text: embeddings.Config{
			BaseURL: "http://localhost:8001",
			Model:   "all-MiniLM-L6-v2",
			Timeout: 30 * time.Second,
		},
		Visual: embeddings.Config{
			BaseURL: "http://localhost:8002",
			Model:   "clip-ViT-B-32",
			Timeout: 30 * time.Second,
		},
		Cache: embeddings.CacheConfig{
			Enabled: true,
			Path:    "data/embed-cache",
			TTL:     7 * 24 * time.Hour,
		},
		Recommend: *recommend.DefaultEngineConfig(),
		Content:   content.DefaultConfig(),
	}
}

// Load reads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in values
//  2. Config file: optional YAML (CONFIG_PATH or the default search paths)
//  3. Environment variables: TAGWEAVE_* overrides, highest priority
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	envProvider := env.Provider("TAGWEAVE_", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file that exists, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps TAGWEAVE_* environment variables (prefix already
// stripped, lowercased) to koanf config paths. Unknown variables are
// ignored rather than guessed at, so a typo never silently creates a key.
var envMappings = map[string]string{
	"host":             "server.host",
	"port":             "server.port",
	"shutdown_timeout": "server.shutdown_timeout",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"cors_origins":        "api.cors_allowed_origins",
	"rate_limit_requests": "api.rate_limit_requests",
	"rate_limit_disabled": "api.rate_limit_disabled",

	"tags_path":          "catalog.tags_path",
	"artifact_path":      "catalog.artifact_path",
	"catalog_regenerate": "catalog.regenerate",

	"text_base_url": "text_provider.base_url",
	"text_model":    "text_provider.model",
	"text_api_key":  "text_provider.api_key",

	"visual_base_url": "visual_provider.base_url",
	"visual_model":    "visual_provider.model",
	"visual_api_key":  "visual_provider.api_key",

	"cache_enabled": "cache.enabled",
	"cache_path":    "cache.path",

	"min_confidence": "recommend.min_confidence",
	"max_tags":       "recommend.max_tags",
	"text_weight":    "recommend.weights.text",
	"image_weight":   "recommend.weights.image",
	"video_weight":   "recommend.weights.video",

	"max_images": "content.max_images",
	"max_videos": "content.max_videos",
}

// envTransformFunc maps environment variable names to koanf config paths.
//
// Examples:
//   - TAGWEAVE_PORT -> server.port
//   - TAGWEAVE_TEXT_BASE_URL -> text_provider.base_url
//   - TAGWEAVE_MIN_CONFIDENCE -> recommend.min_confidence
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, "TAGWEAVE_"))
	if path, ok := envMappings[key]; ok {
		return path
	}
	return ""
}
