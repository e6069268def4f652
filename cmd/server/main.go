// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/mgebre/tagweave/internal/api"
	"github.com/mgebre/tagweave/internal/catalog"
	"github.com/mgebre/tagweave/internal/config"
	"github.com/mgebre/tagweave/internal/content"
	"github.com/mgebre/tagweave/internal/embeddings"
	"github.com/mgebre/tagweave/internal/logging"
	"github.com/mgebre/tagweave/internal/recommend"
	"github.com/mgebre/tagweave/internal/supervisor"
	"github.com/mgebre/tagweave/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config not available yet, use the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Int("port", cfg.Server.Port).
		Str("tags_path", cfg.Catalog.TagsPath).
		Msg("Starting Tagweave")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Embedding providers: HTTP clients wrapped with circuit breakers, then
	// the badger-backed cache so repeated content skips the model servers.
	textProvider, visualProvider, cache, err := buildProviders(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize embedding providers")
	}
	if cache != nil {
		defer func() {
			if err := cache.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing embedding cache")
			}
		}()
	}

	// Tag catalog: load the precomputed artifact or regenerate it through
	// the providers when the vocabulary or models changed.
	cat, err := catalog.Ensure(ctx, cfg.Catalog.TagsPath, cfg.Catalog.ArtifactPath,
		cfg.Catalog.Regenerate, textProvider, visualProvider, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load tag catalog")
	}

	engine, err := recommend.NewEngine(cat, textProvider, &cfg.Recommend, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation engine")
	}

	fetcher := content.NewFetcher(visualProvider, cfg.Content, logging.Logger())
	handler := api.NewHandler(engine, fetcher, textProvider.ModelID(), visualProvider.ModelID())

	router := api.NewRouter(handler, &api.ChiMiddlewareConfig{
		CORSAllowedOrigins: cfg.API.CORSAllowedOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "Authorization"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.API.RateLimitRequests,
		RateLimitWindow:    cfg.API.RateLimitWindow,
		RateLimitDisabled:  cfg.API.RateLimitDisabled,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if cache != nil {
		tree.AddInfraService(services.NewCacheGCService(cache, 0))
	}

	logging.Info().
		Str("addr", server.Addr).
		Int("tags", cat.Len()).
		Msg("Serving")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("Supervisor tree failed")
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop cleanly")
		}
	}

	logging.Info().Msg("Shutdown complete")
}

// buildProviders assembles the provider stack: HTTP client, circuit
// breaker, optional shared cache. The returned cache is nil when caching
// is disabled.
func buildProviders(cfg *config.Config) (embeddings.TextProvider, embeddings.VisualProvider, *embeddings.Cache, error) {
	var text embeddings.TextProvider = embeddings.NewBreakerTextProvider(
		embeddings.NewHTTPTextProvider(cfg.Text))
	var visual embeddings.VisualProvider = embeddings.NewBreakerVisualProvider(
		embeddings.NewHTTPVisualProvider(cfg.Visual))

	if !cfg.Cache.Enabled {
		return text, visual, nil, nil
	}

	cache, err := embeddings.OpenCache(cfg.Cache)
	if err != nil {
		return nil, nil, nil, err
	}
	return embeddings.NewCachedTextProvider(text, cache),
		embeddings.NewCachedVisualProvider(visual, cache),
		cache, nil
}
