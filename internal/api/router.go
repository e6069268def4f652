// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mgebre/tagweave/internal/middleware"
)

// Router wires handlers and middleware into the Chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router over the given handler. A nil middleware
// config gets the secure defaults.
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is handled everywhere
	r.Use(middleware.Compression)

	// Info endpoints: permissive rate limit for monitoring probes.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/health", router.handler.Health)
		r.Get("/", router.handler.Root)
	})

	// Recommendation API: standard rate limit plus request instrumentation.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Post("/recommend/json", router.handler.Recommend)
		r.Post("/recommend", router.handler.Recommend) // legacy alias
		r.Get("/tags", router.handler.Tags)
		r.Get("/model-info", router.handler.ModelInfo)
	})

	// Prometheus exposition, unwrapped so scrapes stay cheap.
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(router.handler.NotFound)

	return r
}
