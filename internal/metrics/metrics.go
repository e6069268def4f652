// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

// Package metrics provides Prometheus instrumentation for Tagweave:
// API latency and throughput, recommendation pipeline timing, embedding
// provider calls, embedding cache efficiency, and circuit breaker state.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tagweave_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tagweave_api_active_requests",
			Help: "Number of API requests currently in flight",
		},
	)

	// Recommendation pipeline metrics.
	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tagweave_recommend_duration_seconds",
			Help:    "End-to-end duration of one recommendation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendTagsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tagweave_recommend_tags_returned",
			Help:    "Number of tags returned per recommendation",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10, 15, 20},
		},
	)

	ModalityItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagweave_modality_items_total",
			Help: "Total number of scored items per modality",
		},
		[]string{"modality"}, // "text", "image", "video"
	)

	// Embedding provider metrics.
	EmbeddingRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tagweave_embedding_request_duration_seconds",
			Help:    "Duration of embedding provider calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "kind"}, // kind: "text" or "image"
	)

	EmbeddingFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagweave_embedding_failures_total",
			Help: "Total number of failed embedding provider calls",
		},
		[]string{"provider", "kind"},
	)

	EmbeddingCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagweave_embedding_cache_hits_total",
			Help: "Total number of embedding cache hits",
		},
		[]string{"kind"},
	)

	EmbeddingCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagweave_embedding_cache_misses_total",
			Help: "Total number of embedding cache misses",
		},
		[]string{"kind"},
	)

	// Content fetching metrics.
	ContentFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagweave_content_fetch_failures_total",
			Help: "Total number of per-item content fetch failures (item skipped, request continues)",
		},
		[]string{"kind"}, // "image", "video"
	)

	// Circuit breaker metrics. State: 0=closed, 1=half-open, 2=open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tagweave_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tagweave_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, status string, duration time.Duration) {
	APIRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one completed recommendation.
func RecordRecommendation(duration time.Duration, tagsReturned int) {
	RecommendDuration.Observe(duration.Seconds())
	RecommendTagsReturned.Observe(float64(tagsReturned))
}

// RecordEmbedding records one embedding provider call.
func RecordEmbedding(provider, kind string, duration time.Duration, err error) {
	EmbeddingRequestDuration.WithLabelValues(provider, kind).Observe(duration.Seconds())
	if err != nil {
		EmbeddingFailures.WithLabelValues(provider, kind).Inc()
	}
}
