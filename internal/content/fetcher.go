// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/mgebre/tagweave/internal/embeddings"
	"github.com/mgebre/tagweave/internal/metrics"
	"github.com/mgebre/tagweave/internal/recommend"
)

// Config bounds the fetcher's appetite.
type Config struct {
	// MaxImages caps how many images are embedded per request.
	MaxImages int `koanf:"max_images"`

	// MaxVideos caps how many videos are embedded per request.
	MaxVideos int `koanf:"max_videos"`

	// ItemTimeout bounds each individual download.
	ItemTimeout time.Duration `koanf:"item_timeout"`

	// FetchRate limits downloads per second across a request, politeness
	// toward the hosts we pull media from. Zero disables limiting.
	FetchRate float64 `koanf:"fetch_rate"`

	// MaxBodyBytes caps a single downloaded item.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// DefaultConfig mirrors the production limits.
func DefaultConfig() Config {
	return Config{
		MaxImages:    10,
		MaxVideos:    5,
		ItemTimeout:  30 * time.Second,
		FetchRate:    8,
		MaxBodyBytes: 10 << 20, // 10MB
	}
}

// Fetcher downloads a post's media items and embeds them into the visual
// space. Safe for concurrent use; per-request state stays on the stack.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	visual  embeddings.VisualProvider
	config  Config
	logger  zerolog.Logger
}

// NewFetcher builds a fetcher over the given visual provider.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFetcher(visual embeddings.VisualProvider, cfg Config, logger zerolog.Logger) *Fetcher {
	if cfg.MaxImages <= 0 {
		cfg.MaxImages = DefaultConfig().MaxImages
	}
	if cfg.MaxVideos <= 0 {
		cfg.MaxVideos = DefaultConfig().MaxVideos
	}
	if cfg.ItemTimeout <= 0 {
		cfg.ItemTimeout = DefaultConfig().ItemTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultConfig().MaxBodyBytes
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.FetchRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.FetchRate), 1)
	}

	return &Fetcher{
		client:  &http.Client{Timeout: cfg.ItemTimeout},
		limiter: limiter,
		visual:  visual,
		config:  cfg,
		logger:  logger.With().Str("component", "content").Logger(),
	}
}

// EmbedImages downloads and embeds up to MaxImages of the given image URLs.
// A failed item is logged and skipped; the returned slice holds only the
// vectors that succeeded and may be empty.
func (f *Fetcher) EmbedImages(ctx context.Context, urls []string) []recommend.Vector {
	if len(urls) > f.config.MaxImages {
		urls = urls[:f.config.MaxImages]
	}
	return f.embedAll(ctx, urls, "image")
}

// EmbedVideos resolves up to MaxVideos of the given video URLs to thumbnail
// images, downloads, and embeds them. Unresolvable or failed items are
// skipped.
func (f *Fetcher) EmbedVideos(ctx context.Context, urls []string) []recommend.Vector {
	if len(urls) > f.config.MaxVideos {
		urls = urls[:f.config.MaxVideos]
	}

	thumbs := make([]string, 0, len(urls))
	for _, u := range urls {
		thumb, ok := ThumbnailURL(u)
		if !ok {
			f.logger.Debug().Str("url", u).Msg("no thumbnail for video, skipping")
			metrics.ContentFetchFailures.WithLabelValues("video").Inc()
			continue
		}
		thumbs = append(thumbs, thumb)
	}
	return f.embedAll(ctx, thumbs, "video")
}

func (f *Fetcher) embedAll(ctx context.Context, urls []string, kind string) []recommend.Vector {
	vectors := make([]recommend.Vector, 0, len(urls))
	for _, u := range urls {
		vec, err := f.embedOne(ctx, u)
		if err != nil {
			// One bad item shrinks the modality, never fails the request.
			f.logger.Warn().Err(err).Str("url", u).Str("kind", kind).Msg("skipping item")
			metrics.ContentFetchFailures.WithLabelValues(kind).Inc()
			continue
		}
		vectors = append(vectors, vec)
	}
	return vectors
}

func (f *Fetcher) embedOne(ctx context.Context, url string) (recommend.Vector, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	itemCtx, cancel := context.WithTimeout(ctx, f.config.ItemTimeout)
	defer cancel()

	data, err := f.download(itemCtx, url)
	if err != nil {
		return nil, err
	}
	return f.visual.EmbedImage(itemCtx, data)
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Tagweave/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBodyBytes))
}
