// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package recommend

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// TextEmbedder maps raw text to a fixed-length vector in the catalog's text
// space. Implementations must be deterministic for the same input and safe
// for concurrent use. The first call may be slow (lazy model load); the
// engine treats that as a black box.
//
// The interface is defined here, on the consumer side, so the engine has no
// dependency on any concrete provider package.
type TextEmbedder interface {
	Embed(ctx context.Context, text string) (Vector, error)
}

// Request carries one post's content into the engine: zero-or-one text
// string and zero-or-more already-embedded image and video-frame vectors.
//
// The content collaborator owns per-item fetch/embed failures: a failed image
// download simply shrinks ImageVectors, possibly to empty, which triggers the
// absent-modality policy. The engine itself never partially fails.
type Request struct {
	// Text is the post's text content. Empty after trimming means the text
	// modality is absent.
	Text string

	// ImageVectors are visual-space embeddings, one per image.
	ImageVectors []Vector

	// VideoFrameVectors are visual-space embeddings, one per video thumbnail.
	VideoFrameVectors []Vector
}

// Engine is the orchestration facade external callers invoke: it embeds
// text, scores every item vector against the catalog, aggregates per
// modality, fuses, and ranks.
//
// An Engine is immutable after construction and safe for concurrent use;
// every Recommend call is independent, with no cross-request state and no
// result caching.
type Engine struct {
	catalog *Catalog
	text    TextEmbedder
	config  EngineConfig
	logger  zerolog.Logger
}

// NewEngine creates an engine over a catalog. A nil cfg selects the defaults.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(catalog *Catalog, text TextEmbedder, cfg *EngineConfig, logger zerolog.Logger) (*Engine, error) {
	if catalog == nil {
		return nil, ErrEmptyCatalog
	}
	if text == nil {
		return nil, fmt.Errorf("text embedder is required")
	}
	if cfg == nil {
		cfg = DefaultEngineConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		catalog: catalog,
		text:    text,
		config:  *cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Catalog returns the engine's read-only tag catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() EngineConfig {
	return e.config
}

// Recommend produces the ranked tag list for one post.
//
// Only two failures propagate: ErrNoContent when the request carries nothing
// to score, and ErrDimensionMismatch (a configuration fault) when an item
// vector disagrees with the catalog. Everything else, including degenerate
// zero-norm embeddings, is absorbed into the scoring math with a defined
// outcome, so given valid inputs Recommend always returns a Recommendation,
// possibly empty.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Recommendation, error) {
	start := time.Now()

	textScores, err := e.scoreText(ctx, req.Text)
	if err != nil {
		return nil, err
	}

	imageScores, err := e.scoreItems(ctx, req.ImageVectors)
	if err != nil {
		return nil, fmt.Errorf("score images: %w", err)
	}

	videoScores, err := e.scoreItems(ctx, req.VideoFrameVectors)
	if err != nil {
		return nil, fmt.Errorf("score video frames: %w", err)
	}

	fused, err := Fuse(textScores, imageScores, videoScores, e.config.Weights)
	if err != nil {
		return nil, err
	}

	rec := Rank(fused, e.catalog, e.config.MinConfidence, e.config.MaxTags)

	e.logger.Debug().
		Bool("text", textScores.Present()).
		Int("images", len(req.ImageVectors)).
		Int("video_frames", len(req.VideoFrameVectors)).
		Int("returned", len(rec.Tags)).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("recommendation complete")

	return &rec, nil
}

// scoreText embeds the text and scores it against the text space. Empty or
// whitespace-only text means the modality is absent.
func (e *Engine) scoreText(ctx context.Context, text string) (ModalityScores, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return AbsentModality(), nil
	}
	text = truncate(text, e.config.MaxTextLength)

	vec, err := e.text.Embed(ctx, text)
	if err != nil {
		return AbsentModality(), fmt.Errorf("embed text: %w", err)
	}

	scores, err := e.catalog.ScoreAgainst(vec, SpaceText)
	if err != nil {
		return AbsentModality(), err
	}
	return PresentModality(scores), nil
}

// scoreItems scores each visual-space vector against the catalog and
// aggregates the results. Per-item scoring is pure and order-independent, so
// items are scored concurrently; mean aggregation makes scheduling order
// irrelevant to the result.
func (e *Engine) scoreItems(ctx context.Context, items []Vector) (ModalityScores, error) {
	if len(items) == 0 {
		return AbsentModality(), nil
	}
	if err := ctx.Err(); err != nil {
		return AbsentModality(), err
	}

	itemScores := make([][]float64, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item Vector) {
			defer wg.Done()
			itemScores[i], errs[i] = e.catalog.ScoreAgainst(item, SpaceVisual)
		}(i, item)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return AbsentModality(), err
		}
	}
	return Aggregate(itemScores), nil
}

// truncate caps text at n characters, appending an ellipsis marker the same
// way the upstream preprocessing does, so embeddings of truncated and
// hand-shortened text line up.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	// Avoid splitting a multi-byte rune at the cut point.
	cut := n
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
