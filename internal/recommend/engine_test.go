// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package recommend

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

// mockTextEmbedder implements TextEmbedder for testing.
type mockTextEmbedder struct {
	vec      Vector
	err      error
	calls    atomic.Int32
	lastText string
}

func (m *mockTextEmbedder) Embed(_ context.Context, text string) (Vector, error) {
	m.calls.Add(1)
	m.lastText = text
	if m.err != nil {
		return nil, m.err
	}
	return m.vec, nil
}

func newTestEngine(t *testing.T, embedder TextEmbedder, cfg *EngineConfig) *Engine {
	t.Helper()
	e, err := NewEngine(testCatalog(t), embedder, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

func TestEngineTextOnly(t *testing.T) {
	// Text strongly matching "machine learning": cosine ~0.9.
	embedder := &mockTextEmbedder{vec: Vector{0.9, 0.44, 0}}
	cfg := &EngineConfig{
		Weights:       DefaultWeights(),
		MinConfidence: 0.3,
		MaxTags:       5,
		MaxTextLength: DefaultMaxTextLength,
	}
	e := newTestEngine(t, embedder, cfg)

	rec, err := e.Recommend(context.Background(), Request{Text: "deep neural networks and training"})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if rec.Empty() {
		t.Fatal("expected at least one recommended tag")
	}
	if rec.Tags[0] != "machine learning" {
		t.Errorf("top tag = %q, want %q", rec.Tags[0], "machine learning")
	}
	if rec.Confidences[0] < 0.85 || rec.Confidences[0] > 1.0 {
		t.Errorf("top confidence = %g, want ~0.9", rec.Confidences[0])
	}
}

func TestEngineImagesOnlyRenormalizes(t *testing.T) {
	// Empty text, three images all close to "photography" (visual {0,1}).
	// With only the image modality present its effective weight is 1.0, so
	// the fused score equals the mean image similarity (~0.8).
	embedder := &mockTextEmbedder{vec: Vector{1, 0, 0}}
	e := newTestEngine(t, embedder, nil)

	img := Vector{0.6, 0.8} // cosine vs {0,1} = 0.8
	rec, err := e.Recommend(context.Background(), Request{
		ImageVectors: []Vector{img, img, img},
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if embedder.calls.Load() != 0 {
		t.Error("text embedder must not be called for empty text")
	}

	found := false
	for i, tag := range rec.Tags {
		if tag == "photography" {
			found = true
			if !almostEqual(rec.Confidences[i], 0.8) {
				t.Errorf("photography confidence = %g, want 0.8", rec.Confidences[i])
			}
		}
	}
	if !found {
		t.Errorf("photography missing from %v", rec.Tags)
	}
}

func TestEngineNoContent(t *testing.T) {
	e := newTestEngine(t, &mockTextEmbedder{vec: Vector{1, 0, 0}}, nil)

	_, err := e.Recommend(context.Background(), Request{Text: "   "})
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("err = %v, want ErrNoContent", err)
	}
}

func TestEngineAllBelowThreshold(t *testing.T) {
	// Orthogonal-ish text vector scoring below the threshold on every tag.
	embedder := &mockTextEmbedder{vec: Vector{0.1, 0.1, 0.1}}
	cfg := DefaultEngineConfig()
	cfg.MinConfidence = 0.99
	e := newTestEngine(t, embedder, cfg)

	rec, err := e.Recommend(context.Background(), Request{Text: "unrelated"})
	if err != nil {
		t.Fatalf("below-threshold result must not be an error, got: %v", err)
	}
	if !rec.Empty() {
		t.Errorf("rec = %+v, want empty", rec)
	}
}

func TestEngineDimensionMismatchFailsFast(t *testing.T) {
	e := newTestEngine(t, &mockTextEmbedder{vec: Vector{1, 0, 0}}, nil)

	_, err := e.Recommend(context.Background(), Request{
		ImageVectors: []Vector{{1, 0, 0, 0}}, // visual space is 2-dim
	})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
}

func TestEngineIdempotent(t *testing.T) {
	embedder := &mockTextEmbedder{vec: Vector{0.7, 0.7, 0.1}}
	e := newTestEngine(t, embedder, nil)

	req := Request{
		Text:              "cameras and lenses",
		ImageVectors:      []Vector{{0.9, 0.4}, {0.2, 0.95}},
		VideoFrameVectors: []Vector{{0.5, 0.5}},
	}

	first, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	second, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different output:\n%+v\n%+v", first, second)
	}
}

func TestEngineTruncatesLongText(t *testing.T) {
	embedder := &mockTextEmbedder{vec: Vector{1, 0, 0}}
	cfg := DefaultEngineConfig()
	cfg.MaxTextLength = 10
	e := newTestEngine(t, embedder, cfg)

	if _, err := e.Recommend(context.Background(), Request{Text: strings.Repeat("a", 100)}); err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if got := embedder.lastText; got != strings.Repeat("a", 10)+"..." {
		t.Errorf("embedded text = %q, want 10 chars plus ellipsis", got)
	}
}

func TestEngineTextEmbedderFailurePropagates(t *testing.T) {
	embedder := &mockTextEmbedder{err: errors.New("model unavailable")}
	e := newTestEngine(t, embedder, nil)

	_, err := e.Recommend(context.Background(), Request{Text: "some text"})
	if err == nil || !strings.Contains(err.Error(), "embed text") {
		t.Fatalf("err = %v, want wrapped embed failure", err)
	}
}

func TestNewEngineValidation(t *testing.T) {
	catalog := testCatalog(t)
	embedder := &mockTextEmbedder{vec: Vector{1, 0, 0}}

	if _, err := NewEngine(nil, embedder, nil, zerolog.Nop()); err == nil {
		t.Error("nil catalog must be rejected")
	}
	if _, err := NewEngine(catalog, nil, nil, zerolog.Nop()); err == nil {
		t.Error("nil text embedder must be rejected")
	}

	bad := DefaultEngineConfig()
	bad.MaxTags = 0
	if _, err := NewEngine(catalog, embedder, bad, zerolog.Nop()); err == nil {
		t.Error("invalid config must be rejected")
	}
}
