// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package embeddings

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/mgebre/tagweave/internal/recommend"
)

// countingTextProvider counts how often the backing model is hit.
type countingTextProvider struct {
	vec   recommend.Vector
	calls atomic.Int32
}

func (p *countingTextProvider) ModelID() string { return "text:test" }

func (p *countingTextProvider) Embed(_ context.Context, _ string) (recommend.Vector, error) {
	p.calls.Add(1)
	return p.vec, nil
}

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := OpenCache(CacheConfig{Enabled: true}) // empty path = in-memory
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return c
}

func TestCachedTextProviderHitsCacheOnSecondCall(t *testing.T) {
	inner := &countingTextProvider{vec: recommend.Vector{0.5, -1.25, 3}}
	p := NewCachedTextProvider(inner, openTestCache(t))

	first, err := p.Embed(context.Background(), "same input")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	second, err := p.Embed(context.Background(), "same input")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	if inner.calls.Load() != 1 {
		t.Errorf("backing model hit %d times, want 1", inner.calls.Load())
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cached vector differs at %d: %g vs %g", i, first[i], second[i])
		}
	}
}

func TestCachedTextProviderDistinctInputs(t *testing.T) {
	inner := &countingTextProvider{vec: recommend.Vector{1}}
	p := NewCachedTextProvider(inner, openTestCache(t))

	if _, err := p.Embed(context.Background(), "a"); err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if _, err := p.Embed(context.Background(), "b"); err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if inner.calls.Load() != 2 {
		t.Errorf("backing model hit %d times, want 2 for distinct inputs", inner.calls.Load())
	}
}

func TestVectorCodecRoundTrip(t *testing.T) {
	in := recommend.Vector{0, 1.5, -2.25, 3.14159, -0.0001}
	out := decodeVector(encodeVector(in))

	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if in[i] != out[i] {
			t.Errorf("index %d: %g != %g", i, in[i], out[i])
		}
	}
}

func TestCacheKeySeparatesModelAndTower(t *testing.T) {
	a := cacheKey("model-a", "text", []byte("x"))
	b := cacheKey("model-b", "text", []byte("x"))
	c := cacheKey("model-a", "image", []byte("x"))

	if string(a) == string(b) {
		t.Error("different models must produce different keys")
	}
	if string(a) == string(c) {
		t.Error("different towers must produce different keys")
	}
}
