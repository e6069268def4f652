// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package embeddings

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/mgebre/tagweave/internal/logging"
	"github.com/mgebre/tagweave/internal/metrics"
	"github.com/mgebre/tagweave/internal/recommend"
)

// Cache is a BadgerDB-backed store of provider outputs, keyed by a hash of
// (model, tower, input). Editing a post re-submits mostly identical content;
// caching the embeddings avoids re-running the models on every save.
//
// Cached values expire after TTL so a model server upgrade does not serve
// stale vectors forever. The recommendation core itself stays cache-free:
// only provider outputs live here.
type Cache struct {
	db  *badger.DB
	ttl time.Duration
}

// CacheConfig configures the embedding cache.
type CacheConfig struct {
	// Enabled turns the cache on. Default off.
	Enabled bool `koanf:"enabled"`

	// Path is the Badger directory. Empty selects an in-memory store,
	// useful for tests and ephemeral deployments.
	Path string `koanf:"path"`

	// TTL bounds entry lifetime. Default 7 days.
	TTL time.Duration `koanf:"ttl"`
}

// OpenCache opens (or creates) the badger store.
func OpenCache(cfg CacheConfig) (*Cache, error) {
	opts := badger.DefaultOptions(cfg.Path)
	opts.Logger = nil // badger's own logger is too chatty; we log open/close ourselves
	if cfg.Path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open embedding cache: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	logging.Info().Str("path", cfg.Path).Dur("ttl", ttl).Msg("embedding cache opened")
	return &Cache{db: db, ttl: ttl}, nil
}

// Close releases the badger store.
func (c *Cache) Close() error {
	return c.db.Close()
}

// RunGC runs one round of badger value-log garbage collection, reclaiming
// space from expired entries. Returns badger.ErrNoRewrite when there was
// nothing to collect; callers treat that as a clean no-op.
func (c *Cache) RunGC() error {
	return c.db.RunValueLogGC(0.5)
}

func cacheKey(modelID, tower string, input []byte) []byte {
	h := sha256.New()
	h.Write([]byte(modelID))
	h.Write([]byte{0})
	h.Write([]byte(tower))
	h.Write([]byte{0})
	h.Write(input)
	return h.Sum(nil)
}

func (c *Cache) get(key []byte, kind string) (recommend.Vector, bool) {
	var vec recommend.Vector
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			vec = decodeVector(val)
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			logging.Warn().Err(err).Msg("embedding cache read failed")
		}
		metrics.EmbeddingCacheMisses.WithLabelValues(kind).Inc()
		return nil, false
	}
	metrics.EmbeddingCacheHits.WithLabelValues(kind).Inc()
	return vec, true
}

func (c *Cache) put(key []byte, vec recommend.Vector) {
	err := c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(key, encodeVector(vec)).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		// A failed write only costs a future cache miss.
		logging.Warn().Err(err).Msg("embedding cache write failed")
	}
}

// encodeVector serializes a vector as little-endian float32 bits.
func encodeVector(v recommend.Vector) []byte {
	out := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

// decodeVector is the inverse of encodeVector.
func decodeVector(b []byte) recommend.Vector {
	v := make(recommend.Vector, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}

// CachedTextProvider serves text embeddings from the cache, falling back to
// the wrapped provider on miss.
type CachedTextProvider struct {
	inner TextProvider
	cache *Cache
}

// NewCachedTextProvider wraps a provider with the cache.
func NewCachedTextProvider(inner TextProvider, cache *Cache) *CachedTextProvider {
	return &CachedTextProvider{inner: inner, cache: cache}
}

// ModelID identifies the wrapped model.
func (p *CachedTextProvider) ModelID() string { return p.inner.ModelID() }

// Embed returns the cached embedding when present, otherwise delegates and
// stores the result.
func (p *CachedTextProvider) Embed(ctx context.Context, text string) (recommend.Vector, error) {
	key := cacheKey(p.ModelID(), "text", []byte(text))
	if vec, ok := p.cache.get(key, "text"); ok {
		return vec, nil
	}

	vec, err := p.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	p.cache.put(key, vec)
	return vec, nil
}

// CachedVisualProvider serves visual embeddings from the cache, falling back
// to the wrapped provider on miss.
type CachedVisualProvider struct {
	inner VisualProvider
	cache *Cache
}

// NewCachedVisualProvider wraps a provider with the cache.
func NewCachedVisualProvider(inner VisualProvider, cache *Cache) *CachedVisualProvider {
	return &CachedVisualProvider{inner: inner, cache: cache}
}

// ModelID identifies the wrapped model.
func (p *CachedVisualProvider) ModelID() string { return p.inner.ModelID() }

// EmbedImage returns the cached embedding when present, otherwise delegates.
func (p *CachedVisualProvider) EmbedImage(ctx context.Context, data []byte) (recommend.Vector, error) {
	key := cacheKey(p.ModelID(), "image", data)
	if vec, ok := p.cache.get(key, "image"); ok {
		return vec, nil
	}

	vec, err := p.inner.EmbedImage(ctx, data)
	if err != nil {
		return nil, err
	}
	p.cache.put(key, vec)
	return vec, nil
}

// EmbedText returns the cached embedding when present, otherwise delegates.
func (p *CachedVisualProvider) EmbedText(ctx context.Context, text string) (recommend.Vector, error) {
	key := cacheKey(p.ModelID(), "text", []byte(text))
	if vec, ok := p.cache.get(key, "text"); ok {
		return vec, nil
	}

	vec, err := p.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}
	p.cache.put(key, vec)
	return vec, nil
}
