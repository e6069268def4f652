// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package services

import (
	"context"
	"errors"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/mgebre/tagweave/internal/embeddings"
	"github.com/mgebre/tagweave/internal/logging"
)

// defaultGCInterval is how often the embedding cache's value log is
// compacted. Badger only reclaims space from expired entries when GC runs.
const defaultGCInterval = 10 * time.Minute

// CacheGCService periodically garbage-collects the embedding cache.
type CacheGCService struct {
	cache    *embeddings.Cache
	interval time.Duration
}

// NewCacheGCService creates a GC loop over the given cache. A non-positive
// interval gets the default.
func NewCacheGCService(cache *embeddings.Cache, interval time.Duration) *CacheGCService {
	if interval <= 0 {
		interval = defaultGCInterval
	}
	return &CacheGCService{cache: cache, interval: interval}
}

// Serve implements suture.Service.
func (s *CacheGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			err := s.cache.RunGC()
			switch {
			case err == nil:
				logging.Debug().Msg("embedding cache GC reclaimed space")
			case errors.Is(err, badger.ErrNoRewrite):
				// Nothing to collect this round.
			default:
				logging.Warn().Err(err).Msg("embedding cache GC failed")
			}
		}
	}
}

// String identifies the service in suture's log events.
func (s *CacheGCService) String() string {
	return "cache-gc"
}
