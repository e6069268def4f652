// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package embeddings

import (
	"context"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/mgebre/tagweave/internal/logging"
	"github.com/mgebre/tagweave/internal/metrics"
	"github.com/mgebre/tagweave/internal/recommend"
)

// newBreaker builds the circuit breaker shared by both provider wrappers.
//
// Settings: up to 3 requests probe a half-open circuit, counts reset every
// minute while closed, an open circuit waits 2 minutes before probing, and
// the circuit opens at a 60% failure rate over at least 10 requests.
//
// The breaker uses real time for its interval and timeout handling; that
// governs recovery, not data integrity. Tests exercise the wrapped provider
// directly.
func newBreaker(name string) *gobreaker.CircuitBreaker[recommend.Vector] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[recommend.Vector](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= 0.6 {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("opening embedding circuit")
				return true
			}
			return false
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", breakerState(from)).
				Str("to", breakerState(to)).
				Msg("embedding circuit state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateGaugeValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, breakerState(from), breakerState(to)).Inc()
		},
	})
}

func breakerState(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateGaugeValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// BreakerTextProvider wraps a TextProvider with a circuit breaker so an
// unavailable model server sheds load fast instead of stacking timeouts.
type BreakerTextProvider struct {
	inner TextProvider
	cb    *gobreaker.CircuitBreaker[recommend.Vector]
}

// NewBreakerTextProvider wraps the given provider.
func NewBreakerTextProvider(inner TextProvider) *BreakerTextProvider {
	return &BreakerTextProvider{
		inner: inner,
		cb:    newBreaker(inner.ModelID()),
	}
}

// ModelID identifies the wrapped model.
func (p *BreakerTextProvider) ModelID() string { return p.inner.ModelID() }

// Embed forwards through the breaker.
func (p *BreakerTextProvider) Embed(ctx context.Context, text string) (recommend.Vector, error) {
	vec, err := p.cb.Execute(func() (recommend.Vector, error) {
		return p.inner.Embed(ctx, text)
	})
	if err != nil {
		return nil, wrapBreakerErr(err)
	}
	return vec, nil
}

// BreakerVisualProvider wraps a VisualProvider with a circuit breaker. Both
// towers share one breaker since they hit the same model server.
type BreakerVisualProvider struct {
	inner VisualProvider
	cb    *gobreaker.CircuitBreaker[recommend.Vector]
}

// NewBreakerVisualProvider wraps the given provider.
func NewBreakerVisualProvider(inner VisualProvider) *BreakerVisualProvider {
	return &BreakerVisualProvider{
		inner: inner,
		cb:    newBreaker(inner.ModelID()),
	}
}

// ModelID identifies the wrapped model.
func (p *BreakerVisualProvider) ModelID() string { return p.inner.ModelID() }

// EmbedImage forwards through the breaker.
func (p *BreakerVisualProvider) EmbedImage(ctx context.Context, data []byte) (recommend.Vector, error) {
	vec, err := p.cb.Execute(func() (recommend.Vector, error) {
		return p.inner.EmbedImage(ctx, data)
	})
	if err != nil {
		return nil, wrapBreakerErr(err)
	}
	return vec, nil
}

// EmbedText forwards through the breaker.
func (p *BreakerVisualProvider) EmbedText(ctx context.Context, text string) (recommend.Vector, error) {
	vec, err := p.cb.Execute(func() (recommend.Vector, error) {
		return p.inner.EmbedText(ctx, text)
	})
	if err != nil {
		return nil, wrapBreakerErr(err)
	}
	return vec, nil
}

func wrapBreakerErr(err error) error {
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests { //nolint:errorlint // gobreaker returns bare sentinels
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return err
}
