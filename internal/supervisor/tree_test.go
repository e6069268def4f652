// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

// blockingService runs until its context is canceled.
type blockingService struct {
	started atomic.Bool
}

func (s *blockingService) Serve(ctx context.Context) error {
	s.started.Store(true)
	<-ctx.Done()
	return ctx.Err()
}

func (s *blockingService) String() string { return "blocking" }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTreeServesAndStops(t *testing.T) {
	tree, err := NewTree(discardLogger(), DefaultTreeConfig())
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}

	svc := &blockingService{}
	tree.AddAPIService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	// Wait for the service to come up.
	deadline := time.After(2 * time.Second)
	for !svc.started.Load() {
		select {
		case <-deadline:
			t.Fatal("service never started")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("supervisor returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not stop after cancel")
	}
}

func TestTreeConfigDefaults(t *testing.T) {
	tree, err := NewTree(discardLogger(), TreeConfig{})
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	if tree.config.FailureThreshold != 5.0 {
		t.Errorf("FailureThreshold = %g, want 5", tree.config.FailureThreshold)
	}
	if tree.config.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", tree.config.ShutdownTimeout)
	}
}
