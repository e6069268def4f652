// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordEmbeddingCountsFailures(t *testing.T) {
	before := testutil.ToFloat64(EmbeddingFailures.WithLabelValues("test-prov", "text"))

	RecordEmbedding("test-prov", "text", 10*time.Millisecond, nil)
	RecordEmbedding("test-prov", "text", 10*time.Millisecond, errors.New("boom"))

	after := testutil.ToFloat64(EmbeddingFailures.WithLabelValues("test-prov", "text"))
	if after-before != 1 {
		t.Errorf("failure counter moved by %g, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("gauge = %g, want %g", got, base+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("gauge = %g, want %g", got, base)
	}
}
