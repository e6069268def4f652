// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package recommend

import (
	"sort"
	"strings"
)

// Recommendation is the final ranked tag list. Tags and Confidences are
// index-aligned and ordered by strictly non-increasing confidence.
//
// Confidence scores are the raw fused similarity scores, not renormalized to
// sum to 1: they express similarity strength, not a probability distribution.
type Recommendation struct {
	Tags        []string  `json:"tags"`
	Confidences []float64 `json:"confidence_scores"`
}

// Empty reports whether no tags cleared the confidence threshold.
func (r Recommendation) Empty() bool {
	return len(r.Tags) == 0
}

// Rank turns a fused score-per-tag vector into the final Recommendation:
//
//  1. Discard tags scoring strictly below minConfidence.
//  2. Sort descending by score; ties keep catalog order (stable sort) so the
//     output is deterministic.
//  3. Deduplicate case-insensitively, keeping the first occurrence.
//  4. Truncate to at most maxTags entries.
//
// An empty result is a valid, non-error outcome: "no tags recommended".
func Rank(fused []float64, catalog *Catalog, minConfidence float64, maxTags int) Recommendation {
	if maxTags < 1 {
		maxTags = 1
	}

	idx := make([]int, 0, len(fused))
	for i := range fused {
		if i >= catalog.Len() {
			break
		}
		if fused[i] >= minConfidence {
			idx = append(idx, i)
		}
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return fused[idx[a]] > fused[idx[b]]
	})

	rec := Recommendation{
		Tags:        make([]string, 0, min(maxTags, len(idx))),
		Confidences: make([]float64, 0, min(maxTags, len(idx))),
	}
	seen := make(map[string]struct{}, len(idx))
	for _, i := range idx {
		name := catalog.Entry(i).Name
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		rec.Tags = append(rec.Tags, name)
		rec.Confidences = append(rec.Confidences, fused[i])
		if len(rec.Tags) == maxTags {
			break
		}
	}
	return rec
}
