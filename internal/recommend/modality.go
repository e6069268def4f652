// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package recommend

// ModalityScores is the tagged result of aggregating one modality's per-item
// scores: either Absent (the request carried no items for the modality) or
// Present with one score per catalog tag.
//
// The distinction matters for fusion: an absent modality is excluded from
// weight renormalization, while a present-but-low-scoring modality still
// contributes with its full effective weight. Representing absence explicitly
// keeps that decision out of the fusion arithmetic.
type ModalityScores struct {
	present bool
	scores  []float64
}

// AbsentModality returns the explicit "modality absent" sentinel.
func AbsentModality() ModalityScores {
	return ModalityScores{}
}

// PresentModality wraps an aggregated score-per-tag vector.
func PresentModality(scores []float64) ModalityScores {
	return ModalityScores{present: true, scores: scores}
}

// Present reports whether the modality carried any items.
func (m ModalityScores) Present() bool {
	return m.present
}

// Scores returns the aggregated per-tag scores, or nil when absent.
func (m ModalityScores) Scores() []float64 {
	return m.scores
}

// Aggregate collapses the per-item score vectors of one modality into a
// single score-per-tag vector using the arithmetic mean per tag.
//
// Mean pooling makes a multi-image post's tag relevance reflect the typical
// image rather than a single outlier, and is invariant to item order, so
// aggregating the same multiset of item scores always yields the same result.
//
// An empty input yields the explicit absent sentinel, distinct from a
// present-but-zero score vector.
func Aggregate(itemScores [][]float64) ModalityScores {
	if len(itemScores) == 0 {
		return AbsentModality()
	}

	out := make([]float64, len(itemScores[0]))
	for _, item := range itemScores {
		for i, s := range item {
			out[i] += s
		}
	}
	n := float64(len(itemScores))
	for i := range out {
		out[i] /= n
	}
	return PresentModality(out)
}
