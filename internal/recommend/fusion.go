// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package recommend

import "fmt"

// Weights defines the relative contribution of each modality to the fused
// score. Each weight lies in [0,1]; the defaults sum to 1.0 when all three
// modalities are present.
type Weights struct {
	// Text is the weight of the blog post's text content.
	Text float64 `json:"text" koanf:"text"`

	// Image is the weight of embedded images.
	Image float64 `json:"image" koanf:"image"`

	// Video is the weight of embedded video thumbnails.
	Video float64 `json:"video" koanf:"video"`
}

// DefaultWeights returns the production fusion policy: text carries half the
// signal, images roughly a third, video the remainder.
func DefaultWeights() Weights {
	return Weights{Text: 0.50, Image: 0.30, Video: 0.20}
}

// Validate checks that every weight lies in [0,1] and at least one is
// positive.
func (w Weights) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"text", w.Text},
		{"image", w.Image},
		{"video", w.Video},
	} {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("weight %s must be in [0,1], got %g", f.name, f.value)
		}
	}
	if w.Text+w.Image+w.Video == 0 {
		return fmt.Errorf("at least one modality weight must be positive")
	}
	return nil
}

// Fuse combines up to three modality score vectors into one fused
// score-per-tag vector.
//
// Missing-modality policy: configured weights are renormalized over the
// modalities actually present, redistributing absent modalities' weight
// proportionally so the effective weights still sum to 1.0. With default
// weights and only text and image present, the effective weights become
// 0.50/0.80 and 0.30/0.80. If every present modality has configured weight
// zero, the present modalities share weight equally.
//
// The fused score of each tag is the sum over present modalities of
// (effective weight x that modality's score). If every modality is absent the
// request carried nothing to score and Fuse returns ErrNoContent.
//
// Fuse is pure and deterministic.
func Fuse(text, image, video ModalityScores, w Weights) ([]float64, error) {
	type part struct {
		scores []float64
		weight float64
	}

	var parts []part
	if text.Present() {
		parts = append(parts, part{text.Scores(), w.Text})
	}
	if image.Present() {
		parts = append(parts, part{image.Scores(), w.Image})
	}
	if video.Present() {
		parts = append(parts, part{video.Scores(), w.Video})
	}
	if len(parts) == 0 {
		return nil, ErrNoContent
	}

	var sum float64
	n := 0
	for _, p := range parts {
		sum += p.weight
		if len(p.scores) > n {
			n = len(p.scores)
		}
	}

	fused := make([]float64, n)
	for _, p := range parts {
		eff := 1.0 / float64(len(parts))
		if sum > 0 {
			eff = p.weight / sum
		}
		// A modality's score vector is always catalog-length in practice;
		// shorter vectors contribute 0 for the missing tail.
		for i, s := range p.scores {
			fused[i] += eff * s
		}
	}
	return fused, nil
}
