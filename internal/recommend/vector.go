// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package recommend

import (
	"fmt"
	"math"
)

// Vector is a fixed-length embedding produced by one of the embedding models.
// Vectors are treated as immutable once produced; nothing in this package
// mutates a Vector after receiving it.
type Vector []float32

// Dim returns the dimensionality of the vector.
func (v Vector) Dim() int {
	return len(v)
}

// Cosine computes the cosine similarity dot(a,b) / (|a|*|b|) between two
// vectors of equal length.
//
// A zero-norm operand (a degenerate embedding) yields a defined score of 0
// rather than a division by zero; this is an explicit policy, not an error.
// Mismatched lengths return ErrDimensionMismatch.
func Cosine(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	var dot, na, nb float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		return 0, nil
	}
	return dot / den, nil
}
