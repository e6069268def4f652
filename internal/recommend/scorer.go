// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package recommend

import "fmt"

// ScoreAgainst computes the cosine similarity of one item vector against
// every tag in the catalog's requested space. The result is one score per tag
// in catalog order.
//
// Each (item, tag) score is computed independently; no score depends on the
// presence or order of other tags. A zero-norm item or tag embedding scores 0
// for that pair.
//
// The item's dimensionality must equal the catalog's dimensionality for the
// requested space. A mismatch is a configuration fault, not a recoverable
// per-request failure, and returns ErrDimensionMismatch immediately.
func (c *Catalog) ScoreAgainst(item Vector, space Space) ([]float64, error) {
	if want := c.Dim(space); item.Dim() != want {
		return nil, fmt.Errorf("%w: item vector has dim %d, %s space wants %d",
			ErrDimensionMismatch, item.Dim(), space, want)
	}

	scores := make([]float64, len(c.entries))
	for i, e := range c.entries {
		// Dims are validated above and at catalog construction, so Cosine
		// cannot fail here.
		s, err := Cosine(item, e.embedding(space))
		if err != nil {
			return nil, err
		}
		scores[i] = s
	}
	return scores, nil
}
