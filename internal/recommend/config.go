// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package recommend

import "fmt"

// Default engine parameters. MinConfidence and MaxTags are tunable policy,
// not laws; the defaults exclude obviously-irrelevant tags without starving
// sparse results.
const (
	DefaultMinConfidence = 0.3
	DefaultMaxTags       = 10
	DefaultMaxTextLength = 2048
)

// EngineConfig is the immutable configuration value object for an Engine.
// Tests can construct arbitrary configurations without any global state
// leaking between cases.
type EngineConfig struct {
	// Weights defines the relative contribution of each modality.
	Weights Weights `json:"weights" koanf:"weights"`

	// MinConfidence is the threshold below which fused scores are dropped.
	MinConfidence float64 `json:"min_confidence" koanf:"min_confidence"`

	// MaxTags caps the length of the final recommendation.
	MaxTags int `json:"max_tags" koanf:"max_tags"`

	// MaxTextLength caps the number of characters handed to the text
	// embedding model. Longer text is truncated before embedding.
	MaxTextLength int `json:"max_text_length" koanf:"max_text_length"`
}

// DefaultEngineConfig returns the production defaults.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Weights:       DefaultWeights(),
		MinConfidence: DefaultMinConfidence,
		MaxTags:       DefaultMaxTags,
		MaxTextLength: DefaultMaxTextLength,
	}
}

// Validate checks all parameters for consistency.
func (c *EngineConfig) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.MinConfidence < -1 || c.MinConfidence > 1 {
		return fmt.Errorf("min_confidence must be in [-1,1], got %g", c.MinConfidence)
	}
	if c.MaxTags < 1 {
		return fmt.Errorf("max_tags must be >= 1, got %d", c.MaxTags)
	}
	if c.MaxTextLength < 1 {
		return fmt.Errorf("max_text_length must be >= 1, got %d", c.MaxTextLength)
	}
	return nil
}
