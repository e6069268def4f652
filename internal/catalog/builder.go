// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mgebre/tagweave/internal/embeddings"
	"github.com/mgebre/tagweave/internal/recommend"
)

// Build projects the vocabulary into both embedding spaces: the text
// provider embeds each tag name for text-space scoring, the visual
// provider's text tower projects it into the image/video space.
//
// Tags are embedded sequentially; this runs once at startup and the
// providers rate-limit themselves anyway.
func Build(ctx context.Context, tags []string, text embeddings.TextProvider, visual embeddings.VisualProvider, logger zerolog.Logger) (*Artifact, error) {
	start := time.Now()
	artifact := &Artifact{
		TextModel:   text.ModelID(),
		VisualModel: visual.ModelID(),
		GeneratedAt: time.Now().UTC(),
		Tags:        make([]ArtifactTag, 0, len(tags)),
	}

	for _, tag := range tags {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		textVec, err := text.Embed(ctx, tag)
		if err != nil {
			return nil, fmt.Errorf("embed tag %q in text space: %w", tag, err)
		}
		visualVec, err := visual.EmbedText(ctx, tag)
		if err != nil {
			return nil, fmt.Errorf("embed tag %q in visual space: %w", tag, err)
		}

		artifact.Tags = append(artifact.Tags, ArtifactTag{
			Name:   tag,
			Text:   textVec,
			Visual: visualVec,
		})
	}

	logger.Info().
		Int("tags", len(tags)).
		Str("text_model", artifact.TextModel).
		Str("visual_model", artifact.VisualModel).
		Dur("took", time.Since(start)).
		Msg("catalog generated")

	return artifact, nil
}

// Ensure returns a ready catalog: the stored artifact when it matches the
// vocabulary and models, otherwise a fresh build saved back to disk.
// With regenerate set, the stored artifact is ignored.
func Ensure(ctx context.Context, tagsPath, artifactPath string, regenerate bool, text embeddings.TextProvider, visual embeddings.VisualProvider, logger zerolog.Logger) (*recommend.Catalog, error) {
	tags, err := LoadTags(tagsPath)
	if err != nil {
		return nil, err
	}

	if !regenerate {
		if artifact, err := LoadArtifact(artifactPath); err == nil {
			if artifact.Matches(tags, text.ModelID(), visual.ModelID()) {
				logger.Info().Int("tags", len(tags)).Str("path", artifactPath).Msg("catalog loaded from artifact")
				return artifact.Catalog()
			}
			logger.Info().Str("path", artifactPath).Msg("catalog artifact stale, regenerating")
		}
	}

	artifact, err := Build(ctx, tags, text, visual, logger)
	if err != nil {
		return nil, err
	}
	if err := artifact.Save(artifactPath); err != nil {
		// A failed save costs a rebuild next start, not correctness.
		logger.Warn().Err(err).Str("path", artifactPath).Msg("failed to save catalog artifact")
	}
	return artifact.Catalog()
}
