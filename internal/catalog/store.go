// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/mgebre/tagweave/internal/recommend"
)

// Artifact is the on-disk form of a generated catalog: the tag vocabulary
// projected into both embedding spaces, stamped with the models that
// produced it so a model swap invalidates it.
type Artifact struct {
	TextModel   string        `json:"text_model"`
	VisualModel string        `json:"visual_model"`
	GeneratedAt time.Time     `json:"generated_at"`
	Tags        []ArtifactTag `json:"tags"`
}

// ArtifactTag holds one tag's embeddings.
type ArtifactTag struct {
	Name   string           `json:"name"`
	Text   recommend.Vector `json:"text"`
	Visual recommend.Vector `json:"visual"`
}

// LoadTags reads a newline-delimited vocabulary file. Blank lines and
// lines starting with # are skipped; duplicate names (case-insensitive)
// keep their first occurrence.
func LoadTags(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}

	seen := make(map[string]struct{})
	var tags []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key := strings.ToLower(line)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, line)
	}

	if len(tags) == 0 {
		return nil, fmt.Errorf("vocabulary %s contains no tags", path)
	}
	return tags, nil
}

// LoadArtifact reads a catalog artifact from disk.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse artifact %s: %w", path, err)
	}
	return &a, nil
}

// Save writes the artifact atomically: a temp file in the target directory
// renamed into place, so a crash mid-write never leaves a torn artifact.
func (a *Artifact) Save(path string) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close artifact: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace artifact %s: %w", path, err)
	}
	return nil
}

// Matches reports whether the artifact was generated by the given models
// for exactly the given vocabulary, order included. Order matters because
// catalog position is the ranking tie-breaker.
func (a *Artifact) Matches(tags []string, textModel, visualModel string) bool {
	if a.TextModel != textModel || a.VisualModel != visualModel {
		return false
	}
	if len(a.Tags) != len(tags) {
		return false
	}
	for i, tag := range tags {
		if a.Tags[i].Name != tag {
			return false
		}
	}
	return true
}

// Catalog materializes the artifact into a scoring catalog.
func (a *Artifact) Catalog() (*recommend.Catalog, error) {
	entries := make([]recommend.TagEntry, len(a.Tags))
	for i, t := range a.Tags {
		entries[i] = recommend.TagEntry{
			Name:   t.Name,
			Text:   t.Text,
			Visual: t.Visual,
		}
	}
	return recommend.NewCatalog(entries)
}
