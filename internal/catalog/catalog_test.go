// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mgebre/tagweave/internal/recommend"
)

// fakeTextProvider embeds each input to a deterministic vector and counts
// calls so tests can tell a rebuild from an artifact load.
type fakeTextProvider struct {
	calls int
}

func (f *fakeTextProvider) ModelID() string { return "fake-text" }

func (f *fakeTextProvider) Embed(_ context.Context, text string) (recommend.Vector, error) {
	f.calls++
	return recommend.Vector{float32(len(text)), 1, 0}, nil
}

type fakeVisualProvider struct {
	calls int
}

func (f *fakeVisualProvider) ModelID() string { return "fake-visual" }

func (f *fakeVisualProvider) EmbedImage(_ context.Context, _ []byte) (recommend.Vector, error) {
	return recommend.Vector{1, 0}, nil
}

func (f *fakeVisualProvider) EmbedText(_ context.Context, text string) (recommend.Vector, error) {
	f.calls++
	return recommend.Vector{float32(len(text)), 1}, nil
}

func writeTags(t *testing.T, dir string, lines string) string {
	t.Helper()
	path := filepath.Join(dir, "tags.txt")
	if err := os.WriteFile(path, []byte(lines), 0o600); err != nil {
		t.Fatalf("write tags: %v", err)
	}
	return path
}

func TestLoadTags(t *testing.T) {
	path := writeTags(t, t.TempDir(), `
machine learning
# a comment
photography

Photography
travel
`)
	tags, err := LoadTags(path)
	if err != nil {
		t.Fatalf("LoadTags: %v", err)
	}
	want := []string{"machine learning", "photography", "travel"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestLoadTagsEmptyFile(t *testing.T) {
	path := writeTags(t, t.TempDir(), "\n# only comments\n")
	if _, err := LoadTags(path); err == nil {
		t.Error("expected error for vocabulary with no tags")
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "catalog.json")

	original := &Artifact{
		TextModel:   "fake-text",
		VisualModel: "fake-visual",
		Tags: []ArtifactTag{
			{Name: "travel", Text: recommend.Vector{1, 2, 3}, Visual: recommend.Vector{4, 5}},
		},
	}
	if err := original.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadArtifact(path)
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}
	if loaded.TextModel != "fake-text" || len(loaded.Tags) != 1 {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.Tags[0].Name != "travel" || loaded.Tags[0].Text[2] != 3 {
		t.Errorf("tag = %+v", loaded.Tags[0])
	}
}

func TestArtifactMatches(t *testing.T) {
	a := &Artifact{
		TextModel:   "m1",
		VisualModel: "m2",
		Tags:        []ArtifactTag{{Name: "a"}, {Name: "b"}},
	}

	if !a.Matches([]string{"a", "b"}, "m1", "m2") {
		t.Error("identical vocabulary and models should match")
	}
	if a.Matches([]string{"b", "a"}, "m1", "m2") {
		t.Error("reordered vocabulary must not match")
	}
	if a.Matches([]string{"a", "b"}, "other", "m2") {
		t.Error("different text model must not match")
	}
	if a.Matches([]string{"a"}, "m1", "m2") {
		t.Error("shorter vocabulary must not match")
	}
}

func TestBuildEmbedsBothSpaces(t *testing.T) {
	text := &fakeTextProvider{}
	visual := &fakeVisualProvider{}

	artifact, err := Build(context.Background(), []string{"travel", "photography"}, text, visual, zerolog.Nop())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(artifact.Tags) != 2 {
		t.Fatalf("tags = %d, want 2", len(artifact.Tags))
	}
	if text.calls != 2 || visual.calls != 2 {
		t.Errorf("provider calls text=%d visual=%d, want 2 each", text.calls, visual.calls)
	}
	if artifact.TextModel != "fake-text" || artifact.VisualModel != "fake-visual" {
		t.Errorf("models = %q/%q", artifact.TextModel, artifact.VisualModel)
	}

	cat, err := artifact.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if cat.Len() != 2 || cat.Dim(recommend.SpaceText) != 3 || cat.Dim(recommend.SpaceVisual) != 2 {
		t.Errorf("catalog dims = %d/%d", cat.Dim(recommend.SpaceText), cat.Dim(recommend.SpaceVisual))
	}
}

func TestEnsureUsesArtifactWhenFresh(t *testing.T) {
	dir := t.TempDir()
	tagsPath := writeTags(t, dir, "travel\nphotography\n")
	artifactPath := filepath.Join(dir, "catalog.json")

	text := &fakeTextProvider{}
	visual := &fakeVisualProvider{}

	// First run builds and saves.
	if _, err := Ensure(context.Background(), tagsPath, artifactPath, false, text, visual, zerolog.Nop()); err != nil {
		t.Fatalf("first Ensure: %v", err)
	}
	if text.calls != 2 {
		t.Fatalf("first run should embed, got %d calls", text.calls)
	}

	// Second run loads the artifact, no provider calls.
	text.calls = 0
	visual.calls = 0
	if _, err := Ensure(context.Background(), tagsPath, artifactPath, false, text, visual, zerolog.Nop()); err != nil {
		t.Fatalf("second Ensure: %v", err)
	}
	if text.calls != 0 || visual.calls != 0 {
		t.Errorf("second run hit providers (text=%d visual=%d), want artifact load", text.calls, visual.calls)
	}
}

func TestEnsureRebuildsOnVocabularyChange(t *testing.T) {
	dir := t.TempDir()
	tagsPath := writeTags(t, dir, "travel\n")
	artifactPath := filepath.Join(dir, "catalog.json")

	text := &fakeTextProvider{}
	visual := &fakeVisualProvider{}

	if _, err := Ensure(context.Background(), tagsPath, artifactPath, false, text, visual, zerolog.Nop()); err != nil {
		t.Fatalf("first Ensure: %v", err)
	}

	// Grow the vocabulary; the stored artifact is now stale.
	tagsPath = writeTags(t, dir, "travel\nfood\n")
	text.calls = 0
	cat, err := Ensure(context.Background(), tagsPath, artifactPath, false, text, visual, zerolog.Nop())
	if err != nil {
		t.Fatalf("second Ensure: %v", err)
	}
	if text.calls != 2 {
		t.Errorf("stale artifact should trigger rebuild, got %d calls", text.calls)
	}
	if cat.Len() != 2 {
		t.Errorf("catalog size = %d, want 2", cat.Len())
	}
}

func TestEnsureRegenerateFlag(t *testing.T) {
	dir := t.TempDir()
	tagsPath := writeTags(t, dir, "travel\n")
	artifactPath := filepath.Join(dir, "catalog.json")

	text := &fakeTextProvider{}
	visual := &fakeVisualProvider{}

	if _, err := Ensure(context.Background(), tagsPath, artifactPath, false, text, visual, zerolog.Nop()); err != nil {
		t.Fatalf("first Ensure: %v", err)
	}

	text.calls = 0
	if _, err := Ensure(context.Background(), tagsPath, artifactPath, true, text, visual, zerolog.Nop()); err != nil {
		t.Fatalf("regenerate Ensure: %v", err)
	}
	if text.calls != 1 {
		t.Errorf("regenerate should ignore the artifact, got %d calls", text.calls)
	}
}
