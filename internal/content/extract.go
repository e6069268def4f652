// Tagweave - Multi-Modal Tag Recommendation for Blog Content
// Copyright 2026 M. Gebremedhin (mgebre)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mgebre/tagweave

package content

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	imgSrcPattern     = regexp.MustCompile(`<img[^>]+src="([^">]+)"`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	scriptPattern     = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	youtubePattern    = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([A-Za-z0-9_-]{11})`)
)

// minParagraphChars drops boilerplate fragments (menu labels, button text)
// when splitting Gutenberg content into paragraphs.
const minParagraphChars = 20

// imageExtensions are the suffixes accepted as embeddable images.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// ExtractText turns WordPress post content (Gutenberg blocks or plain HTML)
// into a single plain-text string: markup stripped, entities unescaped,
// short boilerplate fragments dropped, whitespace collapsed.
//
// Plain text without markup passes through trimmed.
func ExtractText(content string) string {
	if !strings.ContainsRune(content, '<') || !strings.ContainsRune(content, '>') {
		return strings.TrimSpace(content)
	}

	clean := scriptPattern.ReplaceAllString(content, " ")
	clean = tagPattern.ReplaceAllString(clean, " ")
	clean = html.UnescapeString(clean)

	var parts []string
	for _, p := range strings.Split(clean, "\n") {
		p = strings.TrimSpace(p)
		if len(p) > minParagraphChars {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		// No substantial paragraphs; fall back to everything.
		parts = []string{clean}
	}

	joined := strings.Join(parts, " ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(joined, " "))
}

// ExtractImageURLs collects the src of every <img> tag in the content,
// normalizing protocol-relative URLs and keeping only valid image URLs.
func ExtractImageURLs(content string) []string {
	var urls []string
	for _, m := range imgSrcPattern.FindAllStringSubmatch(content, -1) {
		src := strings.TrimSpace(m[1])
		if strings.HasPrefix(src, "//") {
			src = "https:" + src
		}
		if IsValidImageURL(src) {
			urls = append(urls, src)
		}
	}
	return urls
}

// IsValidImageURL reports whether the URL plausibly points at an embeddable
// image: an accepted file extension or a data URL.
func IsValidImageURL(u string) bool {
	if strings.HasPrefix(u, "data:image/") {
		return true
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return false
	}

	path := strings.ToLower(u)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// ThumbnailURL resolves a video URL to a representative still-frame image
// URL. YouTube watch/short/embed links map to the hosted thumbnail; URLs
// that already point at an image pass through. Anything else is
// unresolvable and reported false.
func ThumbnailURL(videoURL string) (string, bool) {
	if m := youtubePattern.FindStringSubmatch(videoURL); m != nil {
		return "https://img.youtube.com/vi/" + m[1] + "/hqdefault.jpg", true
	}
	if IsValidImageURL(videoURL) {
		return videoURL, true
	}
	return "", false
}
