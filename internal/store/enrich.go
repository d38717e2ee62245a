// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package store

import (
	"regexp"
	"strings"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

var (
	hashtagPattern = regexp.MustCompile(`#\w+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
)

// ctaPhrases are the call-to-action markers detected in uploaded content.
var ctaPhrases = []string{
	"contact me", "call me", "dm me", "message me", "text me",
	"reach out", "get in touch", "let's talk", "let's chat",
	"schedule", "book", "visit", "see more", "click here",
	"learn more", "find out", "discover", "explore",
	"sign up", "register", "subscribe", "follow",
	"buy now", "shop now", "order now", "get started",
}

var positiveWords = []string{
	"amazing", "awesome", "beautiful", "best", "excellent", "fantastic",
	"great", "happy", "incredible", "love", "perfect", "wonderful",
	"excited", "thrilled", "delighted", "pleased", "satisfied",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "worst", "hate",
	"disappointed", "frustrated", "angry", "sad", "upset",
}

// ExtractHashtags returns all lowercased #tags found in text.
func ExtractHashtags(text string) []string {
	matches := hashtagPattern.FindAllString(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.ToLower(m))
	}
	return tags
}

// ExtractMentions returns all lowercased @handles found in text.
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllString(text, -1)
	mentions := make([]string, 0, len(matches))
	for _, m := range matches {
		mentions = append(mentions, strings.ToLower(m))
	}
	return mentions
}

// ProcessUpload enriches an uploaded content item with derived metadata:
// extracted hashtags and mentions, word and character counts, the detected
// media content type, call-to-action detection, and a sentiment label.
// The original fields are preserved; derived fields overwrite any stale
// values from a previous upload.
func (s *Store) ProcessUpload(item models.ContentItem) models.ContentItem {
	// Text alias precedence matches the ingestion normalizer: content,
	// then text, then caption.
	text := item.String("content")
	if text == "" {
		text = item.String("text")
	}
	if text == "" {
		text = item.String("caption")
	}

	enriched := make(models.ContentItem, len(item)+8)
	for k, v := range item {
		enriched[k] = v
	}

	enriched["hashtags"] = ExtractHashtags(text)
	enriched["mentions"] = ExtractMentions(text)
	enriched["content_type"] = detectContentType(item, text)
	enriched["word_count"] = len(strings.Fields(text))
	enriched["char_count"] = len(text)
	enriched["has_cta"] = detectCallToAction(text)
	enriched["sentiment"] = sentimentLabel(text)
	enriched["processed_at"] = s.now().Format(timestampLayout)
	return enriched
}

// detectContentType classifies the item from its media fields. Plain posts
// are "text"; attached images or video shift the label accordingly.
func detectContentType(item models.ContentItem, text string) string {
	hasImage := item["image_url"] != nil && item.String("image_url") != "" || item["images"] != nil
	hasVideo := item.String("video_url") != ""

	switch {
	case hasImage && text != "":
		return "image_with_text"
	case hasImage:
		return "image"
	case hasVideo && text != "":
		return "video_with_text"
	case hasVideo:
		return "video"
	default:
		return "text"
	}
}

func detectCallToAction(text string) bool {
	if text == "" {
		return false
	}
	lowered := strings.ToLower(text)
	for _, phrase := range ctaPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

// sentimentLabel gives a coarse positive/negative/neutral label by counting
// marker words. The seo package computes a finer-grained polarity score; this
// label is only stored alongside uploads for quick filtering.
func sentimentLabel(text string) string {
	if text == "" {
		return "neutral"
	}
	lowered := strings.ToLower(text)

	var positive, negative int
	for _, w := range positiveWords {
		if strings.Contains(lowered, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lowered, w) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return "positive"
	case negative > positive:
		return "negative"
	default:
		return "neutral"
	}
}
