// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package learning

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

// Field alias tables, in priority order. Upload and import callers disagree
// on key names; the first present, usable value wins.
var (
	textAliases      = []string{"content", "text", "caption"}
	idAliases        = []string{"id", "content_id", "post_id"}
	timestampAliases = []string{"posted_at", "scheduled_for", "uploaded_at", "created_time"}
	metricsAliases   = []string{"metrics", "engagement"}

	sharesAliases      = []string{"shares", "reposts"}
	savesAliases       = []string{"saves", "bookmarks"}
	impressionsAliases = []string{"impressions", "views"}
)

// timestampLayouts are accepted creation-time formats. ISO-8601 with or
// without an offset marker; date-only as a last resort.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// syntheticIDPrefix marks record ids generated here rather than supplied by
// the caller, so every stored record is addressable without caller cooperation.
const syntheticIDPrefix = "manual-"

// Normalizer converts heterogeneous raw content payloads into canonical
// performance records. The zero value is not usable; call NewNormalizer.
type Normalizer struct {
	now   func() time.Time
	newID func() string
}

// NewNormalizer returns a Normalizer using the wall clock and UUID-based
// synthesized ids.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		now:   time.Now,
		newID: func() string { return syntheticIDPrefix + uuid.New().String() },
	}
}

// Normalize converts a raw content item into a canonical PerformanceRecord.
// It returns nil when the item carries no usable text: such records cannot be
// analyzed and are silently dropped from the batch. All other malformed
// fields degrade instead of failing the record: unparsable timestamps become
// the current time, non-numeric metrics become 0.
func (n *Normalizer) Normalize(raw models.ContentItem, defaultPlatform string) *models.PerformanceRecord {
	if raw == nil {
		return nil
	}

	text := firstString(raw, textAliases)
	if text == "" {
		return nil
	}

	id := firstString(raw, idAliases)
	if id == "" {
		id = n.newID()
	}

	platform := raw.String("platform")
	if platform == "" {
		platform = defaultPlatform
	}
	if platform == "" {
		platform = "manual"
	}

	created := n.parseTimestamp(firstString(raw, timestampAliases))

	metrics := n.normalizeMetrics(raw)

	return &models.PerformanceRecord{
		ID:           id,
		Platform:     platform,
		Content:      text,
		CreatedTime:  created,
		Metrics:      metrics,
		Hashtags:     normalizeHashtags(raw["hashtags"]),
		ManualSource: true,
	}
}

// normalizeMetrics reads the engagement sub-object and derives the total and
// rate. Every ratio special-cases a zero denominator to 0.
func (n *Normalizer) normalizeMetrics(raw models.ContentItem) models.MetricSet {
	sub := subObject(raw, metricsAliases)

	likes := coerceCount(firstValue(sub, []string{"likes"}))
	comments := coerceCount(firstValue(sub, []string{"comments"}))
	shares := coerceCount(firstValue(sub, sharesAliases))
	saves := coerceCount(firstValue(sub, savesAliases))
	reach := coerceCount(firstValue(sub, []string{"reach"}))
	impressions := coerceCount(firstValue(sub, impressionsAliases))
	if impressions == 0 {
		impressions = reach
	}

	total := likes + comments + shares + saves

	rate, ok := coerceFloat(sub["engagement_rate"])
	if !ok {
		denominator := reach
		if denominator == 0 {
			denominator = impressions
		}
		if denominator > 0 {
			rate = float64(total) / float64(denominator) * 100
		} else {
			rate = 0
		}
	}
	if rate < 0 {
		rate = 0
	}

	return models.MetricSet{
		Likes:           likes,
		Comments:        comments,
		Shares:          shares,
		Saves:           saves,
		Reach:           reach,
		Impressions:     impressions,
		TotalEngagement: total,
		EngagementRate:  rate,
	}
}

// parseTimestamp parses value against the accepted layouts, degrading to the
// current time on failure so a malformed timestamp never rejects a record.
func (n *Normalizer) parseTimestamp(value string) time.Time {
	if value == "" {
		return n.now()
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return n.now()
}

// firstString returns the first non-empty string among the aliased keys.
func firstString(raw models.ContentItem, aliases []string) string {
	for _, key := range aliases {
		if s, ok := raw[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstValue returns the first present value among the aliased keys.
func firstValue(obj map[string]interface{}, aliases []string) interface{} {
	for _, key := range aliases {
		if v, ok := obj[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// subObject returns the first map-valued field among the aliased keys.
func subObject(raw models.ContentItem, aliases []string) map[string]interface{} {
	for _, key := range aliases {
		if m, ok := raw[key].(map[string]interface{}); ok {
			return m
		}
		if m, ok := raw[key].(models.ContentItem); ok {
			return m
		}
	}
	return map[string]interface{}{}
}

// coerceCount converts an arbitrary JSON value to a non-negative int.
// Invalid values become 0; coercion never panics.
func coerceCount(v interface{}) int {
	f, ok := coerceFloat(v)
	if !ok || f < 0 {
		return 0
	}
	return int(f)
}

// coerceFloat converts an arbitrary JSON value to a float64.
func coerceFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// normalizeHashtags lower-cases tags and ensures a # prefix. Accepts both
// []string and the []interface{} produced by JSON decoding.
func normalizeHashtags(v interface{}) []string {
	var raw []string
	switch x := v.(type) {
	case []string:
		raw = x
	case []interface{}:
		for _, item := range x {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	default:
		return nil
	}

	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		tags = append(tags, tag)
	}
	return tags
}
