// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package learning

import (
	"strings"
	"testing"
	"time"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

func fixedNormalizer(now time.Time) *Normalizer {
	n := 0
	return &Normalizer{
		now: func() time.Time { return now },
		newID: func() string {
			n++
			return "manual-test-" + string(rune('a'+n-1))
		},
	}
}

func TestNormalizeDropsTextlessItems(t *testing.T) {
	norm := fixedNormalizer(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		raw  models.ContentItem
	}{
		{name: "nil item", raw: nil},
		{name: "empty item", raw: models.ContentItem{}},
		{name: "empty text", raw: models.ContentItem{"content": ""}},
		{name: "non-string text", raw: models.ContentItem{"content": 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := norm.Normalize(tt.raw, "instagram"); rec != nil {
				t.Fatalf("Normalize() = %+v, want nil", rec)
			}
		})
	}
}

func TestNormalizeFieldAliases(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		raw         models.ContentItem
		wantText    string
		wantID      string
		wantShares  int
		wantSaves   int
		wantImpress int
	}{
		{
			name:     "caption aliases text",
			raw:      models.ContentItem{"caption": "Open house Sunday"},
			wantText: "Open house Sunday",
		},
		{
			name:     "content wins over caption",
			raw:      models.ContentItem{"content": "primary", "caption": "secondary"},
			wantText: "primary",
		},
		{
			name:     "post_id aliases id",
			raw:      models.ContentItem{"content": "x", "post_id": "fb-123"},
			wantText: "x",
			wantID:   "fb-123",
		},
		{
			name: "reposts and bookmarks alias shares and saves",
			raw: models.ContentItem{
				"content": "x",
				"metrics": map[string]interface{}{"reposts": 4.0, "bookmarks": 7.0},
			},
			wantText:   "x",
			wantShares: 4,
			wantSaves:  7,
		},
		{
			name: "views alias impressions",
			raw: models.ContentItem{
				"content":    "x",
				"engagement": map[string]interface{}{"views": 250.0},
			},
			wantText:    "x",
			wantImpress: 250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := fixedNormalizer(now).Normalize(tt.raw, "instagram")
			if rec == nil {
				t.Fatal("Normalize() = nil, want record")
			}
			if rec.Content != tt.wantText {
				t.Errorf("Content = %q, want %q", rec.Content, tt.wantText)
			}
			if tt.wantID != "" && rec.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", rec.ID, tt.wantID)
			}
			if rec.Metrics.Shares != tt.wantShares {
				t.Errorf("Shares = %d, want %d", rec.Metrics.Shares, tt.wantShares)
			}
			if rec.Metrics.Saves != tt.wantSaves {
				t.Errorf("Saves = %d, want %d", rec.Metrics.Saves, tt.wantSaves)
			}
			if rec.Metrics.Impressions != tt.wantImpress {
				t.Errorf("Impressions = %d, want %d", rec.Metrics.Impressions, tt.wantImpress)
			}
		})
	}
}

func TestNormalizeSyntheticID(t *testing.T) {
	rec := fixedNormalizer(time.Now()).Normalize(models.ContentItem{"content": "no id here"}, "")
	if rec == nil {
		t.Fatal("Normalize() = nil, want record")
	}
	if !strings.HasPrefix(rec.ID, syntheticIDPrefix) {
		t.Errorf("ID = %q, want prefix %q", rec.ID, syntheticIDPrefix)
	}
	if !rec.ManualSource {
		t.Error("ManualSource = false, want true")
	}
}

func TestNormalizePlatformFallback(t *testing.T) {
	tests := []struct {
		name            string
		raw             models.ContentItem
		defaultPlatform string
		want            string
	}{
		{
			name:            "explicit platform wins",
			raw:             models.ContentItem{"content": "x", "platform": "facebook"},
			defaultPlatform: "instagram",
			want:            "facebook",
		},
		{
			name:            "default platform fills gap",
			raw:             models.ContentItem{"content": "x"},
			defaultPlatform: "instagram",
			want:            "instagram",
		},
		{
			name: "manual when nothing set",
			raw:  models.ContentItem{"content": "x"},
			want: "manual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := fixedNormalizer(time.Now()).Normalize(tt.raw, tt.defaultPlatform)
			if rec.Platform != tt.want {
				t.Errorf("Platform = %q, want %q", rec.Platform, tt.want)
			}
		})
	}
}

func TestNormalizeTimestampDegradation(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value interface{}
		want  time.Time
	}{
		{name: "rfc3339", value: "2026-02-14T09:30:00Z", want: time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)},
		{name: "space separated", value: "2026-02-14 09:30:00", want: time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)},
		{name: "date only", value: "2026-02-14", want: time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)},
		{name: "garbage degrades to now", value: "not-a-time", want: now},
		{name: "missing degrades to now", value: nil, want: now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := models.ContentItem{"content": "x"}
			if tt.value != nil {
				raw["posted_at"] = tt.value
			}
			rec := fixedNormalizer(now).Normalize(raw, "")
			if !rec.CreatedTime.Equal(tt.want) {
				t.Errorf("CreatedTime = %v, want %v", rec.CreatedTime, tt.want)
			}
		})
	}
}

func TestNormalizeMetricCoercion(t *testing.T) {
	raw := models.ContentItem{
		"content": "x",
		"metrics": map[string]interface{}{
			"likes":       "12",     // numeric string
			"comments":    -5.0,     // negative clamps to 0
			"shares":      "banana", // garbage becomes 0
			"reach":       100.0,
			"impressions": 400.0,
		},
	}

	rec := fixedNormalizer(time.Now()).Normalize(raw, "")
	m := rec.Metrics
	if m.Likes != 12 || m.Comments != 0 || m.Shares != 0 {
		t.Errorf("coerced counts = likes %d comments %d shares %d, want 12 0 0", m.Likes, m.Comments, m.Shares)
	}
	if m.TotalEngagement != 12 {
		t.Errorf("TotalEngagement = %d, want 12", m.TotalEngagement)
	}
	// rate = 12 / reach(100) * 100
	if m.EngagementRate != 12 {
		t.Errorf("EngagementRate = %v, want 12", m.EngagementRate)
	}
}

func TestNormalizeZeroDenominatorRate(t *testing.T) {
	raw := models.ContentItem{
		"content": "x",
		"metrics": map[string]interface{}{"likes": 9.0},
	}
	rec := fixedNormalizer(time.Now()).Normalize(raw, "")
	if rec.Metrics.EngagementRate != 0 {
		t.Errorf("EngagementRate = %v, want 0 with zero denominator", rec.Metrics.EngagementRate)
	}
}

func TestNormalizeExplicitRateWins(t *testing.T) {
	raw := models.ContentItem{
		"content": "x",
		"metrics": map[string]interface{}{
			"likes":           10.0,
			"reach":           100.0,
			"engagement_rate": 3.7,
		},
	}
	rec := fixedNormalizer(time.Now()).Normalize(raw, "")
	if rec.Metrics.EngagementRate != 3.7 {
		t.Errorf("EngagementRate = %v, want supplied 3.7", rec.Metrics.EngagementRate)
	}
}

func TestNormalizeHashtagCleanup(t *testing.T) {
	raw := models.ContentItem{
		"content":  "x",
		"hashtags": []interface{}{"JustListed", "#windsor", "  ", "Realtor"},
	}
	rec := fixedNormalizer(time.Now()).Normalize(raw, "")
	want := []string{"#justlisted", "#windsor", "#realtor"}
	if len(rec.Hashtags) != len(want) {
		t.Fatalf("Hashtags = %v, want %v", rec.Hashtags, want)
	}
	for i := range want {
		if rec.Hashtags[i] != want[i] {
			t.Errorf("Hashtags[%d] = %q, want %q", i, rec.Hashtags[i], want[i])
		}
	}
}

// Re-normalizing a marshaled record must reproduce it: the record's own JSON
// keys are all in the alias tables.
func TestNormalizeIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := fixedNormalizer(now).Normalize(models.ContentItem{
		"content":   "Just listed in Windsor #justlisted",
		"id":        "post-1",
		"posted_at": "2026-02-14T09:30:00Z",
		"metrics": map[string]interface{}{
			"likes": 10.0, "comments": 2.0, "impressions": 500.0,
		},
	}, "instagram")

	roundTrip := models.ContentItem{
		"post_id":      first.ID,
		"platform":     first.Platform,
		"content":      first.Content,
		"created_time": first.CreatedTime.Format(time.RFC3339),
		"metrics": map[string]interface{}{
			"likes":           float64(first.Metrics.Likes),
			"comments":        float64(first.Metrics.Comments),
			"shares":          float64(first.Metrics.Shares),
			"saves":           float64(first.Metrics.Saves),
			"reach":           float64(first.Metrics.Reach),
			"impressions":     float64(first.Metrics.Impressions),
			"engagement_rate": first.Metrics.EngagementRate,
		},
	}

	second := fixedNormalizer(now).Normalize(roundTrip, "instagram")
	if second == nil {
		t.Fatal("second Normalize() = nil")
	}
	if second.ID != first.ID || second.Content != first.Content || second.Platform != first.Platform {
		t.Errorf("identity fields changed: %+v vs %+v", second, first)
	}
	if !second.CreatedTime.Equal(first.CreatedTime) {
		t.Errorf("CreatedTime = %v, want %v", second.CreatedTime, first.CreatedTime)
	}
	if second.Metrics != first.Metrics {
		t.Errorf("Metrics = %+v, want %+v", second.Metrics, first.Metrics)
	}
}
