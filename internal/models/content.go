// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package models

import "time"

// ContentItem is a raw content payload as uploaded or imported. Callers use
// differing key names (text vs caption, metrics vs engagement), so the type
// stays schemaless and the learning normalizer resolves aliases into a
// PerformanceRecord.
type ContentItem map[string]interface{}

// String returns the string value for key, or "" when absent or not a string.
func (c ContentItem) String(key string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return ""
}

// MetricSet is the fixed set of engagement counters tracked per record.
// All counters are non-negative; TotalEngagement and EngagementRate are
// derived during normalization.
type MetricSet struct {
	Likes       int `json:"likes"`
	Comments    int `json:"comments"`
	Shares      int `json:"shares"`
	Saves       int `json:"saves"`
	Reach       int `json:"reach"`
	Impressions int `json:"impressions"`

	TotalEngagement int     `json:"total_engagement"`
	EngagementRate  float64 `json:"engagement_rate"`
}

// PerformanceRecord is the canonical, normalized form of a ContentItem.
// Every record held in the performance history has a non-empty Content and a
// well-formed metric block with EngagementRate >= 0.
type PerformanceRecord struct {
	ID           string    `json:"post_id"`
	Platform     string    `json:"platform"`
	Content      string    `json:"content"`
	CreatedTime  time.Time `json:"created_time"`
	Metrics      MetricSet `json:"metrics"`
	Hashtags     []string  `json:"hashtags"`
	ManualSource bool      `json:"manual_source"`
}
