// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

// Package learning aggregates engagement metrics from uploaded content into
// posting-time, hashtag and content-style insights, and recommends how to
// shape future posts.
//
// The package has no dependency on the store or API layers; the ContentSource
// interface lets the engine pull raw content without creating import cycles.
package learning

import (
	"context"
	"fmt"
	"time"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

// ContentSource supplies raw content items for ingestion. Implemented by the
// content store.
type ContentSource interface {
	// GetAllContent returns up to limit items, newest-first by upload time.
	GetAllContent(ctx context.Context, limit int) ([]models.ContentItem, error)
}

// BucketStat aggregates engagement scores for one group of records.
type BucketStat struct {
	AvgEngagement float64 `json:"avg_engagement"`
	PostCount     int     `json:"post_count"`
}

// HashtagStat is the aggregate performance of a single hashtag.
type HashtagStat struct {
	Tag           string  `json:"tag"`
	AvgEngagement float64 `json:"avg_engagement"`
	UsageCount    int     `json:"usage_count"`
}

// PostingTimes holds the highest-scoring posting hours and weekdays.
// Hours are 0-23; days are 0-6 with Monday as 0.
type PostingTimes struct {
	BestHours []int `json:"best_hours"`
	BestDays  []int `json:"best_days"`
}

// PatternInsights is a recomputed-on-demand snapshot derived from the
// performance history. It is never persisted independently.
type PatternInsights struct {
	OptimalPostingTimes      PostingTimes           `json:"optimal_posting_times"`
	ContentTypePerformance   map[string]BucketStat  `json:"content_type_performance"`
	TopPerformingHashtags    []HashtagStat          `json:"top_performing_hashtags"`
	ContentLengthPerformance map[string]BucketStat  `json:"content_length_optimization"`
	EngagementPatterns       map[string]interface{} `json:"engagement_patterns"`
	DataPoints               int                    `json:"data_points"`
	AnalyzedAt               time.Time              `json:"analyzed_at"`
}

// PostingTimeRecommendation is the concrete "when should I post" answer.
type PostingTimeRecommendation struct {
	RecommendedHour int   `json:"recommended_hour"`
	RecommendedDays []int `json:"recommended_days"`
}

// Recommendations is the payload of the "what should I post" query.
type Recommendations struct {
	RecommendedContentType     string                    `json:"recommended_content_type"`
	RecommendedHashtags        []string                  `json:"recommended_hashtags"`
	OptimalPostingTime         PostingTimeRecommendation `json:"optimal_posting_time"`
	ContentStyleSuggestions    []string                  `json:"content_style_suggestions"`
	EngagementOptimizationTips []string                  `json:"engagement_optimization_tips"`
	InsightsUsed               bool                      `json:"insights_used"`
}

// Status reports the engine's readiness for analysis.
type Status struct {
	DataPoints     int        `json:"data_points"`
	MinDataPoints  int        `json:"min_data_points"`
	Ready          bool       `json:"ready"`
	LastAnalyzedAt *time.Time `json:"last_analyzed_at,omitempty"`
}

// InsufficientDataError is returned when the performance history holds fewer
// records than the statistical floor. It is an expected steady state early in
// a deployment's life, not a fault.
type InsufficientDataError struct {
	DataPoints int
	Required   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for analysis: %d of %d required data points", e.DataPoints, e.Required)
}

// Guidance returns actionable text for callers that must degrade gracefully.
func (e *InsufficientDataError) Guidance() string {
	return fmt.Sprintf("Upload at least %d posts with engagement metrics to unlock recommendations (currently %d). "+
		"Until then, content is generated with default best practices.", e.Required, e.DataPoints)
}
