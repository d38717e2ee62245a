// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package learning

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/config"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

// Day names for Monday=0 indexing, used in human-readable recommendations.
var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Engine is the public query surface of the learning subsystem. It owns the
// performance history and the latest insight snapshot; both are guarded so
// concurrent request handling stays safe. Construct one per process and
// inject it where needed; there is no package-level singleton.
type Engine struct {
	cfg        config.LearningConfig
	source     ContentSource
	normalizer *Normalizer
	analyzer   *Analyzer
	history    *History
	logger     zerolog.Logger

	insightsMu  sync.RWMutex
	insights    *PatternInsights
	insightsGen uint64 // history generation the snapshot was computed from
}

// NewEngine creates an engine reading raw content from source.
func NewEngine(cfg config.LearningConfig, source ContentSource, logger zerolog.Logger) *Engine {
	return &Engine{
		cfg:        cfg,
		source:     source,
		normalizer: NewNormalizer(),
		analyzer:   NewAnalyzer(cfg.MinDataPoints),
		history:    NewHistory(cfg.RetentionDays, cfg.HistoryCap),
		logger:     logger.With().Str("component", "learning").Logger(),
	}
}

// History exposes the engine's performance history, mainly for tests and the
// status endpoint.
func (e *Engine) History() *History {
	return e.history
}

// FetchPostPerformance normalizes a batch of content into performance
// records and folds them into the history. When items is nil the engine
// pulls recent content from its source; callers may instead supply a
// pre-filtered list. Malformed items are dropped from the batch without
// failing the ingestion.
func (e *Engine) FetchPostPerformance(ctx context.Context, platform string, items []models.ContentItem, limit int) ([]models.PerformanceRecord, error) {
	if platform == "" {
		platform = e.cfg.DefaultPlatform
	}
	if limit <= 0 {
		limit = e.cfg.IngestLimit
	}

	if items == nil {
		fetched, err := e.source.GetAllContent(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("loading content for ingestion: %w", err)
		}
		items = fetched
	}

	records := make([]models.PerformanceRecord, 0, len(items))
	dropped := 0
	for _, item := range items {
		rec := e.normalizer.Normalize(item, platform)
		if rec == nil {
			dropped++
			continue
		}
		records = append(records, *rec)
	}

	e.history.UpsertMany(records)

	e.logger.Info().
		Int("ingested", len(records)).
		Int("dropped", dropped).
		Int("history_size", e.history.Len()).
		Str("platform", platform).
		Msg("performance history updated")

	return records, nil
}

// AnalyzePerformancePatterns recomputes the insight snapshot from the
// current history. Returns an InsufficientDataError below the statistical
// floor; the previous snapshot is kept in that case.
func (e *Engine) AnalyzePerformancePatterns() (*PatternInsights, error) {
	// Read the generation before the snapshot: an upsert landing in
	// between invalidates this computation on the next lookup instead of
	// being masked by it.
	gen := e.history.Generation()
	insights, err := e.analyzer.Analyze(e.history.Snapshot())
	if err != nil {
		return nil, err
	}

	e.insightsMu.Lock()
	e.insights = insights
	e.insightsGen = gen
	e.insightsMu.Unlock()

	return insights, nil
}

// currentInsights returns the latest snapshot, recomputing it whenever the
// history has mutated since it was taken. An in-place replacement bumps the
// generation without changing the record count, so length comparison alone
// would serve stale data.
func (e *Engine) currentInsights() (*PatternInsights, error) {
	e.insightsMu.RLock()
	cached := e.insights
	cachedGen := e.insightsGen
	e.insightsMu.RUnlock()

	if cached != nil && cachedGen == e.history.Generation() {
		return cached, nil
	}
	return e.AnalyzePerformancePatterns()
}

// ContentRecommendations answers "what should I post". When history is below
// the statistical floor it returns an InsufficientDataError whose Guidance()
// gives the caller actionable text, so consumers can degrade gracefully
// rather than surface a bare error code.
func (e *Engine) ContentRecommendations(contentType string) (*Recommendations, error) {
	insights, err := e.currentInsights()
	if err != nil {
		return nil, err
	}

	rec := &Recommendations{
		RecommendedContentType: bestContentType(insights.ContentTypePerformance, contentType),
		RecommendedHashtags:    recommendedHashtags(insights.TopPerformingHashtags, 10),
		OptimalPostingTime:     postingTimeRecommendation(insights.OptimalPostingTimes),
		InsightsUsed:           true,
	}
	rec.ContentStyleSuggestions = styleSuggestions(insights)
	rec.EngagementOptimizationTips = optimizationTips(rec)

	return rec, nil
}

// Status reports data-point counts and readiness.
func (e *Engine) Status() Status {
	st := Status{
		DataPoints:    e.history.Len(),
		MinDataPoints: e.analyzer.MinDataPoints,
	}
	st.Ready = st.DataPoints >= st.MinDataPoints

	e.insightsMu.RLock()
	if e.insights != nil {
		t := e.insights.AnalyzedAt
		st.LastAnalyzedAt = &t
	}
	e.insightsMu.RUnlock()

	return st
}

// bestContentType returns the requested type when it has observations, else
// the highest-scoring observed type. Ties break alphabetically.
func bestContentType(perf map[string]BucketStat, requested string) string {
	if requested != "" {
		if _, ok := perf[requested]; ok {
			return requested
		}
	}

	labels := make([]string, 0, len(perf))
	for label := range perf {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		a, b := perf[labels[i]], perf[labels[j]]
		if a.AvgEngagement != b.AvgEngagement {
			return a.AvgEngagement > b.AvgEngagement
		}
		return labels[i] < labels[j]
	})

	if len(labels) == 0 {
		return generalContentType
	}
	return labels[0]
}

func recommendedHashtags(ranked []HashtagStat, limit int) []string {
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	tags := make([]string, len(ranked))
	for i, h := range ranked {
		tags[i] = h.Tag
	}
	return tags
}

// postingTimeRecommendation picks the top hour and up to two top days,
// falling back to mid-morning midweek defaults when no bucket cleared the
// observation floor.
func postingTimeRecommendation(times PostingTimes) PostingTimeRecommendation {
	rec := PostingTimeRecommendation{RecommendedHour: 10, RecommendedDays: []int{1, 3}}
	if len(times.BestHours) > 0 {
		rec.RecommendedHour = times.BestHours[0]
	}
	if len(times.BestDays) > 0 {
		days := times.BestDays
		if len(days) > 2 {
			days = days[:2]
		}
		rec.RecommendedDays = days
	}
	return rec
}

// styleSuggestions turns the length and content-type aggregates into
// human-readable guidance.
func styleSuggestions(insights *PatternInsights) []string {
	var suggestions []string

	if label, _, ok := topBucketStat(insights.ContentLengthPerformance); ok {
		switch label {
		case "short":
			suggestions = append(suggestions, "Short posts under 100 characters are performing best for you. Keep captions punchy.")
		case "medium":
			suggestions = append(suggestions, "Medium-length posts (100-300 characters) are performing best for you.")
		case "long":
			suggestions = append(suggestions, "Long-form posts over 300 characters are performing best for you. Detail pays off.")
		}
	}

	if label, _, ok := topBucketStat(insights.ContentTypePerformance); ok {
		suggestions = append(suggestions, fmt.Sprintf("Your %s content earns the highest engagement, lean into it.", humanizeLabel(label)))
	}

	return suggestions
}

// humanizeLabel turns a snake_case label into readable words.
func humanizeLabel(label string) string {
	return strings.ReplaceAll(label, "_", " ")
}

// topBucketStat returns the highest-scoring bucket, ties broken
// alphabetically for stability.
func topBucketStat(buckets map[string]BucketStat) (string, BucketStat, bool) {
	best := ""
	var bestStat BucketStat
	for label, stat := range buckets {
		if best == "" ||
			stat.AvgEngagement > bestStat.AvgEngagement ||
			(stat.AvgEngagement == bestStat.AvgEngagement && label < best) {
			best = label
			bestStat = stat
		}
	}
	return best, bestStat, best != ""
}

func optimizationTips(rec *Recommendations) []string {
	tips := []string{
		fmt.Sprintf("Schedule posts around %02d:00 for the strongest engagement.", rec.OptimalPostingTime.RecommendedHour),
	}
	if len(rec.OptimalPostingTime.RecommendedDays) > 0 {
		names := make([]string, 0, len(rec.OptimalPostingTime.RecommendedDays))
		for _, d := range rec.OptimalPostingTime.RecommendedDays {
			if d >= 0 && d < len(dayNames) {
				names = append(names, dayNames[d])
			}
		}
		if len(names) > 0 {
			tips = append(tips, "Best posting days: "+joinWithAnd(names)+".")
		}
	}
	if len(rec.RecommendedHashtags) > 0 {
		tips = append(tips, "Reuse your proven hashtags instead of experimenting every post.")
	}
	return tips
}

func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		out := items[0]
		for i := 1; i < len(items)-1; i++ {
			out += ", " + items[i]
		}
		return out + " and " + items[len(items)-1]
	}
}
