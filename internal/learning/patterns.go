// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package learning

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

// bucketFloor is the minimum observations a posting-time or hashtag bucket
// needs before it participates in a ranking. Independent of the global
// MinDataPoints gate.
const bucketFloor = 3

// topHours/topDays/topHashtags limit the result sizes.
const (
	topHours    = 3
	topDays     = 3
	topHashtags = 20
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

// contentRule pairs a content-type label with its trigger keywords.
// Evaluated in order, first match wins.
type contentRule struct {
	label    string
	keywords []string
}

// contentRules classify post text by case-insensitive substring match.
// Unmatched posts fall through to "general".
var contentRules = []contentRule{
	{label: "property_listing", keywords: []string{"just listed", "new listing"}},
	{label: "market_update", keywords: []string{"market update", "trends"}},
	{label: "educational", keywords: []string{"tip", "advice"}},
}

const generalContentType = "general"

// lengthBucket labels content by character count.
func lengthBucket(length int) string {
	switch {
	case length < 100:
		return "short"
	case length < 300:
		return "medium"
	default:
		return "long"
	}
}

// classifyContent returns the content-type label for a post's text.
func classifyContent(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range contentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return generalContentType
}

// extractHashtags returns the lower-cased hashtags embedded in text.
func extractHashtags(text string) []string {
	matches := hashtagPattern.FindAllString(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.ToLower(m))
	}
	return tags
}

// Analyzer computes aggregate insights from a performance history snapshot.
type Analyzer struct {
	// MinDataPoints is the global statistical floor; below it Analyze
	// returns an InsufficientDataError instead of partial insights.
	MinDataPoints int

	now func() time.Time
}

// NewAnalyzer returns an analyzer with the given global floor.
func NewAnalyzer(minDataPoints int) *Analyzer {
	if minDataPoints < 1 {
		minDataPoints = 10
	}
	return &Analyzer{MinDataPoints: minDataPoints, now: time.Now}
}

// Analyze computes the full insight snapshot from history. The sub-analyses
// are independent and order-insensitive; each ranking breaks score ties
// deterministically.
func (a *Analyzer) Analyze(history []models.PerformanceRecord) (*PatternInsights, error) {
	if len(history) < a.MinDataPoints {
		return nil, &InsufficientDataError{DataPoints: len(history), Required: a.MinDataPoints}
	}

	scores := make([]float64, len(history))
	for i := range history {
		scores[i] = EngagementScore(history[i])
	}

	return &PatternInsights{
		OptimalPostingTimes:      a.analyzePostingTimes(history, scores),
		ContentTypePerformance:   a.analyzeContentTypes(history, scores),
		TopPerformingHashtags:    a.analyzeHashtags(history, scores),
		ContentLengthPerformance: a.analyzeContentLength(history, scores),
		EngagementPatterns:       map[string]interface{}{},
		DataPoints:               len(history),
		AnalyzedAt:               a.now(),
	}, nil
}

// analyzePostingTimes groups scores by hour-of-day and day-of-week, keeps
// buckets with at least bucketFloor observations and ranks them by mean
// score descending. Days use Monday=0 .. Sunday=6.
func (a *Analyzer) analyzePostingTimes(history []models.PerformanceRecord, scores []float64) PostingTimes {
	hourScores := make(map[int][]float64)
	dayScores := make(map[int][]float64)

	for i := range history {
		created := history[i].CreatedTime
		if created.IsZero() {
			continue
		}
		hourScores[created.Hour()] = append(hourScores[created.Hour()], scores[i])
		dayScores[mondayIndexed(created.Weekday())] = append(dayScores[mondayIndexed(created.Weekday())], scores[i])
	}

	return PostingTimes{
		BestHours: topBuckets(hourScores, topHours),
		BestDays:  topBuckets(dayScores, topDays),
	}
}

// mondayIndexed converts time.Weekday (Sunday=0) to Monday=0 indexing.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// topBuckets ranks bucket keys by mean score descending, excluding buckets
// below the observation floor. Ties break on the smaller key so rankings are
// stable across runs.
func topBuckets(buckets map[int][]float64, limit int) []int {
	type bucketMean struct {
		key  int
		mean float64
	}

	ranked := make([]bucketMean, 0, len(buckets))
	for key, scores := range buckets {
		if len(scores) < bucketFloor {
			continue
		}
		ranked = append(ranked, bucketMean{key: key, mean: mean(scores)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].mean != ranked[j].mean {
			return ranked[i].mean > ranked[j].mean
		}
		return ranked[i].key < ranked[j].key
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	keys := make([]int, len(ranked))
	for i, b := range ranked {
		keys[i] = b.key
	}
	return keys
}

// analyzeContentTypes aggregates mean score and count per content-type label.
func (a *Analyzer) analyzeContentTypes(history []models.PerformanceRecord, scores []float64) map[string]BucketStat {
	grouped := make(map[string][]float64)
	for i := range history {
		label := classifyContent(history[i].Content)
		grouped[label] = append(grouped[label], scores[i])
	}
	return bucketStats(grouped)
}

// analyzeContentLength aggregates mean score and count per length bucket.
func (a *Analyzer) analyzeContentLength(history []models.PerformanceRecord, scores []float64) map[string]BucketStat {
	grouped := make(map[string][]float64)
	for i := range history {
		label := lengthBucket(len(history[i].Content))
		grouped[label] = append(grouped[label], scores[i])
	}
	return bucketStats(grouped)
}

// analyzeHashtags extracts hashtags from the raw content text (text-embedded
// tags count, not just the structured hashtag field) and ranks tags used in
// at least bucketFloor records by mean score descending. Duplicate uses of a
// tag within one post count once.
func (a *Analyzer) analyzeHashtags(history []models.PerformanceRecord, scores []float64) []HashtagStat {
	tagScores := make(map[string][]float64)

	for i := range history {
		seen := make(map[string]bool)
		for _, tag := range extractHashtags(history[i].Content) {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			tagScores[tag] = append(tagScores[tag], scores[i])
		}
	}

	ranked := make([]HashtagStat, 0, len(tagScores))
	for tag, s := range tagScores {
		if len(s) < bucketFloor {
			continue
		}
		ranked = append(ranked, HashtagStat{
			Tag:           tag,
			AvgEngagement: mean(s),
			UsageCount:    len(s),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AvgEngagement != ranked[j].AvgEngagement {
			return ranked[i].AvgEngagement > ranked[j].AvgEngagement
		}
		return ranked[i].Tag < ranked[j].Tag
	})

	if len(ranked) > topHashtags {
		ranked = ranked[:topHashtags]
	}
	return ranked
}

func bucketStats(grouped map[string][]float64) map[string]BucketStat {
	out := make(map[string]BucketStat, len(grouped))
	for label, scores := range grouped {
		out[label] = BucketStat{AvgEngagement: mean(scores), PostCount: len(scores)}
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
