// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package seo

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

// ctaMarkers are the phrases that count as a call-to-action during
// optimization checks.
var ctaMarkers = []string{"dm", "message", "contact", "call"}

// Optimization is the improvement report for one piece of existing content.
type Optimization struct {
	OriginalContent      string   `json:"original_content"`
	CurrentSEOScore      float64  `json:"current_seo_score"`
	Suggestions          []string `json:"suggestions"`
	OptimizedHashtags    []string `json:"optimized_hashtags"`
	EstimatedImprovement float64  `json:"estimated_improvement"`
}

// OptimizeExistingContent scores content against the default region and
// returns rule-based suggestions plus a fresh hashtag set. The estimated
// improvement is capped at 30 points.
func (s *Service) OptimizeExistingContent(ctx context.Context, content, platform string) Optimization {
	currentScore, _, _ := s.Score(ctx, content, s.region, "general")

	var suggestions []string
	contentLower := strings.ToLower(content)

	if !containsAnyKeyword(contentLower, s.keywords.Location.Primary) {
		suggestions = append(suggestions, "Add location-specific keywords (Windsor, Essex County, etc.)")
	}

	domainFound := false
	for _, group := range s.keywords.domainKeywordGroups() {
		if containsAnyKeyword(contentLower, group) {
			domainFound = true
			break
		}
	}
	if !domainFound {
		suggestions = append(suggestions, "Include real estate-specific keywords")
	}

	if !containsAny(contentLower, ctaMarkers) {
		suggestions = append(suggestions, "Add a clear call-to-action")
	}

	if len(content) < 50 {
		suggestions = append(suggestions, "Expand content for better engagement (aim for 100-300 characters)")
	} else if len(content) > 500 {
		suggestions = append(suggestions, "Consider shortening content for better readability")
	}

	return Optimization{
		OriginalContent:      content,
		CurrentSEOScore:      currentScore,
		Suggestions:          suggestions,
		OptimizedHashtags:    s.GenerateHashtags("general", platform, s.region),
		EstimatedImprovement: math.Min(100-currentScore, 30),
	}
}

// PostEvaluation is the per-post entry of a batch evaluation.
type PostEvaluation struct {
	PostID                string             `json:"post_id,omitempty"`
	Platform              string             `json:"platform"`
	SEOScore              float64            `json:"seo_score"`
	ReadabilityScore      float64            `json:"readability_score"`
	SentimentPolarity     float64            `json:"sentiment_polarity"`
	GrammarErrors         int                `json:"grammar_errors"`
	KeywordDensity        map[string]float64 `json:"keyword_density"`
	OverallKeywordDensity float64            `json:"overall_keyword_density"`
	Suggestions           []string           `json:"suggestions"`
	OptimizedHashtags     []string           `json:"optimized_hashtags"`
	EstimatedImprovement  float64            `json:"estimated_improvement"`
	CharacterCount        int                `json:"character_count"`
	ManualSource          bool               `json:"manual_source"`
}

// PostRef identifies one post inside an evaluation summary.
type PostRef struct {
	PostID   string  `json:"post_id,omitempty"`
	SEOScore float64 `json:"seo_score"`
	Platform string  `json:"platform"`
}

// SuggestionCount pairs a suggestion with how many posts triggered it.
type SuggestionCount struct {
	Suggestion string `json:"suggestion"`
	Count      int    `json:"count"`
}

// EvaluationSummary aggregates a batch evaluation.
type EvaluationSummary struct {
	EvaluatedPosts     int               `json:"evaluated_posts"`
	AverageSEOScore    float64           `json:"average_seo_score"`
	AverageReadability float64           `json:"average_readability"`
	TopPost            *PostRef          `json:"top_post,omitempty"`
	LowestPost         *PostRef          `json:"lowest_post,omitempty"`
	CommonSuggestions  []SuggestionCount `json:"common_suggestions"`
}

// EvaluationReport is the full batch evaluation result.
type EvaluationReport struct {
	Evaluations []PostEvaluation  `json:"evaluations"`
	Summary     EvaluationSummary `json:"summary"`
}

// EvaluatePosts analyzes a batch of raw posts. Items without usable text are
// skipped. The summary reports averages, the best and worst post, and the
// five most common suggestions with counts.
func (s *Service) EvaluatePosts(ctx context.Context, posts []models.ContentItem, defaultPlatform string) EvaluationReport {
	if defaultPlatform == "" {
		defaultPlatform = "instagram"
	}

	var evaluations []PostEvaluation
	suggestionCounts := make(map[string]int)
	suggestionOrder := make([]string, 0)

	for _, post := range posts {
		if post == nil {
			continue
		}
		text := firstNonEmpty(post.String("content"), post.String("text"), post.String("caption"))
		if text == "" {
			continue
		}

		platform := post.String("platform")
		if platform == "" {
			platform = defaultPlatform
		}
		location := post.String("location")
		if location == "" {
			location = s.region
		}
		contentType := post.String("content_type")
		if contentType == "" {
			contentType = "general"
		}

		meta := s.Analyze(ctx, text, location, contentType)
		opt := s.OptimizeExistingContent(ctx, text, platform)

		manual, _ := post["manual_source"].(bool)
		eval := PostEvaluation{
			PostID:                firstNonEmpty(post.String("id"), post.String("post_id")),
			Platform:              platform,
			SEOScore:              meta.SEOScore,
			ReadabilityScore:      meta.ReadabilityScore,
			SentimentPolarity:     meta.SentimentPolarity,
			GrammarErrors:         meta.GrammarErrors,
			KeywordDensity:        meta.KeywordDensity,
			OverallKeywordDensity: meta.OverallKeywordDensity,
			Suggestions:           opt.Suggestions,
			OptimizedHashtags:     opt.OptimizedHashtags,
			EstimatedImprovement:  opt.EstimatedImprovement,
			CharacterCount:        len(text),
			ManualSource:          manual,
		}
		evaluations = append(evaluations, eval)

		for _, suggestion := range eval.Suggestions {
			if suggestionCounts[suggestion] == 0 {
				suggestionOrder = append(suggestionOrder, suggestion)
			}
			suggestionCounts[suggestion]++
		}
	}

	if len(evaluations) == 0 {
		return EvaluationReport{
			Evaluations: []PostEvaluation{},
			Summary: EvaluationSummary{
				CommonSuggestions: []SuggestionCount{},
			},
		}
	}

	var scoreSum, readabilitySum float64
	top, lowest := 0, 0
	for i, eval := range evaluations {
		scoreSum += eval.SEOScore
		readabilitySum += eval.ReadabilityScore
		if eval.SEOScore > evaluations[top].SEOScore {
			top = i
		}
		if eval.SEOScore < evaluations[lowest].SEOScore {
			lowest = i
		}
	}

	common := make([]SuggestionCount, 0, len(suggestionOrder))
	for _, suggestion := range suggestionOrder {
		common = append(common, SuggestionCount{Suggestion: suggestion, Count: suggestionCounts[suggestion]})
	}
	// Highest count first; first-seen order breaks ties.
	sort.SliceStable(common, func(i, j int) bool { return common[i].Count > common[j].Count })
	if len(common) > 5 {
		common = common[:5]
	}

	return EvaluationReport{
		Evaluations: evaluations,
		Summary: EvaluationSummary{
			EvaluatedPosts:     len(evaluations),
			AverageSEOScore:    round2(scoreSum / float64(len(evaluations))),
			AverageReadability: round2(readabilitySum / float64(len(evaluations))),
			TopPost:            postRef(evaluations[top]),
			LowestPost:         postRef(evaluations[lowest]),
			CommonSuggestions:  common,
		},
	}
}

func postRef(eval PostEvaluation) *PostRef {
	return &PostRef{PostID: eval.PostID, SEOScore: eval.SEOScore, Platform: eval.Platform}
}

// containsAnyKeyword reports whether any keyword appears as a lower-cased
// substring of contentLower.
func containsAnyKeyword(contentLower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(contentLower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// containsAny reports whether any already-lower-cased marker appears.
func containsAny(contentLower string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(contentLower, marker) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
