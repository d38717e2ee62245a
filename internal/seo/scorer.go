// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

// Package seo scores, optimizes and generates real-estate marketing copy.
// Scoring is an additive budget over location presence, keyword density,
// readability, sentiment, grammar and length, clamped to [0, 100].
package seo

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/config"
)

// DefaultRegion is the market the service targets when a caller supplies no
// location.
const DefaultRegion = "Windsor-Essex, Ontario"

// optimumKeywordDensity is the keyword density (percent of words) earning
// the full density budget.
const optimumKeywordDensity = 2.0

// Service is the SEO analysis and generation facade. Safe for concurrent
// use; the random source is guarded internally.
type Service struct {
	keywords *KeywordConfig
	grammar  GrammarChecker
	region   string
	logger   zerolog.Logger
	now      func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService builds the service from config. A nil grammar checker disables
// grammar scoring entirely.
func NewService(cfg config.SEOConfig, keywords *KeywordConfig, grammar GrammarChecker, logger zerolog.Logger) *Service {
	if keywords == nil {
		keywords = DefaultKeywordConfig()
	}
	if grammar == nil {
		grammar = NoopGrammarChecker{}
	}
	region := cfg.DefaultRegion
	if region == "" {
		region = DefaultRegion
	}
	return &Service{
		keywords: keywords,
		grammar:  grammar,
		region:   region,
		logger:   logger.With().Str("component", "seo").Logger(),
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // non-cryptographic sampling
	}
}

// Metadata is the full SEO analysis of one piece of content.
type Metadata struct {
	KeywordDensity        map[string]float64 `json:"keyword_density"`
	MetaDescription       string             `json:"meta_description"`
	PrimaryKeywords       []string           `json:"primary_keywords"`
	LocationMentions      int                `json:"location_mentions"`
	SEOScore              float64            `json:"seo_score"`
	ContentLength         int                `json:"content_length"`
	ReadabilityScore      float64            `json:"readability_score"`
	SentimentPolarity     float64            `json:"sentiment_polarity"`
	GrammarErrors         int                `json:"grammar_errors"`
	OverallKeywordDensity float64            `json:"overall_keyword_density"`
}

// Score computes the SEO score of content in [0, 100] and returns the
// sentiment polarity and grammar error count alongside it.
//
// Budget: location presence +20; keyword density +max(0, 30-|d-2|*15) with
// d in percent; readability +0.2*clamp(flesch, 0, 100); sentiment
// +10*polarity; grammar -min(2*errors, 20); length +10 when the character
// count is within [50, 300].
func (s *Service) Score(ctx context.Context, content, location, contentType string) (float64, float64, int) {
	if location == "" {
		location = s.region
	}

	score := 0.0
	contentLower := strings.ToLower(content)
	totalWords := len(strings.Fields(contentLower))

	if strings.Contains(contentLower, strings.ToLower(location)) {
		score += 20
	}

	density := s.overallKeywordDensity(contentLower, totalWords)
	score += math.Max(0, 30-math.Abs(density-optimumKeywordDensity)*15)

	readability := ReadabilityScore(content)
	score += math.Max(math.Min(readability, 100), 0) * 0.2

	polarity := SentimentPolarity(content)
	score += polarity * 10

	grammarErrors := s.grammar.CountIssues(ctx, content)
	score -= math.Min(float64(grammarErrors)*2, 20)

	if n := len(content); n >= 50 && n <= 300 {
		score += 10
	}

	return math.Max(math.Min(score, 100), 0), polarity, grammarErrors
}

// Analyze produces the full metadata for content.
func (s *Service) Analyze(ctx context.Context, content, location, contentType string) Metadata {
	if location == "" {
		location = s.region
	}

	contentLower := strings.ToLower(content)
	totalWords := len(strings.Fields(contentLower))

	perKeyword := make(map[string]float64)
	var primary []string
	totalOccurrences := 0
	for _, group := range s.keywords.domainKeywordGroups() {
		for _, keyword := range group {
			count := wholeWordCount(contentLower, strings.ToLower(keyword))
			if count > 0 && totalWords > 0 {
				perKeyword[keyword] = round2(float64(count) / float64(totalWords) * 100)
				if len(primary) < 5 {
					primary = append(primary, keyword)
				}
				totalOccurrences += count
			}
		}
	}

	overall := 0.0
	if totalWords > 0 {
		overall = round2(float64(totalOccurrences) / float64(totalWords) * 100)
	}

	score, polarity, grammarErrors := s.Score(ctx, content, location, contentType)

	return Metadata{
		KeywordDensity:        perKeyword,
		MetaDescription:       metaDescription(content, location),
		PrimaryKeywords:       primary,
		LocationMentions:      wholeWordCount(contentLower, strings.ToLower(location)),
		SEOScore:              score,
		ContentLength:         len(content),
		ReadabilityScore:      ReadabilityScore(content),
		SentimentPolarity:     polarity,
		GrammarErrors:         grammarErrors,
		OverallKeywordDensity: overall,
	}
}

// overallKeywordDensity is the percentage of words that are domain keyword
// occurrences, counting whole-word matches across every keyword group.
func (s *Service) overallKeywordDensity(contentLower string, totalWords int) float64 {
	if totalWords == 0 {
		return 0
	}
	occurrences := 0
	for _, group := range s.keywords.domainKeywordGroups() {
		for _, keyword := range group {
			occurrences += wholeWordCount(contentLower, strings.ToLower(keyword))
		}
	}
	return float64(occurrences) / float64(totalWords) * 100
}

// metaDescription builds a search-result preview line from the content head.
func metaDescription(content, location string) string {
	head := content
	if len(head) > 100 {
		head = head[:100]
	}
	return fmt.Sprintf("Real estate content for %s. %s...", location, head)
}

// wholeWordCount counts whole-word occurrences of needle in haystack. Both
// arguments must already be lower-cased.
func wholeWordCount(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(needle) + `\b`)
	if err != nil {
		return 0
	}
	return len(pattern.FindAllString(haystack, -1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// randIntn returns a random int in [0, n) from the guarded source.
func (s *Service) randIntn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

// randFloat returns a random float in [0, 1) from the guarded source.
func (s *Service) randFloat() float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64()
}

// SetRandForTesting swaps the random source. Tests use a seeded source for
// reproducible generation output.
func (s *Service) SetRandForTesting(r *rand.Rand) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	s.rng = r
}

// SetClockForTesting swaps the wall clock used for posting-time suggestions.
func (s *Service) SetClockForTesting(now func() time.Time) {
	s.now = now
}
