// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package seo

import (
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/config"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/logging"
)

// fixedGrammar reports a fixed issue count.
type fixedGrammar struct{ issues int }

func (f fixedGrammar) CountIssues(context.Context, string) int { return f.issues }

func testService(t *testing.T, grammar GrammarChecker) *Service {
	t.Helper()
	s := NewService(config.SEOConfig{DefaultRegion: DefaultRegion}, DefaultKeywordConfig(), grammar, logging.NewTestLogger(io.Discard))
	s.SetRandForTesting(rand.New(rand.NewSource(1))) //nolint:gosec
	return s
}

func TestScoreLocationBonus(t *testing.T) {
	s := testService(t, nil)
	ctx := context.Background()

	// Identical text shape, with and without the location string.
	with, _, _ := s.Score(ctx, "Visit this lovely spot in Windsor today and tomorrow morning.", "Windsor", "general")
	without, _, _ := s.Score(ctx, "Visit this lovely spot in Chatham today and tomorrow morning.", "Windsor", "general")

	if with-without < 19.9 || with-without > 20.1 {
		t.Errorf("location bonus = %v, want 20 (with %v, without %v)", with-without, with, without)
	}
}

func TestScoreLengthBonusBoundaries(t *testing.T) {
	s := testService(t, nil)
	ctx := context.Background()

	// Pad with a neutral non-keyword filler so only length varies.
	base := func(n int) string { return strings.Repeat("z", n) }

	tests := []struct {
		length int
		bonus  bool
	}{
		{length: 49, bonus: false},
		{length: 50, bonus: true},
		{length: 300, bonus: true},
		{length: 301, bonus: false},
	}

	score := func(text string) float64 {
		v, _, _ := s.Score(ctx, text, "Windsor", "general")
		return v
	}
	ref := score(base(49))

	for _, tt := range tests {
		got := score(base(tt.length))
		hasBonus := got > ref+5
		if hasBonus != tt.bonus {
			t.Errorf("length %d: score %v (ref %v), bonus %v, want %v", tt.length, got, ref, hasBonus, tt.bonus)
		}
	}
}

func TestScoreKeywordDensityBudget(t *testing.T) {
	s := testService(t, nil)
	ctx := context.Background()

	// 50 words, one occurrence of "home" = exactly 2% density.
	optimal := "home " + strings.Repeat("zz ", 48) + "zz"
	// Same word count, no domain keywords at all.
	zero := strings.Repeat("zz ", 49) + "zz"

	optScore, _, _ := s.Score(ctx, optimal, "Nowhere", "general")
	zeroScore, _, _ := s.Score(ctx, zero, "Nowhere", "general")

	// Optimum earns the full 30; zero density earns max(0, 30-2*15) = 0.
	if diff := optScore - zeroScore; diff < 29.9 || diff > 30.1 {
		t.Errorf("density budget difference = %v, want 30", diff)
	}
}

func TestScoreGrammarPenaltyCapped(t *testing.T) {
	ctx := context.Background()
	text := "Beautiful family home for sale in Windsor, close to parks."

	clean, _, _ := testService(t, fixedGrammar{0}).Score(ctx, text, "Windsor", "general")
	three, _, errs := testService(t, fixedGrammar{3}).Score(ctx, text, "Windsor", "general")
	many, _, _ := testService(t, fixedGrammar{50}).Score(ctx, text, "Windsor", "general")

	if errs != 3 {
		t.Errorf("grammar errors = %d, want 3", errs)
	}
	if diff := clean - three; diff < 5.9 || diff > 6.1 {
		t.Errorf("3-error penalty = %v, want 6", diff)
	}
	if diff := clean - many; diff < 19.9 || diff > 20.1 {
		t.Errorf("50-error penalty = %v, want capped at 20", diff)
	}
}

func TestScoreClampedToRange(t *testing.T) {
	s := testService(t, fixedGrammar{100})
	ctx := context.Background()

	tests := []string{
		"",
		"z",
		"Stunning gorgeous amazing perfect excellent wonderful beautiful dream home for sale in Windsor, Essex County. " +
			"Best real estate listing with incredible modern property features, ideal house for every buyer and seller.",
	}
	for _, text := range tests {
		score, _, _ := s.Score(ctx, text, "Windsor", "general")
		if score < 0 || score > 100 {
			t.Errorf("Score(%q) = %v, out of [0, 100]", text, score)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := testService(t, nil)
	ctx := context.Background()
	text := "Beautiful home in Windsor"

	first, p1, g1 := s.Score(ctx, text, "Windsor", "general")
	second, p2, g2 := s.Score(ctx, text, "Windsor", "general")
	if first != second || p1 != p2 || g1 != g2 {
		t.Errorf("repeated Score() differs: (%v %v %d) vs (%v %v %d)", first, p1, g1, second, p2, g2)
	}
}

func TestAnalyzeMetadata(t *testing.T) {
	s := testService(t, nil)
	ctx := context.Background()

	text := "Beautiful home for sale in Windsor. This property is a great home for any buyer."
	meta := s.Analyze(ctx, text, "Windsor", "general")

	if meta.LocationMentions != 1 {
		t.Errorf("LocationMentions = %d, want 1", meta.LocationMentions)
	}
	if meta.KeywordDensity["home"] == 0 {
		t.Errorf("KeywordDensity missing 'home': %v", meta.KeywordDensity)
	}
	if meta.ContentLength != len(text) {
		t.Errorf("ContentLength = %d, want %d", meta.ContentLength, len(text))
	}
	if len(meta.PrimaryKeywords) == 0 || len(meta.PrimaryKeywords) > 5 {
		t.Errorf("PrimaryKeywords = %v, want 1-5 entries", meta.PrimaryKeywords)
	}
	if !strings.HasPrefix(meta.MetaDescription, "Real estate content for Windsor. ") {
		t.Errorf("MetaDescription = %q", meta.MetaDescription)
	}
	if meta.OverallKeywordDensity <= 0 {
		t.Errorf("OverallKeywordDensity = %v, want > 0", meta.OverallKeywordDensity)
	}
}

func TestWholeWordCount(t *testing.T) {
	tests := []struct {
		haystack string
		needle   string
		want     int
	}{
		{haystack: "home home homes", needle: "home", want: 2},
		{haystack: "the homeowner", needle: "home", want: 0},
		{haystack: "for sale! for sale.", needle: "for sale", want: 2},
		{haystack: "anything", needle: "", want: 0},
	}
	for _, tt := range tests {
		if got := wholeWordCount(tt.haystack, tt.needle); got != tt.want {
			t.Errorf("wholeWordCount(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
		}
	}
}

func TestReadabilityScore(t *testing.T) {
	if got := ReadabilityScore(""); got != 0 {
		t.Errorf("ReadabilityScore(empty) = %v, want 0", got)
	}

	simple := ReadabilityScore("The cat sat. The dog ran. We like it here.")
	dense := ReadabilityScore("Comprehensive municipal infrastructure revitalization necessitates extraordinary intergovernmental collaboration.")
	if simple <= dense {
		t.Errorf("simple text (%v) must read easier than dense text (%v)", simple, dense)
	}
	if simple < 60 {
		t.Errorf("simple text scored %v, want comfortable reading ease", simple)
	}
}

func TestSentimentPolarity(t *testing.T) {
	tests := []struct {
		name string
		text string
		sign int
	}{
		{name: "positive", text: "Beautiful stunning home with a gorgeous backyard", sign: 1},
		{name: "negative", text: "Outdated cramped house with terrible finishes", sign: -1},
		{name: "neutral", text: "The house has three rooms and a garage", sign: 0},
		{name: "negated positive", text: "This is not beautiful at all", sign: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SentimentPolarity(tt.text)
			if got < -1 || got > 1 {
				t.Fatalf("polarity %v out of [-1, 1]", got)
			}
			switch {
			case tt.sign > 0 && got <= 0:
				t.Errorf("polarity = %v, want positive", got)
			case tt.sign < 0 && got >= 0:
				t.Errorf("polarity = %v, want negative", got)
			case tt.sign == 0 && got != 0:
				t.Errorf("polarity = %v, want 0", got)
			}
		})
	}
}
