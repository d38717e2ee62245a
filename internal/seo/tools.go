// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package seo

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoKeywords is returned when a keyword analysis request contains no
// usable keywords.
var ErrNoKeywords = errors.New("no valid keywords supplied")

// ErrMissingInput is returned when a density request lacks text or keyword.
var ErrMissingInput = errors.New("text and keyword are required")

var whitespaceRun = regexp.MustCompile(`\s+`)

// KeywordAnalysis is the result of analyzing a caller-supplied keyword list.
type KeywordAnalysis struct {
	Input       []string       `json:"input"`
	Suggestions []string       `json:"suggestions"`
	Scores      map[string]int `json:"scores"`
}

// AnalyzeKeywords normalizes and counts the supplied keywords and suggests
// related terms from the known keyword inventory. Non-string or blank
// entries are ignored; an all-blank list is an error.
func (s *Service) AnalyzeKeywords(keywords []string) (*KeywordAnalysis, error) {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(whitespaceRun.ReplaceAllString(kw, " ")))
		if kw == "" {
			continue
		}
		normalized = append(normalized, kw)
	}
	if len(normalized) == 0 {
		return nil, ErrNoKeywords
	}

	scores := make(map[string]int, len(normalized))
	unique := make([]string, 0, len(normalized))
	for _, kw := range normalized {
		if scores[kw] == 0 {
			unique = append(unique, kw)
		}
		scores[kw]++
	}

	known := s.keywords.allKnownKeywords()
	suggestions := make([]string, 0)
	seen := make(map[string]bool)
	for _, kw := range unique {
		for _, term := range known {
			termLower := strings.ToLower(term)
			if !strings.Contains(termLower, kw) {
				continue
			}
			if scores[termLower] > 0 || seen[term] {
				continue
			}
			seen[term] = true
			suggestions = append(suggestions, term)
		}
	}

	return &KeywordAnalysis{
		Input:       unique,
		Suggestions: suggestions,
		Scores:      scores,
	}, nil
}

// DensityReport is the single-keyword density analysis of a text.
type DensityReport struct {
	Keyword        string  `json:"keyword"`
	KeywordCount   int     `json:"keyword_count"`
	TotalWords     int     `json:"total_words"`
	KeywordDensity float64 `json:"keyword_density"`
	Suggestion     string  `json:"suggestion"`
}

// KeywordDensity computes the whole-word density of keyword in text as a
// percentage of the word count, with a human-readable suggestion. Density
// under 1% suggests adding uses; over 3% suggests a synonym.
func (s *Service) KeywordDensity(text, keyword string) (*DensityReport, error) {
	keyword = strings.TrimSpace(keyword)
	if text == "" || keyword == "" {
		return nil, ErrMissingInput
	}

	textLower := strings.ToLower(text)
	keywordLower := strings.ToLower(keyword)

	totalWords := len(densityWordPattern.FindAllString(textLower, -1))
	count := wholeWordCount(textLower, keywordLower)

	density := 0.0
	if totalWords > 0 {
		density = round2(float64(count) / float64(totalWords) * 100)
	}

	var suggestion string
	switch {
	case density < 1:
		suggestion = fmt.Sprintf("Try including the keyword '%s' one or two more times naturally in the text.", keyword)
	case density > 3:
		suggestion = fmt.Sprintf("Your keyword density is a bit high. Consider replacing one instance of '%s' with a synonym.", keyword)
	default:
		suggestion = "Good keyword usage!"
	}

	return &DensityReport{
		Keyword:        keyword,
		KeywordCount:   count,
		TotalWords:     totalWords,
		KeywordDensity: density,
		Suggestion:     suggestion,
	}, nil
}

var densityWordPattern = regexp.MustCompile(`\w+`)
