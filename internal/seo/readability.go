// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package seo

import (
	"regexp"
	"strings"
)

var (
	wordPattern     = regexp.MustCompile(`[a-zA-Z']+`)
	sentenceEnders  = regexp.MustCompile(`[.!?]+`)
	vowelGroups     = regexp.MustCompile(`[aeiouy]+`)
	trailingSilentE = regexp.MustCompile(`e$`)
)

// ReadabilityScore computes the Flesch reading ease of text. Higher is
// easier; typical marketing copy lands between 60 and 80. Empty or wordless
// text scores 0. Deterministic, pure local computation.
func ReadabilityScore(text string) float64 {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return 0
	}

	sentences := countSentences(text)
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))

	return 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
}

// countSentences counts terminator runs; text without terminators is one
// sentence.
func countSentences(text string) int {
	n := len(sentenceEnders.FindAllString(text, -1))
	if n == 0 {
		return 1
	}
	return n
}

// countSyllables estimates syllables as vowel groups with a silent-e
// adjustment. Every word has at least one syllable.
func countSyllables(word string) int {
	word = trailingSilentE.ReplaceAllString(word, "")
	n := len(vowelGroups.FindAllString(word, -1))
	if n == 0 {
		return 1
	}
	return n
}
