// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package seo

import "strings"

// sentimentLexicon maps words to a polarity in [-1, 1]. The vocabulary is
// tuned to real-estate marketing copy rather than general prose.
var sentimentLexicon = map[string]float64{
	// positive
	"beautiful":  0.85,
	"stunning":   1.0,
	"gorgeous":   0.9,
	"amazing":    0.8,
	"great":      0.8,
	"excellent":  1.0,
	"wonderful":  1.0,
	"perfect":    1.0,
	"love":       0.6,
	"charming":   0.7,
	"spacious":   0.5,
	"modern":     0.4,
	"desirable":  0.6,
	"incredible": 0.9,
	"dream":      0.6,
	"best":       1.0,
	"ideal":      0.8,
	"luxury":     0.6,
	"cozy":       0.5,
	"bright":     0.5,
	"special":    0.5,
	"proud":      0.5,
	"attractive": 0.6,
	"positive":   0.5,
	"strong":     0.4,
	"growing":    0.3,
	"hot":        0.3,
	"new":        0.2,
	"good":       0.7,
	"hidden":     0.1,
	"gem":        0.8,

	// negative
	"bad":          -0.7,
	"poor":         -0.6,
	"ugly":         -0.8,
	"terrible":     -1.0,
	"awful":        -1.0,
	"outdated":     -0.4,
	"cramped":      -0.5,
	"overpriced":   -0.6,
	"problem":      -0.4,
	"risky":        -0.5,
	"declining":    -0.5,
	"weak":         -0.4,
	"difficult":    -0.4,
	"worst":        -1.0,
	"disappointed": -0.7,
}

// negators flip the polarity of the word that follows them.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "isn't": true, "wasn't": true,
	"don't": true, "won't": true, "can't": true,
}

// SentimentPolarity estimates the polarity of text in [-1, 1] as the mean
// valence of lexicon words, with simple single-token negation. Text with no
// lexicon words is neutral (0). Deterministic, pure local computation.
func SentimentPolarity(text string) float64 {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	var sum float64
	matched := 0
	negate := false

	for _, w := range words {
		if negators[w] {
			negate = true
			continue
		}
		if valence, ok := sentimentLexicon[w]; ok {
			if negate {
				valence = -valence * 0.5
			}
			sum += valence
			matched++
		}
		negate = false
	}

	if matched == 0 {
		return 0
	}

	polarity := sum / float64(matched)
	if polarity > 1 {
		polarity = 1
	}
	if polarity < -1 {
		polarity = -1
	}
	return polarity
}
