// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package seo

import (
	"sort"
	"strings"
)

// contentTypeHashtags are the fixed tags appended per content type.
var contentTypeHashtags = map[string][]string{
	"property_showcase": {"#JustListed", "#NewListing", "#PropertyShowcase"},
	"market_update":     {"#MarketUpdate", "#RealEstateNews", "#MarketTrends"},
	"educational":       {"#RealEstateTips", "#HomeBuyingTips", "#RealEstateEducation"},
}

// communityHashtags is the fallback set for community and unknown types.
var communityHashtags = []string{"#CommunityLove", "#LocalBusiness", "#Neighborhood"}

// regionHashtags always accompany generated sets.
var regionHashtags = []string{"#WindsorEssex", "#WindsorOntario", "#EssexCounty"}

// GenerateHashtags builds a hashtag set for one post: trend-weighted samples
// from each volume tier, plus location and content-type tags, deduplicated,
// sorted by trend score descending and truncated to the platform's target
// count.
func (s *Service) GenerateHashtags(contentType, platform, location string) []string {
	strategy := s.keywords.strategyFor(platform)
	targetCount := strategy.MinCount
	if spread := strategy.MaxCount - strategy.MinCount; spread > 0 {
		targetCount += s.randIntn(spread + 1)
	}

	var selected []string
	selected = append(selected, s.weightedSample(s.keywords.Hashtags.HighVolume, targetCount/3)...)
	selected = append(selected, s.weightedSample(s.keywords.Hashtags.MediumVolume, targetCount/3)...)
	selected = append(selected, s.weightedSample(s.keywords.Hashtags.Niche, targetCount-len(selected))...)

	selected = append(selected, locationHashtags(location)...)
	selected = append(selected, regionHashtags...)

	typed, ok := contentTypeHashtags[contentType]
	if !ok {
		typed = communityHashtags
	}
	selected = append(selected, typed...)

	deduped := dedupe(selected)

	// Stable sort keeps insertion order among equally-trending tags.
	sort.SliceStable(deduped, func(i, j int) bool {
		return s.keywords.trendScore(deduped[i]) > s.keywords.trendScore(deduped[j])
	})

	if len(deduped) > targetCount {
		deduped = deduped[:targetCount]
	}
	return deduped
}

// weightedSample draws up to count tags without replacement, weighting each
// draw by trend score.
func (s *Service) weightedSample(tags []string, count int) []string {
	available := make([]string, len(tags))
	copy(available, tags)

	if count > len(available) {
		count = len(available)
	}

	chosen := make([]string, 0, count)
	for len(chosen) < count {
		total := 0.0
		for _, tag := range available {
			total += s.keywords.trendScore(tag)
		}

		target := s.randFloat() * total
		idx := len(available) - 1
		acc := 0.0
		for i, tag := range available {
			acc += s.keywords.trendScore(tag)
			if target < acc {
				idx = i
				break
			}
		}

		chosen = append(chosen, available[idx])
		available = append(available[:idx], available[idx+1:]...)
	}
	return chosen
}

// locationHashtags derives tags from the location's first comma segment.
func locationHashtags(location string) []string {
	clean := strings.SplitN(location, ",", 2)[0]
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, "-", "")
	if clean == "" {
		return nil
	}
	return []string{"#" + clean, "#" + clean + "RealEstate"}
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
