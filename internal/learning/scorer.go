// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package learning

import "github.com/smaskoun/Automated-platform-Real-Estate/internal/models"

// Metric weights for the engagement score. Comments and shares outweigh
// likes because the product favors commentable and shareable content over
// passive engagement; reach and impressions are supply-side distribution
// signals and are down-weighted accordingly.
const (
	weightLikes       = 1.0
	weightComments    = 2.0
	weightShares      = 3.0
	weightSaves       = 2.5
	weightReach       = 0.1
	weightImpressions = 0.05
)

// EngagementScore computes the weighted engagement score for a record.
//
// When impressions are known the weighted sum is normalized to a
// per-100-impressions rate; records without impressions data return the raw
// weighted sum. The two forms are NOT on a common scale; callers must not
// compare normalized and unnormalized scores across records with and without
// impressions data. The asymmetry is deliberate and preserved from the
// product's original scoring model.
//
// Deterministic, no side effects, no I/O.
func EngagementScore(r models.PerformanceRecord) float64 {
	m := r.Metrics

	score := float64(m.Likes)*weightLikes +
		float64(m.Comments)*weightComments +
		float64(m.Shares)*weightShares +
		float64(m.Saves)*weightSaves +
		float64(m.Reach)*weightReach +
		float64(m.Impressions)*weightImpressions

	if m.Impressions > 0 {
		return score / float64(m.Impressions) * 100
	}
	return score
}
