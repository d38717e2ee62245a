// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package seo

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// KeywordConfig is the keyword and hashtag inventory the scorer, optimizer
// and generators draw from. Defaults target the Windsor-Essex market; a YAML
// file can override any section wholesale.
type KeywordConfig struct {
	Location   LocationKeywords    `koanf:"location_keywords"`
	RealEstate RealEstateKeywords  `koanf:"real_estate_keywords"`
	Hashtags   HashtagInventory    `koanf:"hashtags"`
	Strategies map[string]Strategy `koanf:"hashtag_strategies"`

	// TrendScores weight hashtag sampling and ordering. Tags without an
	// entry default to weight 1.0.
	TrendScores map[string]float64 `koanf:"trend_scores"`
}

// LocationKeywords are market-area terms.
type LocationKeywords struct {
	Primary       []string `koanf:"primary"`
	Neighborhoods []string `koanf:"neighborhoods"`
}

// RealEstateKeywords are domain terms grouped by specificity.
type RealEstateKeywords struct {
	Primary  []string `koanf:"primary"`
	LongTail []string `koanf:"long_tail"`
	Seasonal []string `koanf:"seasonal"`
}

// HashtagInventory groups hashtags by expected reach.
type HashtagInventory struct {
	HighVolume   []string `koanf:"high_volume"`
	MediumVolume []string `koanf:"medium_volume"`
	Niche        []string `koanf:"niche"`
}

// Strategy is the per-platform hashtag count target range.
type Strategy struct {
	MinCount int `koanf:"min_count"`
	MaxCount int `koanf:"max_count"`
}

// DefaultKeywordConfig returns the built-in Windsor-Essex inventory.
func DefaultKeywordConfig() *KeywordConfig {
	return &KeywordConfig{
		Location: LocationKeywords{
			Primary: []string{
				"Windsor", "Essex County", "Windsor-Essex", "Tecumseh",
				"LaSalle", "Amherstburg", "Kingsville", "Leamington", "Lakeshore",
			},
			Neighborhoods: []string{
				"Walkerville", "Riverside", "South Windsor", "East Windsor",
				"Forest Glade", "Fontainebleau", "Sandwich Town", "Devonshire Heights",
			},
		},
		RealEstate: RealEstateKeywords{
			Primary: []string{
				"real estate", "home", "house", "property", "listing",
				"for sale", "realtor", "buyer", "seller", "mortgage",
			},
			LongTail: []string{
				"homes for sale in Windsor", "Windsor real estate market",
				"Essex County homes", "first time home buyer Windsor",
				"Windsor investment property", "sell my house Windsor",
			},
			Seasonal: []string{
				"spring market", "fall market", "year end market review",
			},
		},
		Hashtags: HashtagInventory{
			HighVolume: []string{
				"#RealEstate", "#Home", "#Property", "#HouseHunting",
				"#DreamHome", "#Realtor", "#HomeSweetHome",
			},
			MediumVolume: []string{
				"#RealEstateAgent", "#NewHome", "#HomeBuyer", "#HomeSeller",
				"#PropertyInvestment", "#HouseGoals", "#RealEstateLife",
			},
			Niche: []string{
				"#WindsorRealEstate", "#YQG", "#EssexCountyHomes",
				"#WindsorHomes", "#TecumsehRealEstate", "#LaSalleOntario",
			},
		},
		Strategies: map[string]Strategy{
			"instagram": {MinCount: 8, MaxCount: 12},
			"facebook":  {MinCount: 3, MaxCount: 5},
		},
		TrendScores: map[string]float64{
			"#RealEstate":        9.5,
			"#DreamHome":         8.0,
			"#HouseHunting":      7.5,
			"#WindsorRealEstate": 6.5,
			"#YQG":               6.0,
			"#JustListed":        5.5,
			"#MarketUpdate":      4.5,
		},
	}
}

// LoadKeywordConfig merges a YAML overrides file over the defaults. An empty
// path returns the defaults unchanged; a missing file is an error so a typoed
// path fails loudly instead of silently reverting the inventory.
func LoadKeywordConfig(path string) (*KeywordConfig, error) {
	defaults := DefaultKeywordConfig()
	if path == "" {
		return defaults, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("keyword config %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading keyword defaults: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing keyword config %s: %w", path, err)
	}

	var cfg KeywordConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling keyword config: %w", err)
	}
	return &cfg, nil
}

// strategyFor returns the platform's hashtag count range, falling back to
// the instagram strategy and finally to a generic 8-12.
func (c *KeywordConfig) strategyFor(platform string) Strategy {
	if s, ok := c.Strategies[platform]; ok && s.MaxCount > 0 {
		return s
	}
	if s, ok := c.Strategies["instagram"]; ok && s.MaxCount > 0 {
		return s
	}
	return Strategy{MinCount: 8, MaxCount: 12}
}

// trendScore returns the weighting for a hashtag, defaulting to 1.0.
func (c *KeywordConfig) trendScore(tag string) float64 {
	if score, ok := c.TrendScores[tag]; ok {
		return score
	}
	return 1.0
}

// allKnownKeywords returns the union of domain and location terms, used for
// related-keyword suggestions.
func (c *KeywordConfig) allKnownKeywords() []string {
	out := make([]string, 0,
		len(c.RealEstate.Primary)+len(c.RealEstate.LongTail)+
			len(c.Location.Primary)+len(c.Location.Neighborhoods))
	out = append(out, c.RealEstate.Primary...)
	out = append(out, c.RealEstate.LongTail...)
	out = append(out, c.Location.Primary...)
	out = append(out, c.Location.Neighborhoods...)
	return out
}

// domainKeywordGroups returns the real-estate keyword lists in scoring order.
func (c *KeywordConfig) domainKeywordGroups() [][]string {
	return [][]string{c.RealEstate.Primary, c.RealEstate.LongTail, c.RealEstate.Seasonal}
}
