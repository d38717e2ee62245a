// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package seo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadKeywordConfigDefaults(t *testing.T) {
	cfg, err := LoadKeywordConfig("")
	if err != nil {
		t.Fatalf("LoadKeywordConfig(\"\") error = %v", err)
	}
	if len(cfg.Location.Primary) == 0 || len(cfg.RealEstate.Primary) == 0 {
		t.Error("default inventory is empty")
	}
	if s := cfg.strategyFor("instagram"); s.MinCount != 8 || s.MaxCount != 12 {
		t.Errorf("instagram strategy = %+v, want 8-12", s)
	}
}

func TestLoadKeywordConfigOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := []byte(`
hashtag_strategies:
  instagram:
    min_count: 4
    max_count: 6
trend_scores:
  "#CustomTag": 12.0
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := LoadKeywordConfig(path)
	if err != nil {
		t.Fatalf("LoadKeywordConfig() error = %v", err)
	}

	if s := cfg.strategyFor("instagram"); s.MinCount != 4 || s.MaxCount != 6 {
		t.Errorf("overridden instagram strategy = %+v, want 4-6", s)
	}
	if cfg.trendScore("#CustomTag") != 12.0 {
		t.Errorf("trendScore(#CustomTag) = %v, want 12.0", cfg.trendScore("#CustomTag"))
	}
	// Untouched sections keep their defaults.
	if len(cfg.Hashtags.HighVolume) == 0 {
		t.Error("override wiped the default hashtag inventory")
	}
	if s := cfg.strategyFor("facebook"); s.MinCount != 3 || s.MaxCount != 5 {
		t.Errorf("facebook strategy = %+v, want untouched defaults 3-5", s)
	}
}

func TestLoadKeywordConfigMissingFile(t *testing.T) {
	if _, err := LoadKeywordConfig("/nonexistent/keywords.yaml"); err == nil {
		t.Fatal("LoadKeywordConfig() error = nil, want error for a missing file")
	}
}

func TestTrendScoreDefault(t *testing.T) {
	cfg := DefaultKeywordConfig()
	if got := cfg.trendScore("#NeverSeen"); got != 1.0 {
		t.Errorf("trendScore(unknown) = %v, want 1.0", got)
	}
}

func TestStrategyForFallback(t *testing.T) {
	cfg := &KeywordConfig{Strategies: map[string]Strategy{}}
	if s := cfg.strategyFor("tiktok"); s.MinCount != 8 || s.MaxCount != 12 {
		t.Errorf("empty-config fallback = %+v, want 8-12", s)
	}
}
