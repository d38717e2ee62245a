// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"port too low", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, true},
		{"production without jwt secret", func(c *Config) { c.Server.Environment = "production" }, true},
		{"production with jwt secret", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.JWTSecret = "secret"
		}, false},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, true},
		{"rate limit disabled ignores zero", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, false},
		{"empty database path", func(c *Config) { c.Database.Path = "" }, true},
		{"min data points below one", func(c *Config) { c.Learning.MinDataPoints = 0 }, true},
		{"history cap below min data points", func(c *Config) { c.Learning.HistoryCap = 5 }, true},
		{"grammar enabled without url", func(c *Config) { c.SEO.GrammarCheckEnabled = true }, true},
		{"grammar enabled with url", func(c *Config) {
			c.SEO.GrammarCheckEnabled = true
			c.SEO.GrammarCheckURL = "http://localhost:8081"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadWithKoanfDefaults(t *testing.T) {
	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Learning.MinDataPoints != 10 {
		t.Errorf("default min_data_points = %d, want 10", cfg.Learning.MinDataPoints)
	}
	if cfg.Learning.RetentionDays != 180 {
		t.Errorf("default retention_days = %d, want 180", cfg.Learning.RetentionDays)
	}
	if cfg.SEO.DefaultRegion != "Windsor-Essex, Ontario" {
		t.Errorf("default region = %q", cfg.SEO.DefaultRegion)
	}
}

func TestLoadWithKoanfEnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "8123")
	t.Setenv("LEARNING_RETENTION_DAYS", "90")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8123 {
		t.Errorf("port = %d, want 8123", cfg.Server.Port)
	}
	if cfg.Learning.RetentionDays != 90 {
		t.Errorf("retention_days = %d, want 90", cfg.Learning.RetentionDays)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != "https://a.example" {
		t.Errorf("cors_origins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 9000\nlearning:\n  min_data_points: 12\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Learning.MinDataPoints != 12 {
		t.Errorf("min_data_points = %d, want 12", cfg.Learning.MinDataPoints)
	}
	// Untouched settings keep their defaults.
	if cfg.Learning.RefreshInterval != time.Hour {
		t.Errorf("refresh_interval = %s, want 1h", cfg.Learning.RefreshInterval)
	}
}

func TestEnvTransformFuncSkipsUnknown(t *testing.T) {
	if got := envTransformFunc("PATH"); got != "" {
		t.Errorf("unknown env var should map to empty path, got %q", got)
	}
	if got := envTransformFunc("DUCKDB_PATH"); got != "database.path" {
		t.Errorf("DUCKDB_PATH mapped to %q", got)
	}
}
