// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

// Package config loads and validates application configuration using
// Koanf v2 with layered sources: struct defaults, an optional YAML file,
// then environment variables.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Database DatabaseConfig `koanf:"database"`
	Learning LearningConfig `koanf:"learning"`
	SEO      SEOConfig      `koanf:"seo"`
	OpenAI   OpenAIConfig   `koanf:"openai"`
	Apify    ApifyConfig    `koanf:"apify"`
	Market   MarketConfig   `koanf:"market"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// SecurityConfig holds authentication and rate-limit settings.
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	AdminUsername     string        `koanf:"admin_username"`
	AdminPassword     string        `koanf:"admin_password"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// DatabaseConfig holds DuckDB settings for the content store.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// LearningConfig holds the analytics engine parameters.
//
// MinDataPoints is the statistical floor below which pattern analysis
// returns an insufficient-data result instead of partial insights.
type LearningConfig struct {
	MinDataPoints   int           `koanf:"min_data_points"`
	RetentionDays   int           `koanf:"retention_days"`
	HistoryCap      int           `koanf:"history_cap"`
	IngestLimit     int           `koanf:"ingest_limit"`
	DefaultPlatform string        `koanf:"default_platform"`
	RefreshInterval time.Duration `koanf:"refresh_interval"`
	RefreshEnabled  bool          `koanf:"refresh_enabled"`
}

// SEOConfig holds SEO scoring settings.
type SEOConfig struct {
	DefaultRegion       string        `koanf:"default_region"`
	KeywordsPath        string        `koanf:"keywords_path"`
	GrammarCheckEnabled bool          `koanf:"grammar_check_enabled"`
	GrammarCheckURL     string        `koanf:"grammar_check_url"`
	GrammarTimeout      time.Duration `koanf:"grammar_timeout"`
}

// OpenAIConfig holds OpenAI client settings for content and image generation.
type OpenAIConfig struct {
	APIKey     string `koanf:"api_key"`
	Model      string `koanf:"model"`
	ImageModel string `koanf:"image_model"`
	ImageSize  string `koanf:"image_size"`
}

// ApifyConfig holds the Apify actor settings used for Realtor.ca scraping.
type ApifyConfig struct {
	Token             string        `koanf:"token"`
	ActorID           string        `koanf:"actor_id"`
	BaseURL           string        `koanf:"base_url"`
	RequestsPerMinute int           `koanf:"requests_per_minute"`
	RunTimeout        time.Duration `koanf:"run_timeout"`
}

// MarketConfig holds the market statistics (WECAR/CMHC) client settings.
type MarketConfig struct {
	BaseURL           string        `koanf:"base_url"`
	RequestsPerMinute int           `koanf:"requests_per_minute"`
	CacheTTL          time.Duration `koanf:"cache_ttl"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// Validate checks the configuration for invalid or unsafe values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}

	if c.IsProduction() && c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret is required in production")
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs <= 0 {
			return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	if c.Learning.MinDataPoints < 1 {
		return fmt.Errorf("learning.min_data_points must be at least 1, got %d", c.Learning.MinDataPoints)
	}
	if c.Learning.RetentionDays < 1 {
		return fmt.Errorf("learning.retention_days must be at least 1, got %d", c.Learning.RetentionDays)
	}
	if c.Learning.HistoryCap < c.Learning.MinDataPoints {
		return fmt.Errorf("learning.history_cap (%d) must not be below learning.min_data_points (%d)",
			c.Learning.HistoryCap, c.Learning.MinDataPoints)
	}

	if c.SEO.GrammarCheckEnabled && c.SEO.GrammarCheckURL == "" {
		return fmt.Errorf("seo.grammar_check_url is required when grammar checking is enabled")
	}

	return nil
}
