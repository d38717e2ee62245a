// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package clients

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/config"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/metrics"
)

// MarketStats is the board-level market summary served to content authors.
type MarketStats struct {
	Period              string  `json:"period"`
	AverageSalePrice    float64 `json:"average_sale_price"`
	MedianSalePrice     float64 `json:"median_sale_price"`
	TotalSales          int     `json:"total_sales"`
	NewListings         int     `json:"new_listings"`
	ActiveListings      int     `json:"active_listings"`
	AverageDaysOnMarket float64 `json:"average_days_on_market"`
	YearOverYearChange  float64 `json:"year_over_year_change"`
}

// MarketClient fetches Windsor-Essex market statistics. Responses are
// cached for the configured TTL because the upstream feed updates monthly.
type MarketClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cacheTTL   time.Duration
	logger     zerolog.Logger

	mu        sync.Mutex
	cached    *MarketStats
	fetchedAt time.Time

	now func() time.Time
}

// NewMarketClient builds a client from configuration.
func NewMarketClient(cfg config.MarketConfig, logger zerolog.Logger) (*MarketClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("market base url is required")
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 10
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &MarketClient{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60), 1),
		cacheTTL:   ttl,
		logger:     logger.With().Str("client", "market").Logger(),
		now:        time.Now,
	}, nil
}

// GetMarketStats returns the current market summary, serving from cache
// while it is fresh.
func (c *MarketClient) GetMarketStats(ctx context.Context) (*MarketStats, error) {
	c.mu.Lock()
	if c.cached != nil && c.now().Sub(c.fetchedAt) < c.cacheTTL {
		stats := *c.cached
		c.mu.Unlock()
		return &stats, nil
	}
	c.mu.Unlock()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	start := time.Now()
	stats, err := c.fetch(ctx)
	metrics.RecordClientRequest("market", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cached = stats
	c.fetchedAt = c.now()
	c.mu.Unlock()

	result := *stats
	return &result, nil
}

func (c *MarketClient) fetch(ctx context.Context) (*MarketStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/market/stats", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build market request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("market stats request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market stats returned status %d", resp.StatusCode)
	}

	var stats MarketStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode market stats: %w", err)
	}
	return &stats, nil
}
