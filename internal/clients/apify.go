// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package clients

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/config"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/metrics"
)

// Listing is one scraped Realtor.ca listing as returned by the actor's
// dataset.
type Listing struct {
	MLSNumber    string   `json:"mls_number"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Price        float64  `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	PropertyType string   `json:"property_type"`
	URL          string   `json:"url"`
	ImageURLs    []string `json:"image_urls"`
	Description  string   `json:"description"`
}

// ScrapeRequest describes one actor run.
type ScrapeRequest struct {
	SearchURL string `json:"search_url" validate:"required,url"`
	MaxItems  int    `json:"max_items" validate:"min=0,max=500"`
}

// ApifyClient triggers the Realtor.ca scraping actor and collects its
// dataset. It uses the synchronous run endpoint, so one call covers the
// run and the result fetch.
type ApifyClient struct {
	token      string
	actorID    string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

const defaultApifyBaseURL = "https://api.apify.com"

// NewApifyClient builds a client from configuration. Token and actor ID
// must be set.
func NewApifyClient(cfg config.ApifyConfig, logger zerolog.Logger) (*ApifyClient, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("apify token is required")
	}
	if cfg.ActorID == "" {
		return nil, fmt.Errorf("apify actor id is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultApifyBaseURL
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 5
	}
	runTimeout := cfg.RunTimeout
	if runTimeout <= 0 {
		runTimeout = 5 * time.Minute
	}

	return &ApifyClient{
		token:      cfg.Token,
		actorID:    cfg.ActorID,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: runTimeout},
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60), 1),
		logger:     logger.With().Str("client", "apify").Logger(),
	}, nil
}

// ScrapeListings runs the actor against the given Realtor.ca search URL
// and returns the scraped listings. maxItems <= 0 leaves the actor's own
// default in place.
func (c *ApifyClient) ScrapeListings(ctx context.Context, req ScrapeRequest) ([]Listing, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	input := map[string]interface{}{
		"startUrls": []map[string]string{{"url": req.SearchURL}},
	}
	if req.MaxItems > 0 {
		input["maxItems"] = req.MaxItems
	}
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode actor input: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?token=%s",
		c.baseURL, url.PathEscape(c.actorID), url.QueryEscape(c.token))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build actor request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	metrics.RecordClientRequest("apify", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("actor run failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("actor run returned status %d", resp.StatusCode)
	}

	var listings []Listing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("failed to decode actor dataset: %w", err)
	}

	c.logger.Info().Int("listings", len(listings)).Msg("actor run complete")
	return listings, nil
}
