// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package seo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/metrics"
)

// GrammarChecker counts grammar issues in text. Implementations must degrade
// to 0 issues on any failure; a broken checker must never fail a scoring
// request.
type GrammarChecker interface {
	CountIssues(ctx context.Context, text string) int
}

// NoopGrammarChecker reports no issues. Used when grammar checking is
// disabled by configuration.
type NoopGrammarChecker struct{}

func (NoopGrammarChecker) CountIssues(context.Context, string) int { return 0 }

// languageToolResponse is the subset of the LanguageTool /v2/check response
// the checker reads.
type languageToolResponse struct {
	Matches []struct {
		Message string `json:"message"`
	} `json:"matches"`
}

// HTTPGrammarChecker queries a LanguageTool-compatible server. The breaker
// trips on the first failure and the checker never resets it, so one broken
// request disables grammar checking for the rest of the process lifetime and
// every later call returns 0 issues immediately.
type HTTPGrammarChecker struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[int]
	logger  zerolog.Logger
}

// NewHTTPGrammarChecker creates a checker against a LanguageTool server.
func NewHTTPGrammarChecker(baseURL string, timeout time.Duration, logger zerolog.Logger) *HTTPGrammarChecker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	c := &HTTPGrammarChecker{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "grammar").Logger(),
	}

	cbSettings := gobreaker.Settings{
		Name:        "grammar-check",
		MaxRequests: 0,
		// No recovery window: the scorer treats an open breaker as
		// "0 issues" and never half-opens it within a process lifetime.
		Timeout: 24 * 365 * time.Hour,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.TotalFailures >= 1
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				c.logger.Warn().Msg("grammar checking disabled after failure")
			}
		},
	}
	c.breaker = gobreaker.NewCircuitBreaker[int](cbSettings)

	return c
}

// CountIssues returns the number of grammar matches LanguageTool reports.
// Failures, including an already-open breaker, return 0.
func (c *HTTPGrammarChecker) CountIssues(ctx context.Context, text string) int {
	count, err := c.breaker.Execute(func() (int, error) {
		return c.check(ctx, text)
	})
	if err != nil {
		// An open breaker short-circuits without calling out, so only
		// genuine failed calls count.
		if !errors.Is(err, gobreaker.ErrOpenState) {
			metrics.GrammarCheckFailures.Inc()
		}
		return 0
	}
	return count
}

func (c *HTTPGrammarChecker) check(ctx context.Context, text string) (int, error) {
	form := url.Values{
		"text":     {text},
		"language": {"en-US"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/check",
		strings.NewReader(form.Encode()))
	if err != nil {
		return 0, fmt.Errorf("building grammar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("grammar check request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return 0, fmt.Errorf("grammar check status %d", resp.StatusCode)
	}

	var parsed languageToolResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("decoding grammar response: %w", err)
	}
	return len(parsed.Matches), nil
}
