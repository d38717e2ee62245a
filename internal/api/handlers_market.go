// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package api

import (
	"net/http"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/clients"
)

func (rt *Router) marketStats(w http.ResponseWriter, r *http.Request) {
	if rt.deps.Market == nil {
		respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "market statistics are not configured", nil)
		return
	}

	stats, err := rt.deps.Market.GetMarketStats(r.Context())
	if err != nil {
		rt.deps.Logger.Error().Err(err).Msg("market stats fetch failed")
		respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "failed to fetch market statistics", nil)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (rt *Router) realtorScrape(w http.ResponseWriter, r *http.Request) {
	if rt.deps.Apify == nil {
		respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "listing scraping is not configured", nil)
		return
	}

	var req clients.ScrapeRequest
	if !decodeBody(w, r, &req) || !validateBody(w, &req) {
		return
	}

	listings, err := rt.deps.Apify.ScrapeListings(r.Context(), req)
	if err != nil {
		rt.deps.Logger.Error().Err(err).Msg("listing scrape failed")
		respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "failed to scrape listings", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"listings": listings,
		"count":    len(listings),
	})
}
