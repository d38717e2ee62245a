// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package api

import (
	"net/http"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/metrics"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

type ingestRequest struct {
	Platform string               `json:"platform" validate:"omitempty,platform"`
	Items    []models.ContentItem `json:"items"`
	Limit    int                  `json:"limit" validate:"min=0,max=1000"`
}

func (rt *Router) learningIngest(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if !decodeBody(w, r, &req) || !validateBody(w, &req) {
		return
	}
	if req.Platform == "" {
		req.Platform = "manual"
	}

	records, err := rt.deps.Engine.FetchPostPerformance(r.Context(), req.Platform, req.Items, req.Limit)
	if err != nil {
		respondLearningError(w, err)
		return
	}
	metrics.RecordIngestion(len(records), rt.deps.Engine.History().Len())

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ingested":     len(records),
		"history_size": rt.deps.Engine.History().Len(),
	})
}

func (rt *Router) learningInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := rt.deps.Engine.AnalyzePerformancePatterns()
	if err != nil {
		metrics.RecordAnalysis("error")
		respondLearningError(w, err)
		return
	}
	metrics.RecordAnalysis("success")
	respondJSON(w, http.StatusOK, insights)
}

func (rt *Router) learningRecommendations(w http.ResponseWriter, r *http.Request) {
	contentType := r.URL.Query().Get("content_type")
	recs, err := rt.deps.Engine.ContentRecommendations(contentType)
	if err != nil {
		respondLearningError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

func (rt *Router) learningStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, rt.deps.Engine.Status())
}
