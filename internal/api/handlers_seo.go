// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package api

import (
	"net/http"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/metrics"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/seo"
)

type scoreRequest struct {
	Content     string `json:"content" validate:"required"`
	Location    string `json:"location"`
	ContentType string `json:"content_type"`
}

func (rt *Router) seoScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !decodeBody(w, r, &req) || !validateBody(w, &req) {
		return
	}

	meta := rt.deps.SEO.Analyze(r.Context(), req.Content, req.Location, req.ContentType)
	metrics.RecordSEOScore(meta.SEOScore)
	respondJSON(w, http.StatusOK, meta)
}

type optimizeRequest struct {
	Content  string `json:"content" validate:"required"`
	Platform string `json:"platform"`
}

func (rt *Router) seoOptimize(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if !decodeBody(w, r, &req) || !validateBody(w, &req) {
		return
	}
	respondJSON(w, http.StatusOK, rt.deps.SEO.OptimizeExistingContent(r.Context(), req.Content, req.Platform))
}

type evaluateRequest struct {
	Posts    []models.ContentItem `json:"posts" validate:"required,min=1"`
	Platform string               `json:"platform"`
}

func (rt *Router) seoEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if !decodeBody(w, r, &req) || !validateBody(w, &req) {
		return
	}
	respondJSON(w, http.StatusOK, rt.deps.SEO.EvaluatePosts(r.Context(), req.Posts, req.Platform))
}

type generateRequest struct {
	seo.GenerateRequest
	// Enhance asks OpenAI to rewrite the template draft. Requires a
	// configured API key.
	Enhance    bool   `json:"enhance"`
	BrandVoice string `json:"brand_voice"`
	// WithImage additionally renders the image prompt into an image URL.
	WithImage bool `json:"with_image"`
}

type generateResponse struct {
	seo.GeneratedContent
	ImageURL string `json:"image_url,omitempty"`
}

func (rt *Router) seoGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeBody(w, r, &req) || !validateBody(w, &req) {
		return
	}

	if (req.Enhance || req.WithImage) && rt.deps.OpenAI == nil {
		respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "content enhancement is not configured", nil)
		return
	}

	generated := rt.deps.SEO.GenerateContent(r.Context(), req.GenerateRequest)
	metrics.RecordContentGenerated(generated.Platform, generated.ContentType)

	if req.Enhance {
		enhanced, err := rt.deps.OpenAI.GenerateCaption(r.Context(), generated.Content, req.BrandVoice)
		if err != nil {
			rt.deps.Logger.Error().Err(err).Msg("caption enhancement failed")
			respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "content enhancement failed", nil)
			return
		}
		generated.Content = enhanced
		generated.CharacterCount = len(enhanced)
		generated.SEOMetadata = rt.deps.SEO.Analyze(r.Context(), enhanced, generated.Location, generated.ContentType)
	}

	resp := generateResponse{GeneratedContent: generated}
	if req.WithImage {
		url, err := rt.deps.OpenAI.GenerateImage(r.Context(), generated.ImagePrompt)
		if err != nil {
			rt.deps.Logger.Error().Err(err).Msg("image generation failed")
			respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "image generation failed", nil)
			return
		}
		resp.ImageURL = url
	}

	respondJSON(w, http.StatusOK, resp)
}

type keywordsRequest struct {
	Keywords []string `json:"keywords" validate:"required,min=1"`
}

func (rt *Router) seoAnalyzeKeywords(w http.ResponseWriter, r *http.Request) {
	var req keywordsRequest
	if !decodeBody(w, r, &req) || !validateBody(w, &req) {
		return
	}

	analysis, err := rt.deps.SEO.AnalyzeKeywords(req.Keywords)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	respondJSON(w, http.StatusOK, analysis)
}

type densityRequest struct {
	Text    string `json:"text" validate:"required"`
	Keyword string `json:"keyword" validate:"required"`
}

func (rt *Router) seoKeywordDensity(w http.ResponseWriter, r *http.Request) {
	var req densityRequest
	if !decodeBody(w, r, &req) || !validateBody(w, &req) {
		return
	}

	report, err := rt.deps.SEO.KeywordDensity(req.Text, req.Keyword)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

type hashtagsRequest struct {
	ContentType string `json:"content_type" validate:"required"`
	Platform    string `json:"platform"`
	Location    string `json:"location"`
}

func (rt *Router) seoHashtags(w http.ResponseWriter, r *http.Request) {
	var req hashtagsRequest
	if !decodeBody(w, r, &req) || !validateBody(w, &req) {
		return
	}

	tags := rt.deps.SEO.GenerateHashtags(req.ContentType, req.Platform, req.Location)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"hashtags": tags,
		"count":    len(tags),
	})
}
