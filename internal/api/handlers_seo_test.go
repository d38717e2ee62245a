// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package api

import (
	"net/http"
	"testing"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

func TestSEOScore(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/api/v1/seo/score", map[string]string{
		"content":  "Beautiful family home for sale in Windsor Ontario. Your dream home awaits in this great neighbourhood.",
		"location": "Windsor",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("score = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var meta struct {
		SEOScore         float64 `json:"seo_score"`
		LocationMentions int     `json:"location_mentions"`
		ContentLength    int     `json:"content_length"`
	}
	decodeData(t, env, &meta)
	if meta.SEOScore <= 0 || meta.SEOScore > 100 {
		t.Errorf("seo_score = %f, want (0, 100]", meta.SEOScore)
	}
	if meta.LocationMentions < 1 {
		t.Errorf("location_mentions = %d, want >= 1", meta.LocationMentions)
	}

	rec, env = ts.post(t, "/api/v1/seo/score", map[string]string{})
	if rec.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("missing content = %d %+v, want 400 VALIDATION_ERROR", rec.Code, env.Error)
	}
}

func TestSEOOptimizeAndEvaluate(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/api/v1/seo/optimize", map[string]string{
		"content":  "nice house for sale",
		"platform": "instagram",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("optimize = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var opt struct {
		OriginalContent   string   `json:"original_content"`
		CurrentSEOScore   float64  `json:"current_seo_score"`
		Suggestions       []string `json:"suggestions"`
		OptimizedHashtags []string `json:"optimized_hashtags"`
	}
	decodeData(t, env, &opt)
	if opt.OriginalContent != "nice house for sale" {
		t.Errorf("original_content = %q", opt.OriginalContent)
	}
	if len(opt.Suggestions) == 0 || len(opt.OptimizedHashtags) == 0 {
		t.Errorf("optimization = %+v, want suggestions and hashtags", opt)
	}

	rec, _ = ts.post(t, "/api/v1/seo/evaluate", map[string]interface{}{
		"posts": []models.ContentItem{
			{"text": "Just listed in Windsor, book a showing today"},
			{"text": "Rate update"},
		},
		"platform": "instagram",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("evaluate = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	rec, _ = ts.post(t, "/api/v1/seo/evaluate", map[string]interface{}{"posts": []models.ContentItem{}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty posts = %d, want 400", rec.Code)
	}
}

func TestSEOGenerate(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/api/v1/seo/generate", map[string]interface{}{
		"content_type": "property_showcase",
		"platform":     "instagram",
		"location":     "Windsor",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("generate = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var generated struct {
		Content        string   `json:"content"`
		Hashtags       []string `json:"hashtags"`
		Platform       string   `json:"platform"`
		CharacterCount int      `json:"character_count"`
	}
	decodeData(t, env, &generated)
	if generated.Content == "" || len(generated.Hashtags) == 0 {
		t.Errorf("generated = %+v, want content and hashtags", generated)
	}
	if generated.Platform != "instagram" {
		t.Errorf("platform = %q, want instagram", generated.Platform)
	}

	// Enhancement needs a configured OpenAI client.
	rec, env = ts.post(t, "/api/v1/seo/generate", map[string]interface{}{
		"content_type": "property_showcase",
		"enhance":      true,
	})
	if rec.Code != http.StatusBadGateway || env.Error == nil || env.Error.Code != "UPSTREAM_ERROR" {
		t.Errorf("enhance without client = %d %+v, want 502 UPSTREAM_ERROR", rec.Code, env.Error)
	}

	rec, _ = ts.post(t, "/api/v1/seo/generate", map[string]interface{}{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing content_type = %d, want 400", rec.Code)
	}
}

func TestSEOKeywordTools(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/api/v1/seo/keywords/analyze", map[string]interface{}{
		"keywords": []string{"windsor real estate", "homes for sale windsor", "short"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("analyze keywords = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	rec, _ = ts.post(t, "/api/v1/seo/keywords/analyze", map[string]interface{}{"keywords": []string{}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty keywords = %d, want 400", rec.Code)
	}

	rec, env = ts.post(t, "/api/v1/seo/keywords/density", map[string]string{
		"text":    "Windsor homes sell fast. Windsor buyers move quickly.",
		"keyword": "windsor",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("density = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var density struct {
		KeywordCount int     `json:"keyword_count"`
		Density      float64 `json:"keyword_density"`
	}
	decodeData(t, env, &density)
	if density.KeywordCount != 2 {
		t.Errorf("keyword_count = %d, want 2", density.KeywordCount)
	}

	rec, env = ts.post(t, "/api/v1/seo/hashtags", map[string]string{
		"content_type": "property_showcase",
		"platform":     "instagram",
		"location":     "Windsor",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("hashtags = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var tags struct {
		Hashtags []string `json:"hashtags"`
		Count    int      `json:"count"`
	}
	decodeData(t, env, &tags)
	if tags.Count == 0 || len(tags.Hashtags) != tags.Count {
		t.Errorf("hashtags = %+v", tags)
	}
}
