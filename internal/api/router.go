// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

// Package api provides the HTTP surface using the chi router. All data
// routes live under /api/v1 behind JWT auth; /health and /metrics are open.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/auth"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/clients"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/config"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/learning"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/middleware"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/seo"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/store"
)

// Dependencies carries everything the handlers need. OpenAI, Market and
// Apify may be nil when the corresponding credentials are not configured;
// their endpoints then return UPSTREAM_ERROR.
type Dependencies struct {
	Config      *config.Config
	Store       *store.Store
	Engine      *learning.Engine
	SEO         *seo.Service
	OpenAI      *clients.OpenAIClient
	Market      *clients.MarketClient
	Apify       *clients.ApifyClient
	JWT         *auth.JWTManager
	Credentials *auth.CredentialChecker
	Logger      zerolog.Logger
}

// Router builds the HTTP handler tree.
type Router struct {
	deps Dependencies
}

// NewRouter creates a router from its dependencies.
func NewRouter(deps Dependencies) *Router {
	return &Router{deps: deps}
}

// Routes assembles the full middleware and route tree.
func (rt *Router) Routes() http.Handler {
	cfg := rt.deps.Config
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(rt.deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Compression)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthLive)
	r.Get("/health/ready", rt.healthReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		if !cfg.Security.RateLimitDisabled {
			// Tight limit on login attempts to slow brute forcing.
			r.Use(httprate.LimitByIP(5, cfg.Security.RateLimitWindow))
		}
		r.Post("/login", rt.login)
	})

	r.Route("/api/v1", func(r chi.Router) {
		if !cfg.Security.RateLimitDisabled {
			r.Use(httprate.LimitByIP(cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow))
		}
		r.Use(middleware.PrometheusMetrics)
		r.Use(auth.Middleware(rt.deps.JWT))

		r.Route("/content", func(r chi.Router) {
			r.Post("/", rt.createContent)
			r.Get("/", rt.listContent)
			r.Get("/search", rt.searchContent)
			r.Get("/stats", rt.contentStats)
			r.Post("/import", rt.importContent)
			r.Get("/export", rt.exportContent)
			r.Get("/{id}", rt.getContent)
			r.Put("/{id}", rt.updateContent)
			r.Delete("/{id}", rt.deleteContent)
		})

		r.Route("/learning", func(r chi.Router) {
			r.Post("/ingest", rt.learningIngest)
			r.Get("/insights", rt.learningInsights)
			r.Get("/recommendations", rt.learningRecommendations)
			r.Get("/status", rt.learningStatus)
		})

		r.Route("/seo", func(r chi.Router) {
			r.Post("/score", rt.seoScore)
			r.Post("/optimize", rt.seoOptimize)
			r.Post("/evaluate", rt.seoEvaluate)
			r.Post("/generate", rt.seoGenerate)
			r.Post("/keywords/analyze", rt.seoAnalyzeKeywords)
			r.Post("/keywords/density", rt.seoKeywordDensity)
			r.Post("/hashtags", rt.seoHashtags)
		})

		r.Get("/market/stats", rt.marketStats)
		r.Post("/realtor/scrape", rt.realtorScrape)

		r.Route("/brand-voices", func(r chi.Router) {
			r.Post("/", rt.createBrandVoice)
			r.Get("/", rt.listBrandVoices)
			r.Get("/{id}", rt.getBrandVoice)
			r.Put("/{id}", rt.updateBrandVoice)
			r.Delete("/{id}", rt.deleteBrandVoice)
		})

		r.Route("/social-accounts", func(r chi.Router) {
			r.Post("/", rt.createSocialAccount)
			r.Get("/", rt.listSocialAccounts)
			r.Get("/{id}", rt.getSocialAccount)
			r.Put("/{id}", rt.updateSocialAccount)
			r.Delete("/{id}", rt.deleteSocialAccount)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", rt.createPost)
			r.Get("/", rt.listPosts)
			r.Get("/{id}", rt.getPost)
			r.Put("/{id}", rt.updatePost)
			r.Delete("/{id}", rt.deletePost)
		})
	})

	return r
}

func (rt *Router) healthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) healthReady(w http.ResponseWriter, r *http.Request) {
	if err := rt.deps.Store.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "DATABASE_ERROR", "database not reachable", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
