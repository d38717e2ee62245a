// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

// Package main is the entry point for the real estate platform server.
//
// The server automates social media content work for a real estate agent:
// it stores manually uploaded post content, learns engagement patterns from
// it, scores and generates SEO-optimized captions, and proxies market
// statistics and listing scrapes.
//
// # Startup order
//
//  1. Configuration: Koanf v2 layered defaults, YAML file, environment
//  2. Database: DuckDB content store with versioned migrations
//  3. Learning engine: in-memory performance history fed from the store
//  4. SEO service: keyword config, optional grammar checker
//  5. Outbound clients: OpenAI, market statistics, Apify (each optional)
//  6. Supervisor tree: HTTP server plus the periodic learning refresher
//
// # Configuration
//
// Environment variables use the APP_ prefix with underscores for nesting,
// for example APP_SERVER_PORT=5000 or APP_SECURITY_JWT_SECRET=....
// A config.yaml in the working directory (or CONFIG_PATH) is merged in
// between defaults and the environment.
//
// # Signal handling
//
// SIGINT and SIGTERM trigger a graceful shutdown: the HTTP server drains
// in-flight requests, background services stop, and the database closes.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/api"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/auth"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/clients"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/config"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/learning"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/logging"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/seo"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/store"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/supervisor"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Int("port", cfg.Server.Port).
		Msg("starting real estate platform")

	st, err := store.New(cfg.Database, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize content store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("error closing content store")
		}
	}()

	engine := learning.NewEngine(cfg.Learning, st, logger)

	seoService, err := buildSEOService(cfg, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize SEO service")
	}

	jwtManager, err := auth.NewJWTManager(cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize token manager")
	}

	var credentials *auth.CredentialChecker
	if cfg.Security.AdminUsername != "" && cfg.Security.AdminPassword != "" {
		credentials, err = auth.NewCredentialChecker(cfg.Security.AdminUsername, cfg.Security.AdminPassword)
		if err != nil {
			logging.Fatal().Err(err).Msg("failed to initialize admin credentials")
		}
	} else {
		logging.Warn().Msg("admin credentials not configured, login is disabled")
	}

	deps := api.Dependencies{
		Config:      cfg,
		Store:       st,
		Engine:      engine,
		SEO:         seoService,
		JWT:         jwtManager,
		Credentials: credentials,
		Logger:      logger,
	}
	wireClients(cfg, &deps)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           api.NewRouter(deps).Routes(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logger, supervisor.DefaultTreeConfig())
	tree.Add(supervisor.NewHTTPService(server, supervisor.DefaultTreeConfig().ShutdownTimeout))
	if cfg.Learning.RefreshEnabled {
		tree.Add(supervisor.NewLearningRefresher(engine, cfg.Learning.RefreshInterval, logger))
	} else {
		logging.Info().Msg("scheduled learning refresh disabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("serving")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("supervisor tree error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("service failed to stop within timeout")
		}
	}

	logging.Info().Msg("stopped gracefully")
}

// buildSEOService assembles the SEO scorer with its keyword inventory and
// grammar checker. An unset keywords path uses the built-in defaults.
func buildSEOService(cfg *config.Config, logger zerolog.Logger) (*seo.Service, error) {
	keywords := seo.DefaultKeywordConfig()
	if cfg.SEO.KeywordsPath != "" {
		loaded, err := seo.LoadKeywordConfig(cfg.SEO.KeywordsPath)
		if err != nil {
			return nil, fmt.Errorf("loading keyword config: %w", err)
		}
		keywords = loaded
	}

	var grammar seo.GrammarChecker = seo.NoopGrammarChecker{}
	if cfg.SEO.GrammarCheckEnabled {
		grammar = seo.NewHTTPGrammarChecker(cfg.SEO.GrammarCheckURL, cfg.SEO.GrammarTimeout, logger)
	}

	return seo.NewService(cfg.SEO, keywords, grammar, logger), nil
}

// wireClients attaches the optional outbound clients. Each is enabled only
// when its credentials are configured; the corresponding endpoints report
// an upstream error otherwise.
func wireClients(cfg *config.Config, deps *api.Dependencies) {
	if cfg.OpenAI.APIKey != "" {
		client, err := clients.NewOpenAIClient(cfg.OpenAI, deps.Logger)
		if err != nil {
			logging.Warn().Err(err).Msg("openai client disabled")
		} else {
			deps.OpenAI = client
		}
	}

	if cfg.Market.BaseURL != "" {
		client, err := clients.NewMarketClient(cfg.Market, deps.Logger)
		if err != nil {
			logging.Warn().Err(err).Msg("market client disabled")
		} else {
			deps.Market = client
		}
	}

	if cfg.Apify.Token != "" {
		client, err := clients.NewApifyClient(cfg.Apify, deps.Logger)
		if err != nil {
			logging.Warn().Err(err).Msg("apify client disabled")
		} else {
			deps.Apify = client
		}
	}
}
