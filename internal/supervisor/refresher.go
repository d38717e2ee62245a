// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package supervisor

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/learning"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/metrics"
)

// refreshTimeout bounds a single refresh cycle so a stuck store query
// cannot wedge the service.
const refreshTimeout = 2 * time.Minute

// LearningRefresher periodically reloads stored content into the learning
// engine and recomputes the insight snapshot, so insights stay current
// without waiting for an API-triggered ingestion.
type LearningRefresher struct {
	engine   *learning.Engine
	interval time.Duration
	logger   zerolog.Logger
}

// NewLearningRefresher builds a refresher running at the given interval.
// Intervals below one minute are raised to one minute.
func NewLearningRefresher(engine *learning.Engine, interval time.Duration, logger zerolog.Logger) *LearningRefresher {
	if interval < time.Minute {
		interval = time.Minute
	}
	return &LearningRefresher{
		engine:   engine,
		interval: interval,
		logger:   logger.With().Str("component", "learning-refresher").Logger(),
	}
}

// Serve implements suture.Service. One refresh runs immediately, then on
// every tick until the context is canceled.
func (r *LearningRefresher) Serve(ctx context.Context) error {
	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *LearningRefresher) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	records, err := r.engine.FetchPostPerformance(ctx, "", nil, 0)
	if err != nil {
		r.logger.Error().Err(err).Msg("scheduled ingestion failed")
		return
	}
	metrics.RecordIngestion(len(records), r.engine.History().Len())

	if _, err := r.engine.AnalyzePerformancePatterns(); err != nil {
		var insufficient *learning.InsufficientDataError
		if errors.As(err, &insufficient) {
			// Expected until enough content accumulates.
			r.logger.Debug().
				Int("data_points", insufficient.DataPoints).
				Int("required", insufficient.Required).
				Msg("not enough history for analysis")
			metrics.RecordAnalysis("insufficient_data")
			return
		}
		r.logger.Error().Err(err).Msg("scheduled analysis failed")
		metrics.RecordAnalysis("error")
		return
	}
	metrics.RecordAnalysis("success")

	r.logger.Info().
		Int("history_size", r.engine.History().Len()).
		Msg("insight snapshot refreshed")
}

func (r *LearningRefresher) String() string {
	return "learning-refresher"
}
