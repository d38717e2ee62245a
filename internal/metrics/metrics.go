// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

// Package metrics exposes Prometheus instrumentation for the API surface,
// the content store, the learning engine and outbound clients.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Content store metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// Learning engine metrics
	LearningRecordsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "learning_records_ingested_total",
			Help: "Total number of performance records ingested",
		},
	)

	LearningAnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learning_analyses_total",
			Help: "Total number of pattern analyses by result",
		},
		[]string{"result"}, // "ok", "insufficient_data", "error"
	)

	LearningHistorySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "learning_history_records",
			Help: "Current number of records in the performance history",
		},
	)

	// SEO metrics
	SEOScoresComputed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seo_score_distribution",
			Help:    "Distribution of computed SEO scores",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	SEOContentGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_content_generated_total",
			Help: "Total number of generated content drafts",
		},
		[]string{"platform", "content_type"},
	)

	GrammarCheckFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "grammar_check_failures_total",
			Help: "Total number of failed grammar check calls",
		},
	)

	// Outbound client metrics
	ClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_requests_total",
			Help: "Total number of outbound client requests by result",
		},
		[]string{"client", "result"}, // result: "ok", "error"
	)

	ClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Outbound client request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"client"},
	)
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDBQuery records a store query and its outcome.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordIngestion records records pulled into the learning history.
func RecordIngestion(count, historySize int) {
	LearningRecordsIngested.Add(float64(count))
	LearningHistorySize.Set(float64(historySize))
}

// RecordAnalysis records the outcome of one pattern analysis.
func RecordAnalysis(result string) {
	LearningAnalysesTotal.WithLabelValues(result).Inc()
}

// RecordSEOScore records a computed SEO score.
func RecordSEOScore(score float64) {
	SEOScoresComputed.Observe(score)
}

// RecordContentGenerated records one generated content draft.
func RecordContentGenerated(platform, contentType string) {
	SEOContentGenerated.WithLabelValues(platform, contentType).Inc()
}

// RecordClientRequest records an outbound client call.
func RecordClientRequest(client string, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	ClientRequestsTotal.WithLabelValues(client, result).Inc()
	ClientRequestDuration.WithLabelValues(client).Observe(duration.Seconds())
}
