// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

// Package store persists manually uploaded social content and related
// entities in an embedded DuckDB database.
//
// Content items are schemaless JSON documents. The store keeps the full
// payload as the source of truth and mirrors a few columns (platform,
// content type, status, upload time) for filtering and ordering. Uploads
// are enriched on the way in: hashtags and mentions are extracted,
// word and character counts computed, and a coarse sentiment label
// attached.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/config"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/metrics"
)

// defaultContentLimit bounds list queries when the caller passes no limit.
const defaultContentLimit = 50

// Store wraps the DuckDB connection used for all persistence.
type Store struct {
	conn   *sql.DB
	cfg    config.DatabaseConfig
	logger zerolog.Logger

	// Injectable for tests.
	now   func() time.Time
	newID func() string
}

// New opens (or creates) the DuckDB database at cfg.Path and applies
// pending schema migrations.
func New(cfg config.DatabaseConfig, logger zerolog.Logger) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "512MB"
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
		cfg.Path, threads, maxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// DuckDB is an in-process engine; a single writer connection avoids
	// lock contention between concurrent writes.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	s := &Store{
		conn:   conn,
		cfg:    cfg,
		logger: logger.With().Str("component", "store").Logger(),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.New().String() },
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := s.runMigrations(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s.logger.Info().Str("path", cfg.Path).Int("threads", threads).Msg("database ready")
	return s, nil
}

// Ping verifies the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// exec runs a statement through the connection and records its duration and
// outcome under the given operation and table labels.
func (s *Store) exec(ctx context.Context, operation, table, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := s.conn.ExecContext(ctx, query, args...)
	observeQuery(operation, table, start, err)
	return res, err
}

// query runs a row query through the connection, recording duration and
// outcome like exec.
func (s *Store) query(ctx context.Context, operation, table, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := s.conn.QueryContext(ctx, query, args...)
	observeQuery(operation, table, start, err)
	return rows, err
}

// queryRow runs a single-row query. The row error only surfaces at Scan, so
// the returned row records the metric there.
func (s *Store) queryRow(ctx context.Context, operation, table, query string, args ...any) trackedRow {
	return trackedRow{
		row:       s.conn.QueryRowContext(ctx, query, args...),
		operation: operation,
		table:     table,
		start:     time.Now(),
	}
}

// trackedRow defers metric recording to Scan, where a QueryRowContext error
// becomes visible.
type trackedRow struct {
	row       *sql.Row
	operation string
	table     string
	start     time.Time
}

func (r trackedRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	observeQuery(r.operation, r.table, r.start, err)
	return err
}

// observeQuery records one query's duration and outcome. A no-rows result is
// a miss, not a database failure.
func observeQuery(operation, table string, start time.Time, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
}
