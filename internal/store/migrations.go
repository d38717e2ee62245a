// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package store

import (
	"context"
	"fmt"
	"time"
)

// Migration is a single versioned schema change. Migrations are append-only
// and run exactly once, tracked in the schema_migrations table.
type Migration struct {
	Version   int
	Name      string
	SQL       string
	AppliedAt time.Time
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func migrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_manual_content",
			SQL: `CREATE TABLE IF NOT EXISTS manual_content (
				id VARCHAR PRIMARY KEY,
				platform VARCHAR NOT NULL DEFAULT 'manual',
				content_type VARCHAR NOT NULL DEFAULT 'text',
				status VARCHAR NOT NULL DEFAULT 'active',
				uploaded_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP,
				payload VARCHAR NOT NULL
			);`,
		},
		{
			Version: 2,
			Name:    "create_brand_voices",
			SQL: `CREATE TABLE IF NOT EXISTS brand_voices (
				id VARCHAR PRIMARY KEY,
				name VARCHAR NOT NULL,
				description VARCHAR,
				tone VARCHAR,
				keywords VARCHAR NOT NULL DEFAULT '[]',
				examples VARCHAR NOT NULL DEFAULT '[]',
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);`,
		},
		{
			Version: 3,
			Name:    "create_social_accounts",
			SQL: `CREATE TABLE IF NOT EXISTS social_accounts (
				id VARCHAR PRIMARY KEY,
				platform VARCHAR NOT NULL,
				handle VARCHAR NOT NULL,
				active BOOLEAN NOT NULL DEFAULT true,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);`,
		},
		{
			Version: 4,
			Name:    "create_social_media_posts",
			SQL: `CREATE TABLE IF NOT EXISTS social_media_posts (
				id VARCHAR PRIMARY KEY,
				account_id VARCHAR,
				platform VARCHAR NOT NULL,
				content VARCHAR NOT NULL,
				hashtags VARCHAR NOT NULL DEFAULT '[]',
				image_url VARCHAR,
				status VARCHAR NOT NULL DEFAULT 'draft',
				scheduled_at TIMESTAMP,
				created_at TIMESTAMP NOT NULL,
				updated_at TIMESTAMP NOT NULL
			);`,
		},
	}
}

// runMigrations applies every migration that is not yet recorded in
// schema_migrations, in version order.
func (s *Store) runMigrations(ctx context.Context) error {
	if _, err := s.conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	applied, err := s.appliedMigrations(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations() {
		if _, ok := applied[m.Version]; ok {
			continue
		}
		if _, err := s.conn.ExecContext(ctx, m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := s.conn.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`,
			m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		s.logger.Debug().Int("version", m.Version).Str("name", m.Name).Msg("applied migration")
	}
	return nil
}

func (s *Store) appliedMigrations(ctx context.Context) (map[int]Migration, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT version, name, applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]Migration)
	for rows.Next() {
		var m Migration
		if err := rows.Scan(&m.Version, &m.Name, &m.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[m.Version] = m
	}
	return applied, rows.Err()
}

// SchemaVersion returns the highest applied migration version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := s.conn.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to query schema version: %w", err)
	}
	return version, nil
}
