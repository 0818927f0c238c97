// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core database tables.
//
// The posts table is the unified dataset across all platforms. Keyword
// and hashtag lists are stored as JSON-encoded arrays in TEXT columns;
// items are deduplicated by ID at insert time with ON CONFLICT DO
// NOTHING, matching first-occurrence-wins load semantics.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS posts (
			id VARCHAR PRIMARY KEY,
			platform VARCHAR NOT NULL,
			title VARCHAR NOT NULL DEFAULT '',
			body VARCHAR NOT NULL DEFAULT '',
			author VARCHAR NOT NULL DEFAULT '',
			created_at TIMESTAMP,
			engagement_score DOUBLE NOT NULL DEFAULT 0,
			normalized_engagement DOUBLE NOT NULL DEFAULT 0,
			sentiment VARCHAR NOT NULL DEFAULT 'neutral',
			sentiment_score DOUBLE NOT NULL DEFAULT 0,
			keywords TEXT NOT NULL DEFAULT '[]',
			hashtags TEXT NOT NULL DEFAULT '[]',
			imported_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// createIndexes creates indexes for the common filter paths: platform
// filtering, time-window cutoffs and per-author sequences.
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_posts_platform ON posts (platform)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_author ON posts (author, created_at)`,
	}

	for _, query := range indexes {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}

	return nil
}
