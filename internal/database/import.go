// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package database

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/trendscope/trendscope/internal/logging"
)

// ImportCSV loads a unified dataset CSV into the posts table using
// DuckDB's read_csv_auto. Expected columns: id, platform, title, text,
// author, created_at, engagement_score, normalized_engagement,
// sentiment, sentiment_score, keywords, hashtags. The keywords and
// hashtags columns hold comma-separated terms and are converted to the
// JSON array encoding the posts table uses.
//
// Rows whose ID already exists are skipped, so importing the same file
// twice is a no-op. Returns the number of rows inserted.
func (db *DB) ImportCSV(ctx context.Context, path string) (int64, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("csv file not accessible: %w", err)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()

	// Terms arrive comma-separated; rewrite them as JSON arrays. Double
	// quotes are stripped rather than escaped since extracted keywords
	// and hashtags never legitimately contain them.
	const termsToJSON = `CASE
		WHEN %[1]s IS NULL OR trim(CAST(%[1]s AS VARCHAR)) = '' THEN '[]'
		ELSE '["' || regexp_replace(replace(trim(CAST(%[1]s AS VARCHAR)), '"', ''), '\s*,\s*', '","', 'g') || '"]'
	END`

	query := fmt.Sprintf(`
		INSERT INTO posts (
			id, platform, title, body, author, created_at,
			engagement_score, normalized_engagement,
			sentiment, sentiment_score, keywords, hashtags
		)
		SELECT
			CAST(id AS VARCHAR),
			CAST(platform AS VARCHAR),
			COALESCE(CAST(title AS VARCHAR), ''),
			COALESCE(CAST(text AS VARCHAR), ''),
			COALESCE(CAST(author AS VARCHAR), ''),
			TRY_CAST(created_at AS TIMESTAMP),
			COALESCE(TRY_CAST(engagement_score AS DOUBLE), 0),
			COALESCE(TRY_CAST(normalized_engagement AS DOUBLE), 0),
			COALESCE(CAST(sentiment AS VARCHAR), 'neutral'),
			COALESCE(TRY_CAST(sentiment_score AS DOUBLE), 0),
			`+fmt.Sprintf(termsToJSON, "keywords")+`,
			`+fmt.Sprintf(termsToJSON, "hashtags")+`
		FROM read_csv_auto('%s', header=true, all_varchar=true)
		WHERE id IS NOT NULL AND trim(CAST(id AS VARCHAR)) != ''
		ON CONFLICT DO NOTHING`,
		escapeSQLString(path))

	res, err := db.conn.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to import csv %s: %w", path, err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read import count: %w", err)
	}

	logging.Info().
		Str("path", path).
		Int64("inserted", inserted).
		Dur("duration", time.Since(start)).
		Msg("CSV import complete")

	return inserted, nil
}

// escapeSQLString doubles single quotes for embedding in a SQL string
// literal. File paths cannot be bound as parameters inside table
// functions, so the path is inlined.
func escapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
