// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/trendscope/trendscope/internal/dataset"
	"github.com/trendscope/trendscope/internal/logging"
)

// CountItems returns the number of rows in the posts table.
func (db *DB) CountItems(ctx context.Context) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var count int64
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// LoadItems reads the full posts table in insertion order. The result
// feeds snapshot rebuilds, which normalize and index it in memory.
func (db *DB) LoadItems(ctx context.Context) ([]dataset.Item, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, platform, title, body, author, created_at,
		       engagement_score, normalized_engagement,
		       sentiment, sentiment_score, keywords, hashtags
		FROM posts`)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer closeQuietly(rows)

	var items []dataset.Item
	for rows.Next() {
		var (
			it        dataset.Item
			createdAt sql.NullTime
			keywords  string
			hashtags  string
		)
		if err := rows.Scan(
			&it.ID, &it.Platform, &it.Title, &it.Text, &it.Author, &createdAt,
			&it.EngagementScore, &it.NormalizedEngagement,
			&it.Sentiment, &it.SentimentScore, &keywords, &hashtags,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}

		if createdAt.Valid {
			it.CreatedAt = createdAt.Time.UTC()
		}
		if it.Keywords, err = decodeTerms(keywords); err != nil {
			return nil, fmt.Errorf("post %s: invalid keywords: %w", it.ID, err)
		}
		if it.Hashtags, err = decodeTerms(hashtags); err != nil {
			return nil, fmt.Errorf("post %s: invalid hashtags: %w", it.ID, err)
		}

		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return items, nil
}

// InsertItems inserts items in a single transaction. Rows whose ID is
// already present are skipped rather than updated, so re-importing the
// same file is idempotent.
func (db *DB) InsertItems(ctx context.Context, items []dataset.Item) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO posts (
			id, platform, title, body, author, created_at,
			engagement_score, normalized_engagement,
			sentiment, sentiment_score, keywords, hashtags
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeQuietly(stmt)

	var inserted int64
	for i := range items {
		it := &items[i]
		if it.ID == "" {
			return inserted, fmt.Errorf("item at index %d has no ID", i)
		}

		keywords, err := encodeTerms(it.Keywords)
		if err != nil {
			return inserted, fmt.Errorf("post %s: encode keywords: %w", it.ID, err)
		}
		hashtags, err := encodeTerms(it.Hashtags)
		if err != nil {
			return inserted, fmt.Errorf("post %s: encode hashtags: %w", it.ID, err)
		}

		var createdAt any
		if !it.CreatedAt.IsZero() {
			createdAt = it.CreatedAt.UTC()
		}

		res, err := stmt.ExecContext(ctx,
			it.ID, it.Platform, it.Title, it.Text, it.Author, createdAt,
			it.EngagementScore, it.NormalizedEngagement,
			it.Sentiment, it.SentimentScore, keywords, hashtags,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert post %s: %w", it.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += n
		}
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("failed to commit insert: %w", err)
	}

	logging.Debug().
		Int("items", len(items)).
		Int64("inserted", inserted).
		Msg("Inserted posts")

	return inserted, nil
}

// DeleteItemsBefore removes posts older than the given timestamp and
// returns the number of rows deleted. Used by retention cleanup.
func (db *DB) DeleteItemsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx,
		"DELETE FROM posts WHERE created_at IS NOT NULL AND created_at < ?", cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete posts: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete count: %w", err)
	}
	return deleted, nil
}

// PlatformCounts returns the number of posts per platform.
func (db *DB) PlatformCounts(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx,
		"SELECT platform, COUNT(*) FROM posts GROUP BY platform")
	if err != nil {
		return nil, fmt.Errorf("failed to count platforms: %w", err)
	}
	defer closeQuietly(rows)

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			platform string
			count    int64
		)
		if err := rows.Scan(&platform, &count); err != nil {
			return nil, fmt.Errorf("failed to scan platform count: %w", err)
		}
		counts[platform] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read platform counts: %w", err)
	}
	return counts, nil
}

// encodeTerms serializes a term list as a JSON array. Nil encodes as an
// empty array so the column never holds SQL NULL.
func encodeTerms(terms []string) (string, error) {
	if len(terms) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(terms)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeTerms parses a JSON array column. Empty strings decode as empty
// lists for rows written by external tools.
func decodeTerms(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return []string{}, nil
	}
	var terms []string
	if err := json.Unmarshal([]byte(raw), &terms); err != nil {
		return nil, err
	}
	return terms, nil
}
