// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/trendscope/trendscope/internal/dataset"
	"github.com/trendscope/trendscope/internal/logging"
)

// SeedMockData populates the posts table with a small generated dataset
// for development and demos. The generator is seeded with a fixed value
// so repeated runs produce the same dataset.
func (db *DB) SeedMockData(ctx context.Context) error {
	logging.Info().Msg("Seeding database with mock data")

	rng := rand.New(rand.NewSource(42))

	const (
		numPosts      = 300
		daysOfHistory = 30
	)

	platforms := []string{dataset.PlatformReddit, dataset.PlatformYouTube, dataset.PlatformBluesky}

	authors := []string{
		"techwriter", "datadive", "mlwatcher", "cloudnine", "devrelkat",
		"opensorcerer", "pixelpusher", "quantleap", "rustacean", "gopherfan",
		"streamsmith", "apichaser", "bitflipper", "nightcompiler", "protoqueen",
	}

	topics := []struct {
		keywords []string
		hashtags []string
		titles   []string
	}{
		{
			keywords: []string{"ai", "machine learning", "llm"},
			hashtags: []string{"#ai", "#machinelearning"},
			titles: []string{
				"New open weights model tops the leaderboard",
				"Why small language models are winning in production",
				"Fine-tuning on a laptop: a practical walkthrough",
			},
		},
		{
			keywords: []string{"golang", "programming", "backend"},
			hashtags: []string{"#golang", "#programming"},
			titles: []string{
				"Structured concurrency patterns in Go services",
				"Profiling a Go API from 200ms to 20ms",
				"Error handling in Go: what finally clicked for me",
			},
		},
		{
			keywords: []string{"database", "duckdb", "analytics"},
			hashtags: []string{"#data", "#duckdb"},
			titles: []string{
				"Embedded analytics with a single-file database",
				"Columnar storage explained with actual numbers",
				"Replacing a warehouse with DuckDB for small data",
			},
		},
		{
			keywords: []string{"security", "privacy", "encryption"},
			hashtags: []string{"#security", "#privacy"},
			titles: []string{
				"What the latest credential leak actually exposed",
				"Threat modeling for side projects",
				"End-to-end encryption is not a feature checkbox",
			},
		},
		{
			keywords: []string{"climate", "energy", "science"},
			hashtags: []string{"#climate", "#energy"},
			titles: []string{
				"Grid-scale batteries had a very good quarter",
				"Reading the new emissions data without panic",
				"Solar keeps beating every forecast again",
			},
		},
	}

	sentiments := []struct {
		label string
		score float64
	}{
		{dataset.SentimentPositive, 0.6},
		{dataset.SentimentNeutral, 0.0},
		{dataset.SentimentNegative, -0.5},
	}

	now := time.Now().UTC().Truncate(time.Hour)

	items := make([]dataset.Item, 0, numPosts)
	maxEngagement := 0.0
	for i := 0; i < numPosts; i++ {
		topic := topics[rng.Intn(len(topics))]
		sentiment := sentiments[rng.Intn(len(sentiments))]
		platform := platforms[rng.Intn(len(platforms))]

		engagement := float64(rng.Intn(5000)) + rng.Float64()*100
		if engagement > maxEngagement {
			maxEngagement = engagement
		}

		age := time.Duration(rng.Intn(daysOfHistory*24)) * time.Hour
		items = append(items, dataset.Item{
			ID:              fmt.Sprintf("mock-%s-%04d", platform, i),
			Platform:        platform,
			Title:           topic.titles[rng.Intn(len(topic.titles))],
			Text:            "Generated development post about " + topic.keywords[0] + ".",
			Author:          authors[rng.Intn(len(authors))],
			CreatedAt:       now.Add(-age),
			EngagementScore: engagement,
			Sentiment:       sentiment.label,
			SentimentScore:  sentiment.score,
			Keywords:        topic.keywords,
			Hashtags:        topic.hashtags,
		})
	}

	// Normalize engagement to [0,100] within the generated batch.
	if maxEngagement > 0 {
		for i := range items {
			items[i].NormalizedEngagement = items[i].EngagementScore / maxEngagement * 100
		}
	}

	inserted, err := db.InsertItems(ctx, items)
	if err != nil {
		return fmt.Errorf("failed to seed mock data: %w", err)
	}

	logging.Info().Int64("inserted", inserted).Msg("Mock data seeded")
	return nil
}
