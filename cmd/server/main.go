// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

// Package main is the entry point for the Trendscope server.
//
// Trendscope is a self-hosted social media trend analytics platform. It
// unifies posts collected from Reddit, YouTube and Bluesky, mines
// cross-platform patterns (frequent itemsets, association rules,
// sequential patterns) and serves recommendations and trending topics
// over a REST API with live WebSocket updates.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered loading (defaults, YAML file, env)
//  2. Database: embedded DuckDB holding the unified posts table
//  3. Dataset bootstrap: optional CSV import or mock seed on first run
//  4. Snapshot engine: loads items and publishes derived analytics
//  5. WebSocket hub: pushes rebuild and stats events to dashboards
//  6. HTTP server: REST API with Chi routing and Prometheus metrics
//
// Components 4-6 run as supervised services under a suture v4 tree.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, config.yaml, built-in
// defaults. Common settings:
//
//	DUCKDB_PATH=/data/trendscope.duckdb   # ":memory:" for ephemeral runs
//	DATASET_CSV_PATH=/data/posts.csv      # imported when the table is empty
//	SEED_MOCK_DATA=true                   # development dataset instead
//	SERVER_PORT=8080
//	LOG_LEVEL=info
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: the HTTP
// server drains in-flight requests, the hub closes WebSocket clients
// and the database checkpoints before closing.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trendscope/trendscope/internal/api"
	"github.com/trendscope/trendscope/internal/config"
	"github.com/trendscope/trendscope/internal/database"
	"github.com/trendscope/trendscope/internal/logging"
	"github.com/trendscope/trendscope/internal/snapshot"
	"github.com/trendscope/trendscope/internal/supervisor"
	"github.com/trendscope/trendscope/internal/supervisor/services"
	ws "github.com/trendscope/trendscope/internal/websocket"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Trendscope")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if err := bootstrapDataset(context.Background(), db, cfg); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error().Err(closeErr).Msg("Error closing database")
		}
		logging.Fatal().Err(err).Msg("Failed to bootstrap dataset")
	}

	// Context for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	wsHub := ws.NewHub()

	snapshots := snapshot.NewEngine(db, cfg)
	snapshots.OnRebuilt(func(p *snapshot.Products) {
		wsHub.BroadcastSnapshotRebuilt(
			p.Snapshot.Version(),
			p.Snapshot.Len(),
			p.Duration.Milliseconds(),
		)

		counts := make(map[string]int64)
		for _, it := range p.Snapshot.Items() {
			counts[it.Platform]++
		}
		wsHub.BroadcastStatsUpdate(p.Snapshot.Len(), counts)
	})

	router := api.NewRouter(cfg, db, snapshots, wsHub)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddDataService(services.NewSnapshotService(snapshots, services.SnapshotServiceConfig{
		RebuildOnStartup: cfg.Snapshot.RebuildOnStartup,
		RefreshInterval:  cfg.Snapshot.RefreshInterval,
	}, logging.Logger()))
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("Services added to supervisor tree")

	// Signal handling.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// bootstrapDataset fills an empty posts table from the configured CSV
// file, or with mock data when seeding is enabled. A table that already
// holds rows is left untouched so restarts never duplicate work.
func bootstrapDataset(ctx context.Context, db *database.DB, cfg *config.Config) error {
	count, err := db.CountItems(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logging.Info().Int64("items", count).Msg("Dataset already populated")
		return nil
	}

	if cfg.Database.CSVPath != "" {
		inserted, err := db.ImportCSV(ctx, cfg.Database.CSVPath)
		if err != nil {
			return err
		}
		logging.Info().
			Str("path", cfg.Database.CSVPath).
			Int64("inserted", inserted).
			Msg("Dataset imported from CSV")
		return nil
	}

	if cfg.Database.SeedMockData {
		logging.Info().Msg("Mock data seeding enabled (SEED_MOCK_DATA=true)")
		return db.SeedMockData(ctx)
	}

	logging.Warn().Msg("Dataset is empty and no CSV or mock seed configured")
	return nil
}
