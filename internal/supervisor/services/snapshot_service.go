// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/trendscope/trendscope/internal/snapshot"
)

// Rebuilder matches the snapshot engine's rebuild entry point.
type Rebuilder interface {
	Rebuild(ctx context.Context) (*snapshot.Products, error)
}

// SnapshotServiceConfig holds configuration for the snapshot service.
type SnapshotServiceConfig struct {
	// RebuildOnStartup triggers a rebuild when the service starts.
	RebuildOnStartup bool

	// RefreshInterval is how often to rebuild. Zero or negative disables
	// periodic rebuilds; the service then only handles the startup
	// rebuild and stays alive for supervision symmetry.
	RefreshInterval time.Duration
}

// SnapshotService drives the snapshot engine's rebuild lifecycle under
// suture supervision: an optional startup rebuild plus a periodic
// refresh loop. API-triggered reloads run through the same engine, so a
// tick landing mid-reload is skipped rather than queued.
type SnapshotService struct {
	engine Rebuilder
	config SnapshotServiceConfig
	logger zerolog.Logger
	name   string
}

// NewSnapshotService creates a new snapshot service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSnapshotService(engine Rebuilder, cfg SnapshotServiceConfig, logger zerolog.Logger) *SnapshotService {
	return &SnapshotService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "snapshot").Logger(),
		name:   "snapshot-service",
	}
}

// Serve implements the suture.Service interface.
func (s *SnapshotService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("rebuild_on_startup", s.config.RebuildOnStartup).
		Dur("refresh_interval", s.config.RefreshInterval).
		Msg("snapshot service starting")

	if s.config.RebuildOnStartup {
		if err := s.rebuild(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("startup rebuild failed (will retry on schedule)")
		}
	}

	if s.config.RefreshInterval <= 0 {
		s.logger.Info().Msg("periodic rebuilds disabled, waiting for shutdown")
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("snapshot service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.rebuild(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled rebuild failed")
			}
		}
	}
}

// rebuild runs one rebuild cycle. A rebuild already in flight is not an
// error; the next tick will catch up.
func (s *SnapshotService) rebuild(ctx context.Context) error {
	products, err := s.engine.Rebuild(ctx)
	if err != nil {
		if errors.Is(err, snapshot.ErrRebuildInProgress) {
			s.logger.Debug().Msg("rebuild already in progress, skipping tick")
			return nil
		}
		return err
	}

	s.logger.Debug().
		Int("items", products.Snapshot.Len()).
		Dur("duration", products.Duration).
		Msg("scheduled rebuild complete")
	return nil
}

// String returns the service name for logging.
func (s *SnapshotService) String() string {
	return s.name
}
