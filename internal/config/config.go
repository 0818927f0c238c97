// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Mining    MiningConfig    `koanf:"mining"`
	Recommend RecommendConfig `koanf:"recommend"`
	Snapshot  SnapshotConfig  `koanf:"snapshot"`
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatabaseConfig holds DuckDB settings.
//
// Environment Variables:
//   - DUCKDB_PATH: Database file path, ":memory:" for in-memory (default: /data/trendscope.duckdb)
//   - DUCKDB_MAX_MEMORY: Memory limit (default: 2GB)
//   - DATASET_CSV_PATH: Optional CSV to import on startup when the posts table is empty
//   - SEED_MOCK_DATA: Seed a small development dataset when the posts table is empty
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"` // 0 = runtime.NumCPU()
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"`
	CSVPath                string `koanf:"csv_path"`
	SeedMockData           bool   `koanf:"seed_mock_data"`
}

// MiningConfig holds pattern mining thresholds.
type MiningConfig struct {
	MinSupport    float64 `koanf:"min_support"`
	MinConfidence float64 `koanf:"min_confidence"`
	MaxK          int     `koanf:"max_k"`
	MaxGapDays    int     `koanf:"max_gap_days"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	TopN             int           `koanf:"top_n"`
	TimeWindowDays   int           `koanf:"time_window_days"`
	MaxFeatures      int           `koanf:"max_features"`
	MinTrendMentions int           `koanf:"min_trend_mentions"`
	CacheSize        int           `koanf:"cache_size"`
	CacheTTL         time.Duration `koanf:"cache_ttl"`
}

// SnapshotConfig holds dataset snapshot rebuild settings.
type SnapshotConfig struct {
	// RefreshInterval is how often the snapshot service rebuilds. Zero
	// disables periodic rebuilds; reloads can still be triggered via the
	// API.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// RebuildTimeout bounds a single rebuild including mining.
	RebuildTimeout time.Duration `koanf:"rebuild_timeout"`

	// RebuildOnStartup triggers an initial rebuild before the HTTP
	// server starts accepting traffic.
	RebuildOnStartup bool `koanf:"rebuild_on_startup"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// APIConfig holds API behavior settings.
type APIConfig struct {
	DefaultPageSize   int           `koanf:"default_page_size"`
	MaxPageSize       int           `koanf:"max_page_size"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration and returns an error naming the
// offending key for the first violation found.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}

	if c.Mining.MinSupport <= 0 || c.Mining.MinSupport > 1 {
		return fmt.Errorf("mining.min_support must be in (0, 1], got %g", c.Mining.MinSupport)
	}
	if c.Mining.MinConfidence < 0 || c.Mining.MinConfidence > 1 {
		return fmt.Errorf("mining.min_confidence must be in [0, 1], got %g", c.Mining.MinConfidence)
	}
	if c.Mining.MaxK < 2 {
		return fmt.Errorf("mining.max_k must be at least 2, got %d", c.Mining.MaxK)
	}
	if c.Mining.MaxGapDays <= 0 {
		return fmt.Errorf("mining.max_gap_days must be positive, got %d", c.Mining.MaxGapDays)
	}

	if c.Recommend.TopN <= 0 {
		return fmt.Errorf("recommend.top_n must be positive, got %d", c.Recommend.TopN)
	}
	if c.Recommend.TimeWindowDays <= 0 {
		return fmt.Errorf("recommend.time_window_days must be positive, got %d", c.Recommend.TimeWindowDays)
	}
	if c.Recommend.MaxFeatures <= 0 {
		return fmt.Errorf("recommend.max_features must be positive, got %d", c.Recommend.MaxFeatures)
	}
	if c.Recommend.MinTrendMentions < 1 {
		return fmt.Errorf("recommend.min_trend_mentions must be at least 1, got %d", c.Recommend.MinTrendMentions)
	}
	if c.Recommend.CacheSize < 0 {
		return fmt.Errorf("recommend.cache_size must not be negative, got %d", c.Recommend.CacheSize)
	}

	if c.Snapshot.RefreshInterval < 0 {
		return fmt.Errorf("snapshot.refresh_interval must not be negative, got %s", c.Snapshot.RefreshInterval)
	}
	if c.Snapshot.RebuildTimeout <= 0 {
		return fmt.Errorf("snapshot.rebuild_timeout must be positive, got %s", c.Snapshot.RebuildTimeout)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}

	if c.API.DefaultPageSize <= 0 {
		return fmt.Errorf("api.default_page_size must be positive, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size must be at least api.default_page_size, got %d < %d",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitReqs <= 0 {
			return fmt.Errorf("api.rate_limit_reqs must be positive, got %d", c.API.RateLimitReqs)
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("api.rate_limit_window must be positive, got %s", c.API.RateLimitWindow)
		}
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}

// Addr returns the host:port address the HTTP server binds to.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
