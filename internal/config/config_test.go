// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() error = %v", err)
	}

	if cfg.Mining.MinSupport != 0.02 {
		t.Errorf("mining.min_support = %g, want 0.02", cfg.Mining.MinSupport)
	}
	if cfg.Mining.MinConfidence != 0.3 {
		t.Errorf("mining.min_confidence = %g, want 0.3", cfg.Mining.MinConfidence)
	}
	if cfg.Mining.MaxK != 3 {
		t.Errorf("mining.max_k = %d, want 3", cfg.Mining.MaxK)
	}
	if cfg.Mining.MaxGapDays != 7 {
		t.Errorf("mining.max_gap_days = %d, want 7", cfg.Mining.MaxGapDays)
	}
	if cfg.Recommend.TopN != 20 {
		t.Errorf("recommend.top_n = %d, want 20", cfg.Recommend.TopN)
	}
	if cfg.Snapshot.RefreshInterval != time.Hour {
		t.Errorf("snapshot.refresh_interval = %s, want 1h", cfg.Snapshot.RefreshInterval)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{"empty database path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"zero min_support", func(c *Config) { c.Mining.MinSupport = 0 }, "mining.min_support"},
		{"min_support above one", func(c *Config) { c.Mining.MinSupport = 1.5 }, "mining.min_support"},
		{"negative min_confidence", func(c *Config) { c.Mining.MinConfidence = -0.1 }, "mining.min_confidence"},
		{"max_k below two", func(c *Config) { c.Mining.MaxK = 1 }, "mining.max_k"},
		{"zero max_gap_days", func(c *Config) { c.Mining.MaxGapDays = 0 }, "mining.max_gap_days"},
		{"zero top_n", func(c *Config) { c.Recommend.TopN = 0 }, "recommend.top_n"},
		{"zero max_features", func(c *Config) { c.Recommend.MaxFeatures = 0 }, "recommend.max_features"},
		{"zero rebuild timeout", func(c *Config) { c.Snapshot.RebuildTimeout = 0 }, "snapshot.rebuild_timeout"},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"max page below default", func(c *Config) { c.API.MaxPageSize = 5 }, "api.max_page_size"},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("Validate() error = %q, want mention of %q", err, tt.wantKey)
			}
		})
	}
}

func TestConfig_Validate_RateLimitDisabledSkipsChecks(t *testing.T) {
	cfg := defaultConfig()
	cfg.API.RateLimitDisabled = true
	cfg.API.RateLimitReqs = 0
	cfg.API.RateLimitWindow = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v with rate limiting disabled, want nil", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DUCKDB_PATH", ":memory:")
	t.Setenv("HTTP_PORT", "9191")
	t.Setenv("MINING_MIN_SUPPORT", "0.05")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != ":memory:" {
		t.Errorf("database.path = %q, want :memory:", cfg.Database.Path)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("server.port = %d, want 9191", cfg.Server.Port)
	}
	if cfg.Mining.MinSupport != 0.05 {
		t.Errorf("mining.min_support = %g, want 0.05", cfg.Mining.MinSupport)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.API.CORSOrigins) != 2 || cfg.API.CORSOrigins[0] != "https://a.example" {
		t.Errorf("api.cors_origins = %v, want parsed comma-separated list", cfg.API.CORSOrigins)
	}
}

func TestLoad_InvalidEnvRejected(t *testing.T) {
	t.Setenv("MINING_MAX_K", "1")

	if _, err := Load(); err == nil {
		t.Error("Load() with mining.max_k=1 returned nil error")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := []byte("server:\n  port: 9999\nmining:\n  min_support: 0.1\n")
	if err := os.WriteFile(path, yaml, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999 from config file", cfg.Server.Port)
	}
	if cfg.Mining.MinSupport != 0.1 {
		t.Errorf("mining.min_support = %g, want 0.1 from config file", cfg.Mining.MinSupport)
	}
	// Untouched keys keep their defaults.
	if cfg.Recommend.TopN != 20 {
		t.Errorf("recommend.top_n = %d, want default 20", cfg.Recommend.TopN)
	}
}

func TestEnvTransformFunc_UnknownKeysSkipped(t *testing.T) {
	if got := envTransformFunc("PATH"); got != "" {
		t.Errorf("envTransformFunc(PATH) = %q, want skipped", got)
	}
	if got := envTransformFunc("DUCKDB_PATH"); got != "database.path" {
		t.Errorf("envTransformFunc(DUCKDB_PATH) = %q, want database.path", got)
	}
}
