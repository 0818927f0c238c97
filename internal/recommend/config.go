// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package recommend

import (
	"fmt"
	"time"
)

// Config contains configuration for the recommendation engine.
type Config struct {
	// TopN is the default number of results per operation.
	TopN int `json:"top_n" yaml:"top_n"`

	// TimeWindowDays is the trending window, measured back from the
	// newest item in the dataset rather than from wall-clock time so
	// static datasets keep producing results.
	TimeWindowDays int `json:"time_window_days" yaml:"time_window_days"`

	// MaxFeatures caps the TF-IDF vocabulary size.
	MaxFeatures int `json:"max_features" yaml:"max_features"`

	// MinTrendMentions is the minimum number of mentions inside the
	// window before a term qualifies as trending.
	MinTrendMentions int `json:"min_trend_mentions" yaml:"min_trend_mentions"`

	// CacheSize is the response cache capacity in entries. Zero disables
	// response caching.
	CacheSize int `json:"cache_size" yaml:"cache_size"`

	// CacheTTL is how long cached responses stay valid.
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}

// DefaultConfig returns the default recommendation configuration.
func DefaultConfig() *Config {
	return &Config{
		TopN:             20,
		TimeWindowDays:   7,
		MaxFeatures:      1000,
		MinTrendMentions: 3,
		CacheSize:        512,
		CacheTTL:         5 * time.Minute,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.TimeWindowDays <= 0 {
		return fmt.Errorf("time_window_days must be positive, got %d", c.TimeWindowDays)
	}
	if c.MaxFeatures <= 0 {
		return fmt.Errorf("max_features must be positive, got %d", c.MaxFeatures)
	}
	if c.MinTrendMentions < 1 {
		return fmt.Errorf("min_trend_mentions must be at least 1, got %d", c.MinTrendMentions)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	if c.CacheSize > 0 && c.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive when caching is enabled, got %s", c.CacheTTL)
	}
	return nil
}
