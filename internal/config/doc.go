// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

// Package config provides centralized configuration loading for all
// application components. Settings come from built-in defaults, an
// optional YAML file and environment variables, in that order of
// precedence, and are validated once at load time.
package config
