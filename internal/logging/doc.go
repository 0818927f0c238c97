// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

// Package logging provides zerolog-based structured logging for
// Trendscope. It maintains a single global logger configured once at
// startup via Init, from which components derive child loggers with
// WithComponent. JSON output is the default; console output is meant
// for development.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logger := logging.WithComponent("snapshot")
//	logger.Info().Int("items", n).Msg("snapshot rebuilt")
//
// The slog adapter bridges zerolog to libraries that require an
// *slog.Logger, such as the suture supervisor's log handler.
package logging
