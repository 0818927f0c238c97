// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

// Package supervisor builds the suture v4 supervision tree that runs
// Trendscope's long-lived components: the snapshot rebuild loop, the
// WebSocket hub and the HTTP server. Supervisor events are logged
// through the zerolog-backed slog bridge in internal/logging.
package supervisor
