// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

// Package websocket pushes live updates to dashboard clients: snapshot
// rebuild announcements and dataset stats refreshes. The hub runs as a
// supervised service; broadcasts are fire-and-forget and never block
// the sender.
package websocket
