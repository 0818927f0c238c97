// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

// Package dataset defines the unified social-media item schema and the
// immutable snapshot abstraction shared by the mining and recommendation
// layers.
//
// A Snapshot is constructed once per data-load cycle from the full result
// set of the dataset store. Engagement normalization is relative to that
// result set, so derived fields (normalized engagement, trend status) are
// only meaningful within a single snapshot. Snapshots are never mutated
// after construction; a reload builds a new Snapshot and the owner swaps
// a pointer.
package dataset
