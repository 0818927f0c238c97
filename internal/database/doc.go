// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

// Package database provides DuckDB-backed persistence for the unified
// social-media dataset. It owns the posts table schema, CSV import and
// the item load path used by snapshot rebuilds.
//
// DuckDB runs embedded, so the database is a single file (or in-memory
// for tests). Writes happen rarely, at import time; the read path is a
// full table scan feeding the in-memory snapshot, which is where all
// query traffic goes.
package database
