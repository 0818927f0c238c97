// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

// Package recommend implements content-based, collaborative and hybrid
// recommendation over the unified social-media dataset, plus trending
// topic extraction and interest-based personalization.
//
// The engine is built around an explicit two-phase contract: construct
// it, call BuildIndex with the current dataset, then query. Querying an
// engine whose index has not been built returns empty results rather
// than triggering an implicit build, so callers always know which
// dataset version answers are computed against.
//
// The package has no dependencies on other internal packages except
// dataset. The snapshot engine owns the rebuild lifecycle and hands out
// fully built engines to the API layer.
package recommend
