// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

// Package mining implements frequent-pattern mining over the unified
// dataset: transaction building, level-wise Apriori, association-rule
// generation, a simplified FP-Growth variant, per-author sequential
// pattern mining and per-keyword trend lifecycle analysis.
//
// # Itemset Keys
//
// Itemsets are unordered token sets. For well-defined map equality they
// are keyed by their canonically sorted token slice joined with a
// non-printing separator; see Key.
//
// # Cancellation
//
// Itemset search is the only operation in the service whose cost grows
// superlinearly with vocabulary size, so the miners take a context and
// check it cooperatively inside their counting loops. All other
// operations run to completion.
//
// # Degenerate Inputs
//
// Every miner returns empty results for empty input rather than erroring;
// support and mean calculations guard their divisors. This keeps the API
// layer free of special cases for freshly deployed or sparse datasets.
package mining
