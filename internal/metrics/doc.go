// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint

Snapshot Metrics:
  - snapshot_rebuild_duration_seconds: Full rebuild duration including mining (histogram)
  - snapshot_rebuilds_total: Rebuild count by outcome (counter)
    Labels: outcome (success, error, skipped)
  - snapshot_items: Items in the current snapshot (gauge)
  - snapshot_version: Current snapshot version (gauge)

Mining Metrics:
  - mining_patterns: Patterns produced by the latest rebuild (gauge)
    Labels: kind (itemsets, rules, fpgrowth, sequential)

Recommendation Metrics:
  - recommend_cache_hits_total: Recommendation cache hits (counter)
  - recommend_cache_misses_total: Recommendation cache misses (counter)

WebSocket Metrics:
  - websocket_clients: Connected dashboard clients (gauge)

All metrics register with the default Prometheus registry at package
initialization via promauto; recording helpers are safe for concurrent use.
*/
package metrics
