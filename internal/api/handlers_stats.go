// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package api

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/trendscope/trendscope/internal/dataset"
	"github.com/trendscope/trendscope/internal/snapshot"
)

// StatsResponse summarizes the current dataset snapshot.
type StatsResponse struct {
	TotalItems      int            `json:"total_items"`
	PlatformCounts  map[string]int `json:"platform_counts"`
	RisingCount     int            `json:"rising_count"`
	AvgEngagement   float64        `json:"avg_engagement"`
	SnapshotVersion int64          `json:"snapshot_version"`
	RebuiltAt       time.Time      `json:"rebuilt_at"`
}

// Stats returns dataset totals computed from the current snapshot.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	products, ok := h.products(rw)
	if !ok {
		return
	}

	items := products.Snapshot.Items()
	stats := StatsResponse{
		TotalItems:      len(items),
		PlatformCounts:  make(map[string]int),
		SnapshotVersion: products.Snapshot.Version(),
		RebuiltAt:       products.RebuiltAt,
	}

	var totalEngagement float64
	for i := range items {
		stats.PlatformCounts[items[i].Platform]++
		totalEngagement += items[i].EngagementScore
		if items[i].TrendStatus() == dataset.TrendRising {
			stats.RisingCount++
		}
	}
	if len(items) > 0 {
		stats.AvgEngagement = totalEngagement / float64(len(items))
	}

	rw.Success(stats)
}

// TrendItem is one dashboard row: the item plus its derived trend
// classification.
type TrendItem struct {
	dataset.Item
	TrendStatus dataset.TrendStatus `json:"trend_status"`
}

type trendsParams struct {
	Platform  string `validate:"omitempty,oneof=reddit youtube bluesky"`
	Sentiment string `validate:"omitempty,oneof=positive neutral negative"`
	Limit     int    `validate:"min=1"`
}

// Trends returns the top items by normalized engagement, optionally
// filtered by platform and sentiment.
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := queryInt(rw, r, "limit", h.config.API.DefaultPageSize)
	if !ok {
		return
	}
	params := trendsParams{
		Platform:  r.URL.Query().Get("platform"),
		Sentiment: r.URL.Query().Get("sentiment"),
		Limit:     limit,
	}
	if !validateParams(rw, &params) {
		return
	}
	params.Limit = h.clampLimit(params.Limit)

	products, ok := h.products(rw)
	if !ok {
		return
	}

	items := products.Snapshot.Items()
	trends := make([]TrendItem, 0, len(items))
	for i := range items {
		it := items[i]
		if params.Platform != "" && it.Platform != params.Platform {
			continue
		}
		if params.Sentiment != "" && it.Sentiment != params.Sentiment {
			continue
		}
		trends = append(trends, TrendItem{Item: it, TrendStatus: it.TrendStatus()})
	}

	sort.SliceStable(trends, func(i, j int) bool {
		if trends[i].NormalizedEngagement != trends[j].NormalizedEngagement {
			return trends[i].NormalizedEngagement > trends[j].NormalizedEngagement
		}
		return trends[i].ID < trends[j].ID
	})
	if len(trends) > params.Limit {
		trends = trends[:params.Limit]
	}

	rw.SuccessWithMeta(trends, &APIMeta{
		SnapshotVersion: products.Snapshot.Version(),
		Count:           len(trends),
	})
}

// Reload triggers a synchronous snapshot rebuild. A rebuild already in
// flight yields 202 so clients can poll instead of piling on.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	products, err := h.snapshots.Rebuild(r.Context())
	if err != nil {
		if errors.Is(err, snapshot.ErrRebuildInProgress) {
			rw.Accepted(map[string]interface{}{
				"status": "rebuild_in_progress",
			})
			return
		}
		rw.ErrorWithDetails(http.StatusInternalServerError, ErrCodeInternalError,
			"Snapshot rebuild failed", map[string]any{"reason": err.Error()})
		return
	}

	rw.Success(map[string]interface{}{
		"status":           "rebuilt",
		"snapshot_version": products.Snapshot.Version(),
		"items":            products.Snapshot.Len(),
		"duration_ms":      products.Duration.Milliseconds(),
	})
}
