// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/trendscope/trendscope/internal/config"
	"github.com/trendscope/trendscope/internal/database"
	"github.com/trendscope/trendscope/internal/snapshot"
	"github.com/trendscope/trendscope/internal/validation"
	"github.com/trendscope/trendscope/internal/websocket"
)

// Handler holds the dependencies shared by all HTTP handlers. Data
// endpoints read from the snapshot engine's current products; nothing
// queries the database on the request path except health checks.
type Handler struct {
	config    *config.Config
	db        *database.DB
	snapshots *snapshot.Engine
	hub       *websocket.Hub
	startTime time.Time
}

// NewHandler creates the handler set.
func NewHandler(cfg *config.Config, db *database.DB, snapshots *snapshot.Engine, hub *websocket.Hub) *Handler {
	return &Handler{
		config:    cfg,
		db:        db,
		snapshots: snapshots,
		hub:       hub,
		startTime: time.Now(),
	}
}

// products fetches the current snapshot products, writing the 503
// SNAPSHOT_NOT_READY envelope when no rebuild has completed yet.
func (h *Handler) products(rw *ResponseWriter) (*snapshot.Products, bool) {
	products, ok := h.snapshots.Current()
	if !ok {
		rw.SnapshotNotReady()
		return nil, false
	}
	return products, true
}

// queryInt parses an optional integer query parameter, returning the
// default when absent. A non-integer value reports ok=false after
// writing the 400 response.
func queryInt(rw *ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		rw.ValidationError(name+" must be an integer", map[string]any{
			"field": name,
			"value": raw,
		})
		return 0, false
	}
	return v, true
}

// queryFloat parses an optional float query parameter with a default.
func queryFloat(rw *ResponseWriter, r *http.Request, name string, def float64) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		rw.ValidationError(name+" must be a number", map[string]any{
			"field": name,
			"value": raw,
		})
		return 0, false
	}
	return v, true
}

// splitCSV splits a comma-separated query value into trimmed non-empty
// parts.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateParams runs struct validation and writes the 400 envelope on
// failure.
func validateParams(rw *ResponseWriter, params any) bool {
	verr := validation.ValidateStruct(params)
	if verr == nil {
		return true
	}
	apiErr := verr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
	return false
}

// clampLimit caps a list size at the configured page-size ceiling.
func (h *Handler) clampLimit(limit int) int {
	if max := h.config.API.MaxPageSize; limit > max {
		return max
	}
	return limit
}
