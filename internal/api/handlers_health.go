// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the payload returned by the health endpoint.
type HealthStatus struct {
	Status            string     `json:"status"`
	Version           string     `json:"version"`
	DatabaseConnected bool       `json:"database_connected"`
	SnapshotReady     bool       `json:"snapshot_ready"`
	SnapshotVersion   int64      `json:"snapshot_version"`
	SnapshotRebuiltAt *time.Time `json:"snapshot_rebuilt_at,omitempty"`
	UptimeSeconds     float64    `json:"uptime_seconds"`
}

// Version is the application version reported by health checks.
const Version = "1.0.0"

// Health reports overall service health: database connectivity plus
// snapshot readiness. A missing snapshot degrades but does not fail the
// check, since the service still accepts reload requests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	health := HealthStatus{
		Status:            status,
		Version:           Version,
		DatabaseConnected: dbConnected,
		UptimeSeconds:     time.Since(h.startTime).Seconds(),
	}

	if products, ok := h.snapshots.Current(); ok {
		health.SnapshotReady = true
		health.SnapshotVersion = h.snapshots.Version()
		rebuiltAt := products.RebuiltAt
		health.SnapshotRebuiltAt = &rebuiltAt
	} else if status == "healthy" {
		health.Status = "degraded"
	}

	rw.Success(health)
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]interface{}{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Ready means the database answers and the first snapshot rebuild has
// completed, so every data endpoint can serve.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil
	_, snapshotReady := h.snapshots.Current()

	if !dbConnected || !snapshotReady {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Service is not ready", map[string]any{
				"database_connected": dbConnected,
				"snapshot_ready":     snapshotReady,
			})
		return
	}

	rw.Success(map[string]interface{}{
		"ready":            true,
		"snapshot_version": h.snapshots.Version(),
	})
}
