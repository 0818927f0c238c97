// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package api

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"

	"github.com/trendscope/trendscope/internal/logging"
	"github.com/trendscope/trendscope/internal/websocket"
)

// WebSocket upgrades the connection and registers the client with the
// hub. Origins are checked against the configured CORS origins; an
// empty origin list admits same-host requests only, which gorilla's
// default CheckOrigin already enforces.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := gorilla.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if len(h.config.API.CORSOrigins) > 0 {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, allowed := range h.config.API.CORSOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		logging.Ctx(r.Context()).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(h.hub, conn)
	h.hub.Register <- client
	client.Start()

	logging.Ctx(r.Context()).Debug().
		Uint64("client_id", client.ID()).
		Str("remote_addr", r.RemoteAddr).
		Msg("websocket client connected")
}
