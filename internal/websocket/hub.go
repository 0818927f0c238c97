// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package websocket

import (
	"context"
	"sort"
	"sync"

	"github.com/trendscope/trendscope/internal/logging"
	"github.com/trendscope/trendscope/internal/metrics"
)

// Message types pushed to dashboard clients.
const (
	MessageTypePing            = "ping"
	MessageTypePong            = "pong"
	MessageTypeSnapshotRebuilt = "snapshot_rebuilt"
	MessageTypeStatsUpdate     = "stats_update"
)

// Message is one WebSocket frame payload.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// SnapshotRebuiltData announces a completed snapshot rebuild.
type SnapshotRebuiltData struct {
	Version    int64 `json:"version"`
	Items      int   `json:"items"`
	DurationMs int64 `json:"duration_ms"`
}

// StatsUpdateData carries refreshed dataset totals.
type StatsUpdateData struct {
	TotalItems    int              `json:"total_items"`
	PlatformItems map[string]int64 `json:"platform_items,omitempty"`
}

// Hub maintains the set of active clients and broadcasts messages to
// them. Lifecycle events take priority over broadcasts so client state
// is consistent before messages are delivered.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a hub. Call Run (via the supervisor) before serving
// WebSocket upgrades.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan Message, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run processes client lifecycle events and broadcasts until the
// context is canceled, then closes every client and returns ctx.Err().
// Designed for suture supervision.
func (h *Hub) Run(ctx context.Context) error {
	for {
		// Shutdown wins over pending work.
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		// Lifecycle events win over broadcasts.
		select {
		case client := <-h.Register:
			h.addClient(client)
			continue
		case client := <-h.Unregister:
			h.removeClient(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.addClient(client)
		case client := <-h.Unregister:
			h.removeClient(client)
		case message := <-h.broadcast:
			h.broadcastToClients(message)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()
	metrics.WebSocketClients.Set(float64(total))
	logging.Debug().Int("total_clients", total).Msg("websocket client connected")
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mu.Unlock()
	metrics.WebSocketClients.Set(float64(total))
	logging.Debug().Int("total_clients", total).Msg("websocket client disconnected")
}

// broadcastToClients delivers a message to every client in ID order.
// Clients whose send buffer is full are dropped; a stalled consumer
// must not block the hub.
func (h *Hub) broadcastToClients(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].id < clients[j].id })

	for _, client := range clients {
		select {
		case client.send <- message:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
	metrics.WebSocketClients.Set(float64(len(h.clients)))
}

func (h *Hub) shutdown(ctx context.Context) {
	h.mu.Lock()
	closed := len(h.clients)
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.mu.Unlock()

	metrics.WebSocketClients.Set(0)
	logging.Info().
		Str("component", "websocket-hub").
		Int("clients_closed", closed).
		AnErr("reason", ctx.Err()).
		Msg("websocket hub stopped")
}

// BroadcastJSON queues a typed message for all clients. Messages are
// dropped when the broadcast buffer is full.
func (h *Hub) BroadcastJSON(messageType string, data any) {
	select {
	case h.broadcast <- Message{Type: messageType, Data: data}:
	default:
		logging.Warn().Str("type", messageType).Msg("websocket broadcast buffer full, dropping message")
	}
}

// BroadcastSnapshotRebuilt announces a snapshot rebuild to all clients.
func (h *Hub) BroadcastSnapshotRebuilt(version int64, items int, durationMs int64) {
	h.BroadcastJSON(MessageTypeSnapshotRebuilt, SnapshotRebuiltData{
		Version:    version,
		Items:      items,
		DurationMs: durationMs,
	})
}

// BroadcastStatsUpdate pushes refreshed dataset totals to all clients.
func (h *Hub) BroadcastStatsUpdate(totalItems int, platformItems map[string]int64) {
	h.BroadcastJSON(MessageTypeStatsUpdate, StatsUpdateData{
		TotalItems:    totalItems,
		PlatformItems: platformItems,
	})
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
