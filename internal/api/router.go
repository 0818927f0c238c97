// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

// Package api provides HTTP routing using the Chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trendscope/trendscope/internal/config"
	"github.com/trendscope/trendscope/internal/database"
	"github.com/trendscope/trendscope/internal/snapshot"
	"github.com/trendscope/trendscope/internal/websocket"
)

// Router wires handlers and middleware into the HTTP surface.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates the router with its full dependency set.
func NewRouter(cfg *config.Config, db *database.DB, snapshots *snapshot.Engine, hub *websocket.Hub) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.API.CORSOrigins
	mwConfig.RateLimitRequests = cfg.API.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.API.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.API.RateLimitDisabled

	return &Router{
		handler:       NewHandler(cfg, db, snapshots, hub),
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// Handler returns the underlying handler set, used by tests.
func (router *Router) Handler() *Handler {
	return router.handler
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health endpoints skip rate limiting so monitoring stays cheap.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Prometheus scrape endpoint.
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Data endpoints read from the published snapshot.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(PrometheusMetrics())

		r.Get("/stats", router.handler.Stats)
		r.Get("/trends", router.handler.Trends)
		r.Post("/reload", router.handler.Reload)

		r.Get("/recommendations", router.handler.Recommendations)
		r.Get("/recommendations/similar/{itemID}", router.handler.SimilarItems)

		r.Get("/trending", router.handler.Trending)
		r.Get("/trending/personalized", router.handler.PersonalizedTrending)

		r.Route("/patterns", func(r chi.Router) {
			r.Get("/itemsets", router.handler.PatternsItemsets)
			r.Get("/rules", router.handler.PatternsRules)
			r.Get("/sequential", router.handler.PatternsSequential)
			r.Get("/network", router.handler.PatternsNetwork)
		})

		r.Get("/lifecycle", router.handler.Lifecycle)
		r.Get("/search", router.handler.Search)

		r.Get("/ws", router.handler.WebSocket)
	})

	// Unknown routes still answer with the structured envelope.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, req, http.StatusNotFound, ErrCodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		WriteError(w, req, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	return r
}
