// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trendscope/trendscope/internal/recommend"
)

type recommendationsParams struct {
	Limit int `validate:"min=1"`
}

// Recommendations returns hybrid recommendations for the stated
// interests. Platforms restrict results when given; no interests falls
// back to the engagement ranking.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := queryInt(rw, r, "limit", h.config.Recommend.TopN)
	if !ok {
		return
	}
	if !validateParams(rw, &recommendationsParams{Limit: limit}) {
		return
	}
	limit = h.clampLimit(limit)

	products, ok := h.products(rw)
	if !ok {
		return
	}

	interests := splitCSV(r.URL.Query().Get("interests"))
	platforms := splitCSV(r.URL.Query().Get("platforms"))

	profile := recommend.CreateProfile(interests, nil)
	profile.PreferredPlatforms = platforms

	recs := products.Recommender.Hybrid(profile, nil, limit)

	rw.SuccessWithMeta(recs, &APIMeta{
		SnapshotVersion: products.Snapshot.Version(),
		Count:           len(recs),
	})
}

// SimilarItems returns the items closest to the given one by TF-IDF
// cosine similarity. An unknown item id yields an empty list, not 404.
func (h *Handler) SimilarItems(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := queryInt(rw, r, "limit", h.config.API.DefaultPageSize)
	if !ok {
		return
	}
	if !validateParams(rw, &recommendationsParams{Limit: limit}) {
		return
	}
	limit = h.clampLimit(limit)

	products, ok := h.products(rw)
	if !ok {
		return
	}

	itemID := chi.URLParam(r, "itemID")
	recs := products.Recommender.SimilarItems(itemID, limit)

	rw.SuccessWithMeta(recs, &APIMeta{
		SnapshotVersion: products.Snapshot.Version(),
		Count:           len(recs),
	})
}

type trendingParams struct {
	WindowDays int `validate:"min=1,max=365"`
	Limit      int `validate:"min=1"`
}

// Trending returns trending keywords and hashtags inside the window.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	windowDays, ok := queryInt(rw, r, "window_days", h.config.Recommend.TimeWindowDays)
	if !ok {
		return
	}
	limit, ok := queryInt(rw, r, "limit", h.config.Recommend.TopN)
	if !ok {
		return
	}
	params := trendingParams{WindowDays: windowDays, Limit: limit}
	if !validateParams(rw, &params) {
		return
	}
	params.Limit = h.clampLimit(params.Limit)

	products, ok := h.products(rw)
	if !ok {
		return
	}

	topics := products.Recommender.TrendingTopics(params.WindowDays, params.Limit)

	rw.SuccessWithMeta(topics, &APIMeta{
		SnapshotVersion: products.Snapshot.Version(),
		Count:           len(topics),
	})
}

// PersonalizedTrending re-ranks trending topics by relevance to the
// stated interests.
func (h *Handler) PersonalizedTrending(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := queryInt(rw, r, "limit", h.config.Recommend.TopN)
	if !ok {
		return
	}
	if !validateParams(rw, &recommendationsParams{Limit: limit}) {
		return
	}
	limit = h.clampLimit(limit)

	products, ok := h.products(rw)
	if !ok {
		return
	}

	interests := splitCSV(r.URL.Query().Get("interests"))
	profile := recommend.CreateProfile(interests, nil)

	topics := products.Recommender.PersonalizedTrends(profile, limit)

	rw.SuccessWithMeta(topics, &APIMeta{
		SnapshotVersion: products.Snapshot.Version(),
		Count:           len(topics),
	})
}

type searchParams struct {
	Query string `validate:"required"`
	Limit int    `validate:"min=1"`
}

// Search runs a TF-IDF cosine similarity search over titles, bodies and
// terms.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := queryInt(rw, r, "limit", h.config.API.DefaultPageSize)
	if !ok {
		return
	}
	params := searchParams{
		Query: r.URL.Query().Get("q"),
		Limit: limit,
	}
	if !validateParams(rw, &params) {
		return
	}
	params.Limit = h.clampLimit(params.Limit)

	products, ok := h.products(rw)
	if !ok {
		return
	}

	results := products.Recommender.Search(params.Query, params.Limit)

	rw.SuccessWithMeta(results, &APIMeta{
		SnapshotVersion: products.Snapshot.Version(),
		Count:           len(results),
	})
}
