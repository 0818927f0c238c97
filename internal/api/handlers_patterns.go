// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package api

import (
	"net/http"

	"github.com/trendscope/trendscope/internal/mining"
)

type itemsetsParams struct {
	MinSize int `validate:"min=1"`
	Limit   int `validate:"min=1"`
}

// PatternsItemsets returns frequent itemsets mined by Apriori, largest
// support first, optionally filtered by minimum itemset size.
func (h *Handler) PatternsItemsets(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	minSize, ok := queryInt(rw, r, "min_size", 1)
	if !ok {
		return
	}
	limit, ok := queryInt(rw, r, "limit", h.config.API.DefaultPageSize)
	if !ok {
		return
	}
	params := itemsetsParams{MinSize: minSize, Limit: limit}
	if !validateParams(rw, &params) {
		return
	}
	params.Limit = h.clampLimit(params.Limit)

	products, ok := h.products(rw)
	if !ok {
		return
	}

	itemsets := make([]mining.Itemset, 0, len(products.Itemsets))
	for _, is := range products.Itemsets.Sorted() {
		if len(is.Tokens) >= params.MinSize {
			itemsets = append(itemsets, is)
		}
	}
	if len(itemsets) > params.Limit {
		itemsets = itemsets[:params.Limit]
	}

	rw.SuccessWithMeta(itemsets, &APIMeta{
		SnapshotVersion: products.Snapshot.Version(),
		Count:           len(itemsets),
	})
}

type rulesParams struct {
	Limit int `validate:"min=1"`
}

// PatternsRules returns association rules, highest lift first,
// optionally filtered by a minimum lift.
func (h *Handler) PatternsRules(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	minLift, ok := queryFloat(rw, r, "min_lift", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(rw, r, "limit", h.config.API.DefaultPageSize)
	if !ok {
		return
	}
	if !validateParams(rw, &rulesParams{Limit: limit}) {
		return
	}
	limit = h.clampLimit(limit)

	products, ok := h.products(rw)
	if !ok {
		return
	}

	rules := make([]mining.Rule, 0, len(products.Rules))
	for _, rule := range products.Rules {
		if rule.Lift >= minLift {
			rules = append(rules, rule)
		}
	}
	if len(rules) > limit {
		rules = rules[:limit]
	}

	rw.SuccessWithMeta(rules, &APIMeta{
		SnapshotVersion: products.Snapshot.Version(),
		Count:           len(rules),
	})
}

// PatternsSequential returns recurring per-author keyword sequences.
func (h *Handler) PatternsSequential(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := queryInt(rw, r, "limit", h.config.API.DefaultPageSize)
	if !ok {
		return
	}
	if !validateParams(rw, &rulesParams{Limit: limit}) {
		return
	}
	limit = h.clampLimit(limit)

	products, ok := h.products(rw)
	if !ok {
		return
	}

	patterns := products.Sequential
	if len(patterns) > limit {
		patterns = patterns[:limit]
	}

	rw.SuccessWithMeta(patterns, &APIMeta{
		SnapshotVersion: products.Snapshot.Version(),
		Count:           len(patterns),
	})
}

type networkParams struct {
	// "all" is accepted as an explicit no-filter value for dashboard
	// selectors.
	Platform string `validate:"omitempty,oneof=all reddit youtube bluesky"`
}

// PatternsNetwork returns the keyword/hashtag co-occurrence graph,
// optionally restricted to one platform. The limit truncates nodes;
// edges between removed nodes are dropped with them.
func (h *Handler) PatternsNetwork(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := queryInt(rw, r, "limit", 0)
	if !ok {
		return
	}
	if limit < 0 {
		rw.ValidationError("limit must be positive", map[string]any{"field": "limit"})
		return
	}

	params := networkParams{Platform: r.URL.Query().Get("platform")}
	if !validateParams(rw, &params) {
		return
	}

	products, ok := h.products(rw)
	if !ok {
		return
	}

	graph := mining.BuildNetwork(products.Snapshot.Items(), params.Platform)
	if limit > 0 && len(graph.Nodes) > limit {
		kept := make(map[string]struct{}, limit)
		graph.Nodes = graph.Nodes[:limit]
		for _, n := range graph.Nodes {
			kept[n.ID] = struct{}{}
		}
		edges := graph.Edges[:0]
		for _, e := range graph.Edges {
			if _, okSrc := kept[e.Source]; !okSrc {
				continue
			}
			if _, okDst := kept[e.Target]; !okDst {
				continue
			}
			edges = append(edges, e)
		}
		graph.Edges = edges
	}

	rw.SuccessWithMeta(graph, &APIMeta{
		SnapshotVersion: products.Snapshot.Version(),
		Count:           len(graph.Nodes),
	})
}

type lifecycleParams struct {
	Keyword string `validate:"required"`
}

// Lifecycle reports the trend lifecycle stage of one keyword. A keyword
// nothing mentions yields a 200 with null data rather than an error.
func (h *Handler) Lifecycle(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	params := lifecycleParams{Keyword: r.URL.Query().Get("keyword")}
	if !validateParams(rw, &params) {
		return
	}

	products, ok := h.products(rw)
	if !ok {
		return
	}

	report := mining.Lifecycle(products.Snapshot.Items(), params.Keyword)

	rw.SuccessWithMeta(report, &APIMeta{
		SnapshotVersion: products.Snapshot.Version(),
	})
}
