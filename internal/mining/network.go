// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package mining

import (
	"sort"

	"github.com/trendscope/trendscope/internal/dataset"
)

// Rendering caps for the dashboard network view.
const (
	networkMaxNodes = 200
	networkMaxEdges = 1000
)

// NetworkNode is one term in the co-occurrence graph; Size is the number
// of items mentioning the term.
type NetworkNode struct {
	ID   string `json:"id"`
	Size int    `json:"size"`
}

// NetworkEdge connects two terms that appear in the same item; Weight is
// the number of items where they co-occur.
type NetworkEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// NetworkGraph is the co-occurrence graph for dashboard rendering.
type NetworkGraph struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}

// BuildNetwork counts keyword/hashtag co-occurrence within items,
// optionally restricted to one platform, and returns the strongest 200
// nodes and 1000 edges between them.
func BuildNetwork(items []dataset.Item, platform string) *NetworkGraph {
	nodeStrength := make(map[string]int)
	edgeStrength := make(map[[2]string]int)

	for i := range items {
		it := &items[i]
		if platform != "" && platform != "all" && it.Platform != platform {
			continue
		}

		// Unique terms per post.
		termSet := make(map[string]struct{})
		for _, k := range it.Keywords {
			if k != "" {
				termSet[k] = struct{}{}
			}
		}
		for _, h := range it.Hashtags {
			if h != "" {
				termSet[h] = struct{}{}
			}
		}

		terms := make([]string, 0, len(termSet))
		for t := range termSet {
			terms = append(terms, t)
		}
		sort.Strings(terms)

		for _, t := range terms {
			nodeStrength[t]++
		}
		for a := 0; a < len(terms); a++ {
			for b := a + 1; b < len(terms); b++ {
				edgeStrength[[2]string{terms[a], terms[b]}]++
			}
		}
	}

	nodes := make([]NetworkNode, 0, len(nodeStrength))
	for id, size := range nodeStrength {
		nodes = append(nodes, NetworkNode{ID: id, Size: size})
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Size != nodes[j].Size {
			return nodes[i].Size > nodes[j].Size
		}
		return nodes[i].ID < nodes[j].ID
	})
	if len(nodes) > networkMaxNodes {
		nodes = nodes[:networkMaxNodes]
	}

	kept := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		kept[n.ID] = struct{}{}
	}

	edges := make([]NetworkEdge, 0, len(edgeStrength))
	for pair, weight := range edgeStrength {
		if _, ok := kept[pair[0]]; !ok {
			continue
		}
		if _, ok := kept[pair[1]]; !ok {
			continue
		}
		edges = append(edges, NetworkEdge{Source: pair[0], Target: pair[1], Weight: weight})
	}
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight > edges[j].Weight
		}
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})
	if len(edges) > networkMaxEdges {
		edges = edges[:networkMaxEdges]
	}

	return &NetworkGraph{Nodes: nodes, Edges: edges}
}
