// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package dataset

import (
	"time"
)

// Snapshot is an immutable view of the unified dataset at one load cycle.
//
// All derived analytics (transactions, itemsets, rules, feature vectors,
// trending topics) are computed against a single Snapshot so concurrent
// readers always see internally consistent results. Snapshots must not
// be mutated after construction.
type Snapshot struct {
	items    []Item
	byID     map[string]int
	version  int64
	loadedAt time.Time
}

// NewSnapshot builds a snapshot from the given items. Engagement
// normalization runs over the full slice, per-item defaults are applied,
// and items are indexed by ID. The input slice is copied; the caller may
// reuse it afterwards.
func NewSnapshot(items []Item, version int64) *Snapshot {
	copied := make([]Item, len(items))
	copy(copied, items)

	for i := range copied {
		copied[i].applyDefaults()
	}
	NormalizeEngagement(copied)

	byID := make(map[string]int, len(copied))
	for i := range copied {
		// First occurrence wins on duplicate IDs; the store deduplicates
		// upstream so this only guards against malformed imports.
		if _, ok := byID[copied[i].ID]; !ok {
			byID[copied[i].ID] = i
		}
	}

	return &Snapshot{
		items:    copied,
		byID:     byID,
		version:  version,
		loadedAt: time.Now().UTC(),
	}
}

// Items returns the snapshot's item slice. Callers must treat it as
// read-only.
func (s *Snapshot) Items() []Item {
	return s.items
}

// Len returns the number of items in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.items)
}

// ItemByID looks up an item by its unique identifier.
func (s *Snapshot) ItemByID(id string) (*Item, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.items[idx], true
}

// Version is the monotonically increasing load-cycle counter.
func (s *Snapshot) Version() int64 {
	return s.version
}

// LoadedAt is when the snapshot was constructed.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// MaxCreatedAt returns the most recent item timestamp, or the zero time
// for an empty snapshot. Trending windows anchor on this rather than on
// wall-clock time so historical datasets still produce results.
func (s *Snapshot) MaxCreatedAt() time.Time {
	var maxTS time.Time
	for i := range s.items {
		if s.items[i].CreatedAt.After(maxTS) {
			maxTS = s.items[i].CreatedAt
		}
	}
	return maxTS
}
