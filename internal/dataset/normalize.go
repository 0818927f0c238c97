// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package dataset

// normalizedMidpoint is assigned when every item shares the same
// engagement score and min-max scaling is undefined.
const normalizedMidpoint = 50.0

// NormalizeEngagement rescales EngagementScore to NormalizedEngagement in
// [0,100] using min-max normalization over the given items. If all items
// share the same score, every item gets the midpoint value of 50.
//
// The function mutates the slice elements in place; callers that need
// immutability must copy first (Snapshot construction does).
func NormalizeEngagement(items []Item) {
	if len(items) == 0 {
		return
	}

	minScore := items[0].EngagementScore
	maxScore := items[0].EngagementScore
	for i := range items {
		s := items[i].EngagementScore
		if s < minScore {
			minScore = s
		}
		if s > maxScore {
			maxScore = s
		}
	}

	spread := maxScore - minScore
	if spread == 0 {
		for i := range items {
			items[i].NormalizedEngagement = normalizedMidpoint
		}
		return
	}

	for i := range items {
		items[i].NormalizedEngagement = (items[i].EngagementScore - minScore) / spread * 100
	}
}
