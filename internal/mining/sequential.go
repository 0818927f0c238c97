// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package mining

import (
	"sort"
	"strings"

	"github.com/trendscope/trendscope/internal/dataset"
)

// Sequential mining constants. A pattern needs more than two raw
// occurrences to be reported, and output is capped for the dashboard.
const (
	sequentialMinCount    = 3
	sequentialMaxPatterns = 50
	eventKeywordLimit     = 3
)

// SequentialPattern is an ordered keyword pair observed as consecutive
// per-author events within the gap window.
type SequentialPattern struct {
	// Sequence holds the first keyword of each of the two events.
	Sequence []string `json:"sequence"`

	// Support is Count divided by the total number of recorded
	// consecutive pairs (0 when none were recorded).
	Support float64 `json:"support"`

	// Count is the raw occurrence count across all authors.
	Count int `json:"count"`

	// MaxGapDays echoes the gap window the pattern was mined with.
	MaxGapDays int `json:"max_gap_days"`
}

// SequentialMiner finds recurring short keyword sequences in per-author
// posting histories.
type SequentialMiner struct {
	maxGapDays int
}

// SequentialMinerConfig contains configuration for sequential mining.
type SequentialMinerConfig struct {
	// MaxGapDays is the largest whole-day gap between consecutive events
	// that still forms a sequence. Default: 7.
	MaxGapDays int
}

// NewSequentialMiner creates a sequential miner, applying defaults for
// zero values.
func NewSequentialMiner(cfg SequentialMinerConfig) *SequentialMiner {
	if cfg.MaxGapDays <= 0 {
		cfg.MaxGapDays = 7
	}
	return &SequentialMiner{maxGapDays: cfg.MaxGapDays}
}

// authorEvent is one item reduced to its mining-relevant parts.
type authorEvent struct {
	keywords []string
	ts       int64 // unix seconds, timezone stripped upstream
}

// Mine groups items by author, orders each author's events
// chronologically, and records a 2-element sequence for every consecutive
// pair whose gap in whole days is in (0, MaxGapDays]. Sequences occurring
// more than twice are returned, top 50 by count.
//
// Items with a zero timestamp (unparseable upstream) are dropped before
// grouping. Authors with fewer than two qualifying events produce no
// sequences.
func (m *SequentialMiner) Mine(items []dataset.Item) []SequentialPattern {
	type indexed struct {
		author string
		event  authorEvent
	}

	events := make([]indexed, 0, len(items))
	for i := range items {
		it := &items[i]
		if it.CreatedAt.IsZero() {
			continue
		}

		keywords := make([]string, 0, eventKeywordLimit)
		seen := make(map[string]struct{}, eventKeywordLimit)
		for _, k := range it.Keywords {
			if k == "" {
				continue
			}
			lower := strings.ToLower(k)
			if _, dup := seen[lower]; dup {
				continue
			}
			seen[lower] = struct{}{}
			keywords = append(keywords, lower)
			if len(keywords) == eventKeywordLimit {
				break
			}
		}
		if len(keywords) == 0 {
			continue
		}

		author := it.Author
		if author == "" {
			author = "unknown"
		}
		events = append(events, indexed{
			author: author,
			event:  authorEvent{keywords: keywords, ts: it.CreatedAt.Unix()},
		})
	}

	// Chronological order; stable so same-timestamp items keep dataset order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].event.ts < events[j].event.ts
	})

	byAuthor := make(map[string][]authorEvent)
	for _, ev := range events {
		byAuthor[ev.author] = append(byAuthor[ev.author], ev.event)
	}

	// Record qualifying consecutive pairs.
	const daySeconds = 24 * 60 * 60
	counts := make(map[[2]string]int)
	totalRecorded := 0
	for _, seq := range byAuthor {
		for i := 0; i+1 < len(seq); i++ {
			gapDays := int((seq[i+1].ts - seq[i].ts) / daySeconds)
			if gapDays <= 0 || gapDays > m.maxGapDays {
				continue
			}
			pair := [2]string{firstKeyword(seq[i]), firstKeyword(seq[i+1])}
			counts[pair]++
			totalRecorded++
		}
	}

	patterns := make([]SequentialPattern, 0, len(counts))
	for pair, count := range counts {
		if count < sequentialMinCount {
			continue
		}
		support := 0.0
		if totalRecorded > 0 {
			support = float64(count) / float64(totalRecorded)
		}
		patterns = append(patterns, SequentialPattern{
			Sequence:   []string{pair[0], pair[1]},
			Support:    support,
			Count:      count,
			MaxGapDays: m.maxGapDays,
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].Count != patterns[j].Count {
			return patterns[i].Count > patterns[j].Count
		}
		if patterns[i].Sequence[0] != patterns[j].Sequence[0] {
			return patterns[i].Sequence[0] < patterns[j].Sequence[0]
		}
		return patterns[i].Sequence[1] < patterns[j].Sequence[1]
	})

	if len(patterns) > sequentialMaxPatterns {
		patterns = patterns[:sequentialMaxPatterns]
	}
	return patterns
}

// firstKeyword returns the event's first keyword or the empty string.
func firstKeyword(ev authorEvent) string {
	if len(ev.keywords) == 0 {
		return ""
	}
	return ev.keywords[0]
}
