// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package mining

import (
	"fmt"
	"testing"
	"time"

	"github.com/trendscope/trendscope/internal/dataset"
)

func day(d int) time.Time {
	return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func post(author string, at time.Time, keywords ...string) dataset.Item {
	return dataset.Item{
		ID:        fmt.Sprintf("%s-%d", author, at.Unix()),
		Author:    author,
		CreatedAt: at,
		Keywords:  keywords,
	}
}

func TestNewSequentialMiner_Defaults(t *testing.T) {
	m := NewSequentialMiner(SequentialMinerConfig{})
	if m.maxGapDays != 7 {
		t.Errorf("maxGapDays = %d, want 7", m.maxGapDays)
	}
}

// The concrete scenario: author "x" posting "ai" on day 0 and again on
// day 3 forms the candidate ("ai","ai"); it only surfaces once the
// dataset holds more than two occurrences.
func TestSequentialMiner_Mine(t *testing.T) {
	m := NewSequentialMiner(SequentialMinerConfig{MaxGapDays: 7})

	// Three authors each produce the ("ai","ai") pair once.
	items := []dataset.Item{
		post("x", day(0), "ai"),
		post("x", day(3), "ai"),
		post("y", day(1), "ai"),
		post("y", day(4), "ai"),
		post("z", day(2), "ai"),
		post("z", day(5), "ai"),
	}

	got := m.Mine(items)
	if len(got) != 1 {
		t.Fatalf("Mine() returned %d patterns, want 1: %+v", len(got), got)
	}

	p := got[0]
	if p.Sequence[0] != "ai" || p.Sequence[1] != "ai" {
		t.Errorf("Sequence = %v, want [ai ai]", p.Sequence)
	}
	if p.Count != 3 {
		t.Errorf("Count = %d, want 3", p.Count)
	}
	if p.Support != 1.0 {
		t.Errorf("Support = %f, want 1.0 (3 of 3 recorded pairs)", p.Support)
	}
	if p.MaxGapDays != 7 {
		t.Errorf("MaxGapDays = %d, want 7", p.MaxGapDays)
	}
}

// Two occurrences are below the minimum raw count and produce no output.
func TestSequentialMiner_MinCount(t *testing.T) {
	m := NewSequentialMiner(SequentialMinerConfig{MaxGapDays: 7})

	items := []dataset.Item{
		post("x", day(0), "ai"),
		post("x", day(3), "ai"),
		post("y", day(1), "ai"),
		post("y", day(4), "ai"),
	}

	if got := m.Mine(items); len(got) != 0 {
		t.Errorf("Mine() returned %d patterns, want 0 below min count", len(got))
	}
}

func TestSequentialMiner_GapBounds(t *testing.T) {
	tests := []struct {
		name    string
		gap     time.Duration
		recorded bool
	}{
		{"same-day gap is excluded", 5 * time.Hour, false},
		{"one-day gap qualifies", 25 * time.Hour, true},
		{"gap at the window bound qualifies", 7 * 24 * time.Hour, true},
		{"gap beyond the window is excluded", 8 * 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSequentialMiner(SequentialMinerConfig{MaxGapDays: 7})

			// Three authors replicate the same pair so min count is met
			// whenever the gap qualifies.
			var items []dataset.Item
			for _, author := range []string{"a", "b", "c"} {
				start := day(0)
				items = append(items,
					post(author, start, "go"),
					post(author, start.Add(tt.gap), "rust"),
				)
			}

			got := m.Mine(items)
			if tt.recorded && len(got) != 1 {
				t.Errorf("Mine() returned %d patterns, want 1", len(got))
			}
			if !tt.recorded && len(got) != 0 {
				t.Errorf("Mine() returned %d patterns, want 0", len(got))
			}
		})
	}
}

func TestSequentialMiner_SingleEventAuthors(t *testing.T) {
	m := NewSequentialMiner(SequentialMinerConfig{})

	items := []dataset.Item{
		post("a", day(0), "ai"),
		post("b", day(1), "ai"),
		post("c", day(2), "ai"),
	}

	if got := m.Mine(items); len(got) != 0 {
		t.Errorf("Mine() returned %d patterns for single-event authors, want 0", len(got))
	}
}

func TestSequentialMiner_DropsZeroTimestamps(t *testing.T) {
	m := NewSequentialMiner(SequentialMinerConfig{})

	items := []dataset.Item{
		{Author: "a", Keywords: []string{"ai"}}, // zero CreatedAt
		post("a", day(1), "ai"),
		post("a", day(2), "ai"),
	}

	// Only the day(1)->day(2) pair can be recorded; it stays below the
	// minimum count, so the zero-timestamp item must not contribute.
	if got := m.Mine(items); len(got) != 0 {
		t.Errorf("Mine() = %d patterns, want 0 with unparseable timestamp dropped", len(got))
	}
}

func TestSequentialMiner_UsesFirstKeywordCapped(t *testing.T) {
	m := NewSequentialMiner(SequentialMinerConfig{MaxGapDays: 7})

	var items []dataset.Item
	for _, author := range []string{"a", "b", "c"} {
		items = append(items,
			post(author, day(0), "first", "second", "third", "fourth"),
			post(author, day(1), "next"),
		)
	}

	got := m.Mine(items)
	if len(got) != 1 {
		t.Fatalf("Mine() returned %d patterns, want 1", len(got))
	}
	if got[0].Sequence[0] != "first" || got[0].Sequence[1] != "next" {
		t.Errorf("Sequence = %v, want [first next]", got[0].Sequence)
	}
}

func TestSequentialMiner_CapsOutput(t *testing.T) {
	m := NewSequentialMiner(SequentialMinerConfig{MaxGapDays: 7})

	// 60 distinct pairs, each occurring 3 times via 3 authors each.
	var items []dataset.Item
	for pair := 0; pair < 60; pair++ {
		k1 := fmt.Sprintf("k%02da", pair)
		k2 := fmt.Sprintf("k%02db", pair)
		for rep := 0; rep < 3; rep++ {
			author := fmt.Sprintf("author-%d-%d", pair, rep)
			items = append(items,
				post(author, day(0), k1),
				post(author, day(1), k2),
			)
		}
	}

	got := m.Mine(items)
	if len(got) != sequentialMaxPatterns {
		t.Errorf("Mine() returned %d patterns, want capped at %d", len(got), sequentialMaxPatterns)
	}
}
