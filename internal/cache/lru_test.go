// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestLRU_AddGet(t *testing.T) {
	c := NewLRU(4, time.Minute)

	c.Add("a", 1)
	c.Add("b", "two")

	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v, want 1, true", v, ok)
	}
	v, ok = c.Get("b")
	if !ok || v != "two" {
		t.Errorf("Get(b) = %v, %v, want two, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) = true, want false")
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU(2, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)

	// Touch a so b becomes the eviction candidate.
	if _, ok := c.Get("a"); !ok {
		t.Fatal("Get(a) = false, want true")
	}

	c.Add("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b survived eviction, want removed as least recently used")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a evicted, want kept after recent access")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c missing after insert")
	}
}

func TestLRU_UpdateRefreshesEntry(t *testing.T) {
	c := NewLRU(2, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("a", 10) // refresh, does not grow the cache

	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	v, ok := c.Get("a")
	if !ok || v != 10 {
		t.Errorf("Get(a) = %v, %v, want 10, true", v, ok)
	}

	// a was refreshed most recently, so b goes first.
	c.Add("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Error("b survived eviction after a was refreshed")
	}
}

func TestLRU_TTLExpiry(t *testing.T) {
	c := NewLRU(4, 10*time.Millisecond)

	c.Add("a", 1)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Error("Get(a) = true after TTL, want expired")
	}
	if got := c.Len(); got != 0 {
		t.Errorf("Len() = %d after expired access, want 0", got)
	}
}

func TestLRU_RemoveAndPurge(t *testing.T) {
	c := NewLRU(4, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Remove("a")

	if _, ok := c.Get("a"); ok {
		t.Error("Get(a) = true after Remove")
	}

	c.Purge()
	if got := c.Len(); got != 0 {
		t.Errorf("Len() = %d after Purge, want 0", got)
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b) = true after Purge")
	}
}

func TestLRU_Stats(t *testing.T) {
	c := NewLRU(4, time.Minute)

	c.Add("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	hits, misses := c.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses, want 2, 1", hits, misses)
	}
}

func TestLRU_DefaultsApplied(t *testing.T) {
	c := NewLRU(0, 0)
	if c.capacity != 512 {
		t.Errorf("capacity = %d, want default 512", c.capacity)
	}
	if c.ttl != 5*time.Minute {
		t.Errorf("ttl = %s, want default 5m", c.ttl)
	}
}

func TestLRU_CapacityNeverExceeded(t *testing.T) {
	c := NewLRU(8, time.Minute)
	for i := 0; i < 100; i++ {
		c.Add(fmt.Sprintf("key-%d", i), i)
		if got := c.Len(); got > 8 {
			t.Fatalf("Len() = %d after insert %d, want at most 8", got, i)
		}
	}
}
