// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package mining

import (
	"context"
	"math"
	"testing"
)

func TestNewFPGrowth_Defaults(t *testing.T) {
	f := NewFPGrowth(FPGrowthConfig{})
	if f.minSupport != 0.02 {
		t.Errorf("minSupport = %f, want 0.02", f.minSupport)
	}
}

func TestFPGrowth_Mine(t *testing.T) {
	transactions := txs(
		[]string{"a", "b", "c"},
		[]string{"a", "b"},
		[]string{"a", "c"},
		[]string{"a"},
	)

	f := NewFPGrowth(FPGrowthConfig{MinSupport: 0.5})
	got, err := f.Mine(context.Background(), transactions)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}

	want := map[string]float64{
		Key([]string{"a"}):      1.0,
		Key([]string{"b"}):      0.5,
		Key([]string{"c"}):      0.5,
		Key([]string{"a", "b"}): 0.5,
		Key([]string{"a", "c"}): 0.5,
	}
	if len(got) != len(want) {
		t.Fatalf("Mine() returned %d itemsets, want %d: %v", len(got), len(want), got)
	}
	for key, support := range want {
		is, ok := got[key]
		if !ok {
			t.Errorf("itemset %q missing from result", key)
			continue
		}
		if math.Abs(is.Support-support) > 1e-9 {
			t.Errorf("support(%q) = %f, want %f", key, is.Support, support)
		}
	}
	// {b,c} co-occurs only once (0.25) and must not appear.
	if _, ok := got[Key([]string{"b", "c"})]; ok {
		t.Error("itemset {b,c} retained at support 0.25, want excluded below 0.5")
	}
}

func TestFPGrowth_Triplets(t *testing.T) {
	transactions := txs(
		[]string{"a", "b", "c"},
		[]string{"a", "b", "c"},
		[]string{"a", "b", "c"},
		[]string{"d"},
	)

	f := NewFPGrowth(FPGrowthConfig{MinSupport: 0.5})
	got, err := f.Mine(context.Background(), transactions)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}

	is, ok := got[Key([]string{"a", "b", "c"})]
	if !ok {
		t.Fatal("triplet {a,b,c} missing from result")
	}
	if math.Abs(is.Support-0.75) > 1e-9 {
		t.Errorf("support(a,b,c) = %f, want 0.75", is.Support)
	}
	// d sits at 0.25, below threshold.
	if _, ok := got[Key([]string{"d"})]; ok {
		t.Error("itemset d retained at support 0.25, want excluded")
	}
}

// No itemset larger than a triplet is ever emitted, regardless of how
// frequent the full transaction is.
func TestFPGrowth_MaxItemsetSize(t *testing.T) {
	transactions := txs(
		[]string{"a", "b", "c", "d", "e"},
		[]string{"a", "b", "c", "d", "e"},
	)

	f := NewFPGrowth(FPGrowthConfig{MinSupport: 0.5})
	got, err := f.Mine(context.Background(), transactions)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}

	for _, is := range got {
		if len(is.Tokens) > 3 {
			t.Errorf("itemset %v exceeds triplet bound", is.Tokens)
		}
	}
}

// At equal thresholds FP-Growth and Apriori agree on pairs and triplets.
func TestFPGrowth_AgreesWithApriori(t *testing.T) {
	transactions := txs(
		[]string{"a", "b", "c"},
		[]string{"a", "b"},
		[]string{"b", "c"},
		[]string{"a", "c"},
		[]string{"a", "b", "c"},
	)

	fp, err := NewFPGrowth(FPGrowthConfig{MinSupport: 0.3}).Mine(context.Background(), transactions)
	if err != nil {
		t.Fatalf("FPGrowth Mine() error = %v", err)
	}
	ap, err := NewApriori(AprioriConfig{MinSupport: 0.3, MaxK: 3}).Mine(context.Background(), transactions)
	if err != nil {
		t.Fatalf("Apriori Mine() error = %v", err)
	}

	if len(fp) != len(ap) {
		t.Errorf("FPGrowth found %d itemsets, Apriori %d", len(fp), len(ap))
	}
	for key, is := range ap {
		other, ok := fp[key]
		if !ok {
			t.Errorf("itemset %q found by Apriori but not FPGrowth", key)
			continue
		}
		if math.Abs(other.Support-is.Support) > 1e-9 {
			t.Errorf("support(%q): FPGrowth %f, Apriori %f", key, other.Support, is.Support)
		}
	}
}

func TestFPGrowth_Mine_EmptyTransactions(t *testing.T) {
	got, err := NewFPGrowth(FPGrowthConfig{}).Mine(context.Background(), nil)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Mine(empty) returned %d itemsets, want 0", len(got))
	}
}

func TestFPGrowth_Mine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transactions := txs(
		[]string{"a", "b"},
		[]string{"a", "b"},
	)

	if _, err := NewFPGrowth(FPGrowthConfig{MinSupport: 0.1}).Mine(ctx, transactions); err == nil {
		t.Error("Mine() with cancelled context returned nil error, want context error")
	}
}
