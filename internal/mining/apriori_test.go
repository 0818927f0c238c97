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

// txs builds transactions from token lists.
func txs(rows ...[]string) []Transaction {
	out := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		tx := make(Transaction, len(row))
		for _, tok := range row {
			tx[tok] = struct{}{}
		}
		out = append(out, tx)
	}
	return out
}

func TestNewApriori_Defaults(t *testing.T) {
	a := NewApriori(AprioriConfig{})
	if a.minSupport != 0.02 {
		t.Errorf("minSupport = %f, want 0.02", a.minSupport)
	}
	if a.maxK != 3 {
		t.Errorf("maxK = %d, want 3", a.maxK)
	}
}

// The concrete scenario: transactions [{a,b},{a,b},{a,c},{a}] at
// min_support 0.5 retain a:1.0 and b:0.5 as 1-itemsets (c at 0.25
// excluded) and {a,b} at 0.5 as the only 2-itemset.
func TestApriori_Mine(t *testing.T) {
	transactions := txs(
		[]string{"a", "b"},
		[]string{"a", "b"},
		[]string{"a", "c"},
		[]string{"a"},
	)

	a := NewApriori(AprioriConfig{MinSupport: 0.5, MaxK: 3})
	got, err := a.Mine(context.Background(), transactions)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}

	want := map[string]float64{
		Key([]string{"a"}):      1.0,
		Key([]string{"b"}):      0.5,
		Key([]string{"a", "b"}): 0.5,
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
	if _, ok := got[Key([]string{"c"})]; ok {
		t.Error("itemset c retained at support 0.25, want excluded below 0.5")
	}
}

func TestApriori_Mine_EmptyTransactions(t *testing.T) {
	a := NewApriori(AprioriConfig{})
	got, err := a.Mine(context.Background(), nil)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Mine(empty) returned %d itemsets, want 0", len(got))
	}
}

// Anti-monotonicity: for every frequent itemset, each subset present in
// the result has support at least as large.
func TestApriori_AntiMonotonicity(t *testing.T) {
	transactions := txs(
		[]string{"a", "b", "c"},
		[]string{"a", "b"},
		[]string{"a", "c"},
		[]string{"b", "c"},
		[]string{"a", "b", "c"},
		[]string{"a"},
	)

	a := NewApriori(AprioriConfig{MinSupport: 0.1, MaxK: 3})
	got, err := a.Mine(context.Background(), transactions)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}

	for _, is := range got {
		if len(is.Tokens) < 2 {
			continue
		}
		for drop := range is.Tokens {
			subset := make([]string, 0, len(is.Tokens)-1)
			for i, tok := range is.Tokens {
				if i != drop {
					subset = append(subset, tok)
				}
			}
			subSupport := got.Support(subset)
			if subSupport < is.Support-1e-9 {
				t.Errorf("support(%v) = %f < support(%v) = %f, violates anti-monotonicity",
					subset, subSupport, is.Tokens, is.Support)
			}
		}
	}
}

// MaxK bounds the itemset size even when larger sets would be frequent.
func TestApriori_MaxKBound(t *testing.T) {
	transactions := txs(
		[]string{"a", "b", "c", "d"},
		[]string{"a", "b", "c", "d"},
		[]string{"a", "b", "c", "d"},
	)

	a := NewApriori(AprioriConfig{MinSupport: 0.5, MaxK: 2})
	got, err := a.Mine(context.Background(), transactions)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}

	for _, is := range got {
		if len(is.Tokens) > 2 {
			t.Errorf("itemset %v exceeds MaxK=2", is.Tokens)
		}
	}
	if got.Support([]string{"a", "b"}) != 1.0 {
		t.Errorf("support(a,b) = %f, want 1.0", got.Support([]string{"a", "b"}))
	}
}

func TestApriori_Mine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Enough transactions to reach the level-2 counting loop.
	transactions := txs(
		[]string{"a", "b"},
		[]string{"a", "b"},
	)

	a := NewApriori(AprioriConfig{MinSupport: 0.1, MaxK: 3})
	if _, err := a.Mine(ctx, transactions); err == nil {
		t.Error("Mine() with cancelled context returned nil error, want context error")
	}
}

func TestKey_Canonical(t *testing.T) {
	if Key([]string{"b", "a"}) != Key([]string{"a", "b"}) {
		t.Error("Key() is order-sensitive, want canonical ordering")
	}

	tokens := []string{"z", "a"}
	_ = Key(tokens)
	if tokens[0] != "z" {
		t.Error("Key() mutated its input slice")
	}
}
