// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package mining

import (
	"context"
)

// Apriori mines frequent itemsets level-wise: size-k candidates are
// generated by joining retained size-(k-1) itemsets, counted by exact
// subset containment against every transaction, and pruned below the
// support threshold. The anti-monotone property of support guarantees no
// frequent itemset is missed by the join.
//
// Support counting is O(|transactions| x |candidates|) per level, which
// is fine at the dataset sizes in scope (thousands of items) as long as
// MaxK stays small.
type Apriori struct {
	minSupport float64
	maxK       int
}

// AprioriConfig contains configuration for the Apriori miner.
type AprioriConfig struct {
	// MinSupport is the minimum fraction of transactions an itemset must
	// appear in. Default: 0.02.
	MinSupport float64

	// MaxK bounds the itemset size to control candidate blow-up.
	// Default: 3.
	MaxK int
}

// NewApriori creates an Apriori miner, applying defaults for zero values.
func NewApriori(cfg AprioriConfig) *Apriori {
	if cfg.MinSupport <= 0 {
		cfg.MinSupport = 0.02
	}
	if cfg.MaxK < 2 {
		cfg.MaxK = 3
	}
	return &Apriori{
		minSupport: cfg.MinSupport,
		maxK:       cfg.MaxK,
	}
}

// Mine returns every itemset whose support meets the threshold, across
// all levels up to MaxK, keyed canonically. With no transactions the
// result is empty.
func (a *Apriori) Mine(ctx context.Context, transactions []Transaction) (FrequentItemsets, error) {
	all := make(FrequentItemsets)
	if len(transactions) == 0 {
		return all, nil
	}

	current := a.frequentSingles(transactions)
	for k, v := range current {
		all[k] = v
	}

	for k := 2; k <= a.maxK && len(current) > 0; k++ {
		candidates := generateCandidates(current, k)

		next := make(FrequentItemsets)
		for key, tokens := range candidates {
			if contextCancelled(ctx) {
				return nil, ctx.Err()
			}
			support := countSupport(tokens, transactions)
			if support >= a.minSupport {
				next[key] = Itemset{Tokens: tokens, Support: support}
			}
		}

		for key, is := range next {
			all[key] = is
		}
		current = next
	}

	return all, nil
}

// frequentSingles computes supported 1-itemsets by a single counting pass.
func (a *Apriori) frequentSingles(transactions []Transaction) FrequentItemsets {
	counts := make(map[string]int)
	for _, tx := range transactions {
		for token := range tx {
			counts[token]++
		}
	}

	total := float64(len(transactions))
	out := make(FrequentItemsets)
	for token, count := range counts {
		support := float64(count) / total
		if support >= a.minSupport {
			tokens := []string{token}
			out[Key(tokens)] = Itemset{Tokens: tokens, Support: support}
		}
	}
	return out
}

// generateCandidates joins pairs of frequent (k-1)-itemsets whose union
// has exactly k tokens (the standard Apriori-gen join), deduplicated by
// canonical key.
func generateCandidates(prev FrequentItemsets, k int) map[string][]string {
	itemsets := make([][]string, 0, len(prev))
	for _, is := range prev {
		itemsets = append(itemsets, is.Tokens)
	}

	candidates := make(map[string][]string)
	for i := 0; i < len(itemsets); i++ {
		for j := i + 1; j < len(itemsets); j++ {
			union := unionSorted(itemsets[i], itemsets[j])
			if len(union) != k {
				continue
			}
			key := Key(union)
			if _, ok := candidates[key]; !ok {
				candidates[key] = union
			}
		}
	}
	return candidates
}

// countSupport returns the fraction of transactions containing every
// token of the candidate.
func countSupport(tokens []string, transactions []Transaction) float64 {
	if len(transactions) == 0 {
		return 0
	}
	count := 0
	for _, tx := range transactions {
		if tx.ContainsAll(tokens) {
			count++
		}
	}
	return float64(count) / float64(len(transactions))
}

// contextCancelled is a non-blocking cancellation check for tight loops.
func contextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
