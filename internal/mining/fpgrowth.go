// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package mining

import (
	"context"
	"sort"
)

// FPGrowth is a simplified FP-Growth variant: transactions are filtered
// to frequent items and ordered by global frequency, then frequent pairs
// and triplets are counted directly instead of building a full FP-tree.
// It produces the same mapping shape as Apriori and serves as a cheaper
// cross-check at small itemset sizes.
type FPGrowth struct {
	minSupport float64
}

// FPGrowthConfig contains configuration for the simplified FP-Growth
// miner.
type FPGrowthConfig struct {
	// MinSupport is the minimum fraction of transactions. Default: 0.02.
	MinSupport float64
}

// NewFPGrowth creates the miner, applying defaults for zero values.
func NewFPGrowth(cfg FPGrowthConfig) *FPGrowth {
	if cfg.MinSupport <= 0 {
		cfg.MinSupport = 0.02
	}
	return &FPGrowth{minSupport: cfg.MinSupport}
}

// Mine returns frequent itemsets of size 1 to 3.
func (f *FPGrowth) Mine(ctx context.Context, transactions []Transaction) (FrequentItemsets, error) {
	patterns := make(FrequentItemsets)
	if len(transactions) == 0 {
		return patterns, nil
	}
	total := float64(len(transactions))

	// Global item frequencies.
	counts := make(map[string]int)
	for _, tx := range transactions {
		for token := range tx {
			counts[token]++
		}
	}

	frequent := make(map[string]int)
	for token, count := range counts {
		if float64(count)/total >= f.minSupport {
			frequent[token] = count
		}
	}
	if len(frequent) == 0 {
		return patterns, nil
	}

	for token, count := range frequent {
		tokens := []string{token}
		patterns[Key(tokens)] = Itemset{Tokens: tokens, Support: float64(count) / total}
	}

	// Project each transaction onto its frequent items, ordered by global
	// frequency descending (token ascending on ties for determinism).
	projected := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		row := make([]string, 0, len(tx))
		for token := range tx {
			if _, ok := frequent[token]; ok {
				row = append(row, token)
			}
		}
		if len(row) == 0 {
			continue
		}
		sort.Slice(row, func(i, j int) bool {
			if frequent[row[i]] != frequent[row[j]] {
				return frequent[row[i]] > frequent[row[j]]
			}
			return row[i] < row[j]
		})
		projected = append(projected, row)
	}

	// Frequent pairs.
	pairCounts := make(map[string]int)
	for _, row := range projected {
		if contextCancelled(ctx) {
			return nil, ctx.Err()
		}
		for i := 0; i < len(row); i++ {
			for j := i + 1; j < len(row); j++ {
				pairCounts[Key([]string{row[i], row[j]})]++
			}
		}
	}
	f.collect(patterns, pairCounts, total)

	// Frequent triplets.
	tripletCounts := make(map[string]int)
	for _, row := range projected {
		if contextCancelled(ctx) {
			return nil, ctx.Err()
		}
		if len(row) < 3 {
			continue
		}
		for i := 0; i < len(row); i++ {
			for j := i + 1; j < len(row); j++ {
				for k := j + 1; k < len(row); k++ {
					tripletCounts[Key([]string{row[i], row[j], row[k]})]++
				}
			}
		}
	}
	f.collect(patterns, tripletCounts, total)

	return patterns, nil
}

// collect thresholds counted candidates into the pattern map. Keys are
// already canonical, so tokens are recovered by splitting.
func (f *FPGrowth) collect(patterns FrequentItemsets, candidateCounts map[string]int, total float64) {
	for key, count := range candidateCounts {
		support := float64(count) / total
		if support >= f.minSupport {
			patterns[key] = Itemset{Tokens: splitKey(key), Support: support}
		}
	}
}
