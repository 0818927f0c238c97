// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package mining

import (
	"strings"

	"github.com/trendscope/trendscope/internal/dataset"
)

// Token prefixes distinguishing structural tokens from free-text terms.
const (
	PlatformTokenPrefix  = "platform:"
	SentimentTokenPrefix = "sentiment:"
)

// Transaction is the symbolic token-set representation of one item.
// Tokens are unique within a transaction (set semantics).
type Transaction map[string]struct{}

// Contains reports whether the transaction holds the given token.
func (t Transaction) Contains(token string) bool {
	_, ok := t[token]
	return ok
}

// ContainsAll reports whether every token is present in the transaction.
func (t Transaction) ContainsAll(tokens []string) bool {
	for _, tok := range tokens {
		if _, ok := t[tok]; !ok {
			return false
		}
	}
	return true
}

// BuildTransactions converts dataset items into mining transactions.
//
// Each transaction is the union of the item's lowercased keywords and
// hashtags plus a platform: and a sentiment: token. Items that yield no
// tokens at all are skipped. Missing or empty keyword/hashtag fields are
// tolerated and simply contribute nothing.
func BuildTransactions(items []dataset.Item) []Transaction {
	transactions := make([]Transaction, 0, len(items))

	for i := range items {
		it := &items[i]
		tx := make(Transaction)

		for _, k := range it.Keywords {
			if k != "" {
				tx[strings.ToLower(k)] = struct{}{}
			}
		}
		for _, h := range it.Hashtags {
			if h != "" {
				tx[strings.ToLower(h)] = struct{}{}
			}
		}
		if it.Platform != "" {
			tx[PlatformTokenPrefix+strings.ToLower(it.Platform)] = struct{}{}
		}
		if it.Sentiment != "" {
			tx[SentimentTokenPrefix+strings.ToLower(it.Sentiment)] = struct{}{}
		}

		if len(tx) > 0 {
			transactions = append(transactions, tx)
		}
	}

	return transactions
}
