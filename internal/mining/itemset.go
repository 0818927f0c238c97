// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package mining

import (
	"sort"
	"strings"
)

// keySeparator joins sorted tokens into a canonical map key. The unit
// separator cannot appear in tokens, which are lowercased words and tags.
const keySeparator = "\x1f"

// Itemset is an unordered token set with its support in the transaction
// corpus. Tokens are stored canonically sorted.
type Itemset struct {
	Tokens  []string `json:"tokens"`
	Support float64  `json:"support"`
}

// FrequentItemsets maps canonical itemset keys (see Key) to itemsets.
type FrequentItemsets map[string]Itemset

// Key returns the canonical lookup key for a token set: the tokens
// sorted and joined. The input slice is not modified.
func Key(tokens []string) string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)
	return strings.Join(sorted, keySeparator)
}

// splitKey recovers the sorted token slice from a canonical key.
func splitKey(key string) []string {
	return strings.Split(key, keySeparator)
}

// canonical returns a sorted copy of the token slice.
func canonical(tokens []string) []string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)
	return sorted
}

// Support looks up the support of a token set, returning 0 when the set
// is not frequent.
func (f FrequentItemsets) Support(tokens []string) float64 {
	if is, ok := f[Key(tokens)]; ok {
		return is.Support
	}
	return 0
}

// Sorted returns the itemsets ordered by support descending, then by key
// ascending for determinism.
func (f FrequentItemsets) Sorted() []Itemset {
	out := make([]Itemset, 0, len(f))
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, f[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Support > out[j].Support
	})
	return out
}

// unionSorted merges two sorted token slices into a sorted union.
func unionSorted(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
