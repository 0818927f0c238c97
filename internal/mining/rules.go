// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package mining

import (
	"sort"
)

// Rule is an association rule derived from one frequent itemset.
// Antecedent and consequent partition the itemset: they are disjoint,
// non-empty, and their union is the originating itemset.
type Rule struct {
	Antecedent []string `json:"antecedent"`
	Consequent []string `json:"consequent"`

	// Support is the support of the full itemset.
	Support float64 `json:"support"`

	// Confidence is Support / support(Antecedent).
	Confidence float64 `json:"confidence"`

	// Lift is Confidence / support(Consequent); above 1 indicates
	// positive correlation. Zero when the consequent support is unknown.
	Lift float64 `json:"lift"`
}

// RuleGenerator derives association rules from frequent itemsets.
type RuleGenerator struct {
	minConfidence float64
}

// RuleGeneratorConfig contains configuration for rule generation.
type RuleGeneratorConfig struct {
	// MinConfidence is the retention threshold. Default: 0.3.
	MinConfidence float64
}

// NewRuleGenerator creates a rule generator, applying defaults for zero
// values.
func NewRuleGenerator(cfg RuleGeneratorConfig) *RuleGenerator {
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.3
	}
	return &RuleGenerator{minConfidence: cfg.MinConfidence}
}

// Generate enumerates every non-empty proper antecedent subset of each
// itemset of size >= 2 and keeps rules meeting the confidence threshold,
// sorted by lift descending (stable).
//
// Antecedent support is looked up in the same frequent-itemset mapping.
// An antecedent that fell below the support threshold is absent there,
// and the rule is skipped: a rule whose antecedent is not itself frequent
// cannot be supported, and recomputing its support on demand would break
// the level-wise pruning contract.
func (g *RuleGenerator) Generate(itemsets FrequentItemsets) []Rule {
	var rules []Rule

	for _, is := range itemsets.Sorted() {
		if len(is.Tokens) < 2 {
			continue
		}
		rules = append(rules, g.rulesFromItemset(is, itemsets)...)
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Lift > rules[j].Lift
	})
	return rules
}

// rulesFromItemset enumerates antecedent subsets of one itemset via
// bitmask; itemset sizes are bounded by MaxK so the mask fits easily.
func (g *RuleGenerator) rulesFromItemset(is Itemset, itemsets FrequentItemsets) []Rule {
	n := len(is.Tokens)
	var rules []Rule

	// Masks 1..2^n-2 enumerate non-empty proper subsets.
	for mask := 1; mask < (1<<n)-1; mask++ {
		antecedent := make([]string, 0, n-1)
		consequent := make([]string, 0, n-1)
		for bit := 0; bit < n; bit++ {
			if mask&(1<<bit) != 0 {
				antecedent = append(antecedent, is.Tokens[bit])
			} else {
				consequent = append(consequent, is.Tokens[bit])
			}
		}

		antecedentSupport := itemsets.Support(antecedent)
		if antecedentSupport <= 0 {
			continue
		}

		confidence := is.Support / antecedentSupport
		if confidence < g.minConfidence {
			continue
		}

		lift := 0.0
		if consequentSupport := itemsets.Support(consequent); consequentSupport > 0 {
			lift = confidence / consequentSupport
		}

		rules = append(rules, Rule{
			Antecedent: antecedent,
			Consequent: consequent,
			Support:    is.Support,
			Confidence: confidence,
			Lift:       lift,
		})
	}

	return rules
}
