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

func findRule(rules []Rule, antecedent, consequent []string) (Rule, bool) {
	antKey := Key(antecedent)
	conKey := Key(consequent)
	for _, r := range rules {
		if Key(r.Antecedent) == antKey && Key(r.Consequent) == conKey {
			return r, true
		}
	}
	return Rule{}, false
}

// The concrete scenario continued: from [{a,b},{a,b},{a,c},{a}] at
// min_support 0.5, rule a=>b has confidence 0.5 and b=>a has 1.0.
func TestRuleGenerator_Generate(t *testing.T) {
	transactions := txs(
		[]string{"a", "b"},
		[]string{"a", "b"},
		[]string{"a", "c"},
		[]string{"a"},
	)
	itemsets, err := NewApriori(AprioriConfig{MinSupport: 0.5, MaxK: 3}).Mine(context.Background(), transactions)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}

	rules := NewRuleGenerator(RuleGeneratorConfig{MinConfidence: 0.3}).Generate(itemsets)

	aToB, ok := findRule(rules, []string{"a"}, []string{"b"})
	if !ok {
		t.Fatal("rule a=>b missing")
	}
	if math.Abs(aToB.Confidence-0.5) > 1e-9 {
		t.Errorf("confidence(a=>b) = %f, want 0.5", aToB.Confidence)
	}

	bToA, ok := findRule(rules, []string{"b"}, []string{"a"})
	if !ok {
		t.Fatal("rule b=>a missing")
	}
	if math.Abs(bToA.Confidence-1.0) > 1e-9 {
		t.Errorf("confidence(b=>a) = %f, want 1.0", bToA.Confidence)
	}
	// lift(b=>a) = 1.0 / support(a) = 1.0
	if math.Abs(bToA.Lift-1.0) > 1e-9 {
		t.Errorf("lift(b=>a) = %f, want 1.0", bToA.Lift)
	}
}

// Every emitted rule satisfies the structural contract: confidence at
// or above threshold, disjoint parts, union equal to a frequent itemset.
func TestRuleGenerator_RuleValidity(t *testing.T) {
	transactions := txs(
		[]string{"a", "b", "c"},
		[]string{"a", "b"},
		[]string{"b", "c"},
		[]string{"a", "b", "c"},
		[]string{"a", "c"},
	)
	itemsets, err := NewApriori(AprioriConfig{MinSupport: 0.2, MaxK: 3}).Mine(context.Background(), transactions)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}

	const minConfidence = 0.4
	rules := NewRuleGenerator(RuleGeneratorConfig{MinConfidence: minConfidence}).Generate(itemsets)
	if len(rules) == 0 {
		t.Fatal("no rules generated")
	}

	for _, r := range rules {
		if r.Confidence < minConfidence {
			t.Errorf("rule %v=>%v confidence %f below threshold", r.Antecedent, r.Consequent, r.Confidence)
		}
		if len(r.Antecedent) == 0 || len(r.Consequent) == 0 {
			t.Errorf("rule %v=>%v has an empty side", r.Antecedent, r.Consequent)
		}

		seen := make(map[string]int)
		for _, tok := range r.Antecedent {
			seen[tok]++
		}
		for _, tok := range r.Consequent {
			seen[tok]++
		}
		union := make([]string, 0, len(seen))
		for tok, n := range seen {
			if n > 1 {
				t.Errorf("rule %v=>%v antecedent and consequent share token %q", r.Antecedent, r.Consequent, tok)
			}
			union = append(union, tok)
		}
		if _, ok := itemsets[Key(union)]; !ok {
			t.Errorf("rule %v=>%v union is not a frequent itemset", r.Antecedent, r.Consequent)
		}
	}

	// Output must be ordered by lift descending.
	for i := 0; i+1 < len(rules); i++ {
		if rules[i].Lift < rules[i+1].Lift {
			t.Errorf("rules[%d].Lift = %f < rules[%d].Lift = %f, want descending", i, rules[i].Lift, i+1, rules[i+1].Lift)
		}
	}
}

// Statistically independent tokens should produce lift close to 1.
func TestRuleGenerator_LiftIndependence(t *testing.T) {
	// x appears in 1/2 of transactions, y in 1/2, independently: the
	// four combinations each appear equally often.
	transactions := txs(
		[]string{"x", "y"},
		[]string{"x", "z"},
		[]string{"y", "z"},
		[]string{"z", "w"},
	)
	itemsets, err := NewApriori(AprioriConfig{MinSupport: 0.2, MaxK: 2}).Mine(context.Background(), transactions)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}

	rules := NewRuleGenerator(RuleGeneratorConfig{MinConfidence: 0.1}).Generate(itemsets)
	r, ok := findRule(rules, []string{"x"}, []string{"y"})
	if !ok {
		t.Fatal("rule x=>y missing")
	}
	// support(x,y)=0.25, support(x)=0.5, support(y)=0.5:
	// confidence 0.5, lift 0.5/0.5 = 1.
	if math.Abs(r.Lift-1.0) > 1e-9 {
		t.Errorf("lift(x=>y) = %f, want 1.0 for independent tokens", r.Lift)
	}
}

// An antecedent absent from the frequent-itemset map means the rule is
// skipped rather than recomputed.
func TestRuleGenerator_AbsentAntecedentSkipsRule(t *testing.T) {
	itemsets := FrequentItemsets{
		Key([]string{"a", "b"}): {Tokens: []string{"a", "b"}, Support: 0.5},
		Key([]string{"a"}):      {Tokens: []string{"a"}, Support: 0.5},
		// "b" intentionally missing.
	}

	rules := NewRuleGenerator(RuleGeneratorConfig{MinConfidence: 0.1}).Generate(itemsets)

	if _, ok := findRule(rules, []string{"b"}, []string{"a"}); ok {
		t.Error("rule with absent antecedent support was emitted, want skipped")
	}
	if _, ok := findRule(rules, []string{"a"}, []string{"b"}); !ok {
		t.Error("rule a=>b with known antecedent missing")
	}
}

// Lift falls back to 0 when the consequent itself is not frequent.
func TestRuleGenerator_AbsentConsequentZeroLift(t *testing.T) {
	itemsets := FrequentItemsets{
		Key([]string{"a", "b"}): {Tokens: []string{"a", "b"}, Support: 0.5},
		Key([]string{"a"}):      {Tokens: []string{"a"}, Support: 0.5},
	}

	rules := NewRuleGenerator(RuleGeneratorConfig{MinConfidence: 0.1}).Generate(itemsets)
	r, ok := findRule(rules, []string{"a"}, []string{"b"})
	if !ok {
		t.Fatal("rule a=>b missing")
	}
	if r.Lift != 0 {
		t.Errorf("lift = %f, want 0 for absent consequent support", r.Lift)
	}
}

func TestRuleGenerator_EmptyItemsets(t *testing.T) {
	rules := NewRuleGenerator(RuleGeneratorConfig{}).Generate(FrequentItemsets{})
	if len(rules) != 0 {
		t.Errorf("Generate(empty) returned %d rules, want 0", len(rules))
	}
}
