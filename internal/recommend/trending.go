// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package recommend

import (
	"math"
	"sort"
	"strings"
	"time"
)

// personalizedTrendPool is how many trending topics are re-ranked for a
// personalized request before truncation.
const personalizedTrendPool = 50

// relevanceBoost scales the per-point relevance multiplier applied to a
// topic's trending score.
const relevanceBoost = 0.3

// TrendingTopic is one trending keyword or hashtag. Hashtag topics carry
// a '#' prefix so the two namespaces stay distinguishable after merging.
type TrendingTopic struct {
	Topic         string  `json:"topic"`
	Type          string  `json:"type"`
	Mentions      int     `json:"mentions"`
	AvgEngagement float64 `json:"avg_engagement"`
	Score         float64 `json:"trending_score"`

	// Relevance and PersonalizedScore are populated by
	// PersonalizedTrends only.
	Relevance         int     `json:"relevance_score,omitempty"`
	PersonalizedScore float64 `json:"personalized_score,omitempty"`
}

// TrendingTopics extracts trending keywords and hashtags from items
// inside the window, scored mentions x ln(1 + mean engagement). The
// window is anchored on the newest item timestamp so a static dataset
// still trends. Terms below the mention minimum are dropped.
func (e *Engine) TrendingTopics(windowDays, topN int) []TrendingTopic {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.trendingTopicsLocked(windowDays, topN)
}

func (e *Engine) trendingTopicsLocked(windowDays, topN int) []TrendingTopic {
	if e.index == nil {
		return []TrendingTopic{}
	}
	if windowDays <= 0 {
		windowDays = e.config.TimeWindowDays
	}
	topN = e.clampTopN(topN)

	var newest time.Time
	for i := range e.items {
		if e.items[i].CreatedAt.After(newest) {
			newest = e.items[i].CreatedAt
		}
	}
	if newest.IsZero() {
		return []TrendingTopic{}
	}
	cutoff := newest.AddDate(0, 0, -windowDays)

	// Counts are tracked per namespace; engagement samples share one map
	// so a term used both as keyword and hashtag trends on its combined
	// engagement.
	keywordCounts := make(map[string]int)
	hashtagCounts := make(map[string]int)
	engagementSum := make(map[string]float64)
	engagementN := make(map[string]int)

	for i := range e.items {
		it := &e.items[i]
		if it.CreatedAt.IsZero() || it.CreatedAt.Before(cutoff) {
			continue
		}
		for _, k := range it.Keywords {
			if k == "" {
				continue
			}
			lower := strings.ToLower(k)
			keywordCounts[lower]++
			engagementSum[lower] += it.EngagementScore
			engagementN[lower]++
		}
		for _, h := range it.Hashtags {
			if h == "" {
				continue
			}
			lower := strings.ToLower(h)
			hashtagCounts[lower]++
			engagementSum[lower] += it.EngagementScore
			engagementN[lower]++
		}
	}

	trending := make([]TrendingTopic, 0, topN*3)
	for _, term := range topTerms(keywordCounts, topN*2) {
		count := keywordCounts[term]
		if count < e.config.MinTrendMentions {
			continue
		}
		avg := engagementSum[term] / float64(engagementN[term])
		trending = append(trending, TrendingTopic{
			Topic:         term,
			Type:          "keyword",
			Mentions:      count,
			AvgEngagement: avg,
			Score:         float64(count) * math.Log1p(avg),
		})
	}
	for _, term := range topTerms(hashtagCounts, topN) {
		count := hashtagCounts[term]
		if count < e.config.MinTrendMentions {
			continue
		}
		avg := engagementSum[term] / float64(engagementN[term])
		trending = append(trending, TrendingTopic{
			Topic:         "#" + term,
			Type:          "hashtag",
			Mentions:      count,
			AvgEngagement: avg,
			Score:         float64(count) * math.Log1p(avg),
		})
	}

	sort.SliceStable(trending, func(i, j int) bool {
		if trending[i].Score != trending[j].Score {
			return trending[i].Score > trending[j].Score
		}
		return trending[i].Topic < trending[j].Topic
	})
	if len(trending) > topN {
		trending = trending[:topN]
	}
	return trending
}

// PersonalizedTrends re-ranks the top trending topics by relevance to
// the profile: +3 per interest containing or contained in the topic,
// +2 when the topic is one of the profile's keywords, +1 per interest
// word longer than three characters found inside the topic. Each
// relevance point boosts the trending score by 30%.
func (e *Engine) PersonalizedTrends(profile *Profile, topN int) []TrendingTopic {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.index == nil {
		return []TrendingTopic{}
	}
	topN = e.clampTopN(topN)
	if profile == nil {
		profile = &Profile{}
	}

	trending := e.trendingTopicsLocked(e.config.TimeWindowDays, personalizedTrendPool)

	for i := range trending {
		topic := &trending[i]
		topicLower := strings.ReplaceAll(strings.ToLower(topic.Topic), "#", "")

		relevance := 0
		for _, interest := range profile.Interests {
			if strings.Contains(topicLower, interest) || strings.Contains(interest, topicLower) {
				relevance += 3
			}
		}
		if _, ok := profile.Keywords[topicLower]; ok {
			relevance += 2
		}
		for _, interest := range profile.Interests {
			for _, word := range strings.Fields(interest) {
				if len(word) > 3 && strings.Contains(topicLower, word) {
					relevance++
				}
			}
		}

		topic.Relevance = relevance
		topic.PersonalizedScore = topic.Score * (1 + float64(relevance)*relevanceBoost)
	}

	sort.SliceStable(trending, func(i, j int) bool {
		if trending[i].PersonalizedScore != trending[j].PersonalizedScore {
			return trending[i].PersonalizedScore > trending[j].PersonalizedScore
		}
		return trending[i].Topic < trending[j].Topic
	})
	if len(trending) > topN {
		trending = trending[:topN]
	}
	return trending
}

// topTerms returns up to n terms ordered by count descending, term
// ascending on ties.
func topTerms(counts map[string]int, n int) []string {
	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
