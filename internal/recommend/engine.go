// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package recommend

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/trendscope/trendscope/internal/cache"
	"github.com/trendscope/trendscope/internal/dataset"
	"github.com/trendscope/trendscope/internal/metrics"
)

// Blend weights. Content-based mixes text similarity with engagement;
// collaborative mixes term overlap with engagement; hybrid re-blends
// both signals with engagement as the tiebreaker.
const (
	contentSimWeight        = 0.6
	contentEngagementWeight = 0.4

	collabOverlapWeight    = 0.5
	collabEngagementWeight = 0.5

	hybridContentWeight    = 0.4
	hybridCollabWeight     = 0.3
	hybridEngagementWeight = 0.3

	keywordOverlapWeight = 2.0
	hashtagOverlapWeight = 1.5
)

// Recommendation is one scored item. ContentScore and CollabScore hold
// the per-signal contributions that produced the final Score; a signal
// that did not apply is zero.
type Recommendation struct {
	Item         dataset.Item `json:"item"`
	ContentScore float64      `json:"content_score"`
	CollabScore  float64      `json:"collab_score"`
	Score        float64      `json:"score"`
}

// Engine answers recommendation queries against one dataset version.
// It is safe for concurrent use after BuildIndex; the snapshot engine
// constructs a fresh Engine per rebuild rather than retraining in place.
type Engine struct {
	config *Config
	logger zerolog.Logger

	mu    sync.RWMutex
	items []dataset.Item
	index *FeatureIndex

	responses *cache.LRU
}

// NewEngine creates a recommendation engine. The engine answers nothing
// until BuildIndex has been called.
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
	if cfg.CacheSize > 0 {
		e.responses = cache.NewLRU(cfg.CacheSize, cfg.CacheTTL)
	}
	return e, nil
}

// BuildIndex ingests the dataset and builds the TF-IDF feature index.
// It must be called before queries; queries against an unbuilt engine
// return empty results.
func (e *Engine) BuildIndex(items []dataset.Item) {
	index := NewFeatureIndex(e.config.MaxFeatures)
	index.Build(items)

	e.mu.Lock()
	e.items = items
	e.index = index
	if e.responses != nil {
		e.responses.Purge()
	}
	e.mu.Unlock()

	e.logger.Info().
		Int("items", len(items)).
		Int("vocabulary", index.VocabularySize()).
		Msg("feature index built")
}

// IndexBuilt reports whether BuildIndex has been called.
func (e *Engine) IndexBuilt() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index != nil
}

// ContentBased recommends items matching the profile's interests and
// derived terms, scored 0.6 text similarity + 0.4 normalized engagement.
// A profile with no query terms falls back to the highest-engagement
// items. The profile's platform filter applies in both paths.
func (e *Engine) ContentBased(profile *Profile, topN int) []Recommendation {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.contentBasedLocked(profile, topN)
}

func (e *Engine) contentBasedLocked(profile *Profile, topN int) []Recommendation {
	if e.index == nil {
		return []Recommendation{}
	}
	topN = e.clampTopN(topN)
	if profile == nil {
		profile = &Profile{}
	}

	query := profile.queryText()
	if query == "" {
		return e.topByEngagementLocked(profile, topN)
	}

	scores := e.index.QueryScores(query)
	recs := make([]Recommendation, 0, len(e.items))
	for i := range e.items {
		it := e.items[i]
		if !profile.allowsPlatform(it.Platform) {
			continue
		}
		sim := scores[i]
		recs = append(recs, Recommendation{
			Item:         it,
			ContentScore: sim,
			Score:        sim*contentSimWeight + it.NormalizedEngagement/100*contentEngagementWeight,
		})
	}

	sortRecommendations(recs)
	return truncate(recs, topN)
}

// topByEngagementLocked is the cold-start fallback: no query terms means
// the best the engine can do is surface what performs well overall.
func (e *Engine) topByEngagementLocked(profile *Profile, topN int) []Recommendation {
	recs := make([]Recommendation, 0, len(e.items))
	for i := range e.items {
		it := e.items[i]
		if !profile.allowsPlatform(it.Platform) {
			continue
		}
		recs = append(recs, Recommendation{
			Item:  it,
			Score: it.NormalizedEngagement / 100,
		})
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Item.EngagementScore > recs[j].Item.EngagementScore
	})
	return truncate(recs, topN)
}

// Collaborative recommends unseen items whose keywords and hashtags
// overlap the interaction history, scored 0.5 weighted overlap + 0.5
// normalized engagement. Zero-overlap items are excluded, as are items
// already interacted with. No history means no collaborative signal.
func (e *Engine) Collaborative(interactions []Interaction, topN int) []Recommendation {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.collaborativeLocked(interactions, topN)
}

func (e *Engine) collaborativeLocked(interactions []Interaction, topN int) []Recommendation {
	if e.index == nil || len(interactions) == 0 {
		return []Recommendation{}
	}
	topN = e.clampTopN(topN)

	seen := make(map[string]struct{}, len(interactions))
	userKeywords := make(map[string]struct{})
	userHashtags := make(map[string]struct{})
	for i := range interactions {
		inter := &interactions[i]
		if inter.ItemID != "" {
			seen[inter.ItemID] = struct{}{}
		}
		for _, k := range inter.Keywords {
			if k != "" {
				userKeywords[strings.ToLower(k)] = struct{}{}
			}
		}
		for _, h := range inter.Hashtags {
			if h != "" {
				userHashtags[strings.ToLower(h)] = struct{}{}
			}
		}
	}
	if len(seen) == 0 {
		return []Recommendation{}
	}

	recs := make([]Recommendation, 0, len(e.items))
	for i := range e.items {
		it := e.items[i]
		if _, interacted := seen[it.ID]; interacted {
			continue
		}

		overlap := float64(termOverlap(it.Keywords, userKeywords))*keywordOverlapWeight +
			float64(termOverlap(it.Hashtags, userHashtags))*hashtagOverlapWeight
		if overlap <= 0 {
			continue
		}

		recs = append(recs, Recommendation{
			Item:        it,
			CollabScore: overlap,
			Score:       overlap*collabOverlapWeight + it.NormalizedEngagement/100*collabEngagementWeight,
		})
	}

	sortRecommendations(recs)
	return truncate(recs, topN)
}

// Hybrid blends the content-based and collaborative signals: both are
// fetched at twice the requested size, merged with the first occurrence
// of each item winning, and re-scored 0.4 content + 0.3 collaborative +
// 0.3 normalized engagement. Without interaction history the result is
// the content-based ranking unchanged.
func (e *Engine) Hybrid(profile *Profile, interactions []Interaction, topN int) []Recommendation {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.index == nil {
		return []Recommendation{}
	}
	topN = e.clampTopN(topN)
	if profile == nil {
		profile = &Profile{}
	}

	key := hybridCacheKey(profile, interactions, topN)
	if cached, ok := e.cachedResponse(key); ok {
		return cached
	}

	content := e.contentBasedLocked(profile, topN*2)

	var combined []Recommendation
	if len(interactions) > 0 {
		collab := e.collaborativeLocked(interactions, topN*2)

		combined = make([]Recommendation, 0, len(content)+len(collab))
		byID := make(map[string]struct{}, len(content)+len(collab))
		for _, source := range [][]Recommendation{content, collab} {
			for _, r := range source {
				if _, dup := byID[r.Item.ID]; dup {
					continue
				}
				byID[r.Item.ID] = struct{}{}
				r.Score = r.ContentScore*hybridContentWeight +
					r.CollabScore*hybridCollabWeight +
					r.Item.NormalizedEngagement/100*hybridEngagementWeight
				combined = append(combined, r)
			}
		}
		sortRecommendations(combined)
	} else {
		combined = content
	}

	result := truncate(combined, topN)
	e.storeResponse(key, result)
	return result
}

// SimilarItems returns the items most similar to the given one by TF-IDF
// cosine similarity, excluding the item itself. An unknown id returns an
// empty slice.
func (e *Engine) SimilarItems(itemID string, topN int) []Recommendation {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.index == nil {
		return []Recommendation{}
	}
	if topN <= 0 {
		topN = 10
	}

	scores, ok := e.index.DocScores(itemID)
	if !ok {
		return []Recommendation{}
	}
	self, _ := e.index.DocPosition(itemID)

	recs := make([]Recommendation, 0, len(e.items))
	for i := range e.items {
		if i == self {
			continue
		}
		recs = append(recs, Recommendation{
			Item:         e.items[i],
			ContentScore: scores[i],
			Score:        scores[i],
		})
	}

	sortRecommendations(recs)
	return truncate(recs, topN)
}

// Search returns the items most similar to a free-text query by TF-IDF
// cosine similarity. Items with zero similarity are excluded; an empty
// query or unbuilt index returns an empty slice.
func (e *Engine) Search(query string, topN int) []Recommendation {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.index == nil || strings.TrimSpace(query) == "" {
		return []Recommendation{}
	}
	topN = e.clampTopN(topN)

	scores := e.index.QueryScores(query)
	recs := make([]Recommendation, 0, len(e.items))
	for i := range e.items {
		if scores[i] <= 0 {
			continue
		}
		recs = append(recs, Recommendation{
			Item:         e.items[i],
			ContentScore: scores[i],
			Score:        scores[i],
		})
	}

	sortRecommendations(recs)
	return truncate(recs, topN)
}

// clampTopN substitutes the configured default for non-positive sizes.
func (e *Engine) clampTopN(topN int) int {
	if topN <= 0 {
		return e.config.TopN
	}
	return topN
}

// cachedResponse fetches a cached recommendation list.
func (e *Engine) cachedResponse(key string) ([]Recommendation, bool) {
	if e.responses == nil {
		return nil, false
	}
	v, ok := e.responses.Get(key)
	if !ok {
		metrics.RecommendCacheMisses.Inc()
		return nil, false
	}
	recs, ok := v.([]Recommendation)
	if ok {
		metrics.RecommendCacheHits.Inc()
	}
	return recs, ok
}

// storeResponse caches a recommendation list.
func (e *Engine) storeResponse(key string, recs []Recommendation) {
	if e.responses != nil {
		e.responses.Add(key, recs)
	}
}

// hybridCacheKey derives a stable cache key from the request inputs.
func hybridCacheKey(profile *Profile, interactions []Interaction, topN int) string {
	ids := make([]string, 0, len(interactions))
	for i := range interactions {
		ids = append(ids, interactions[i].ItemID)
	}
	sort.Strings(ids)
	return fmt.Sprintf("hybrid|%s|%s|%s|%d",
		strings.Join(profile.Interests, ","),
		strings.Join(profile.PreferredPlatforms, ","),
		strings.Join(ids, ","),
		topN)
}

// termOverlap counts how many of the item's terms appear in the user's
// term set, comparing case-insensitively and ignoring duplicates.
func termOverlap(terms []string, userTerms map[string]struct{}) int {
	if len(terms) == 0 || len(userTerms) == 0 {
		return 0
	}
	matched := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		lower := strings.ToLower(t)
		if _, ok := userTerms[lower]; ok {
			matched[lower] = struct{}{}
		}
	}
	return len(matched)
}

// sortRecommendations orders by score descending, engagement descending
// on ties, id ascending as the final tiebreaker for determinism.
func sortRecommendations(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		if recs[i].Item.EngagementScore != recs[j].Item.EngagementScore {
			return recs[i].Item.EngagementScore > recs[j].Item.EngagementScore
		}
		return recs[i].Item.ID < recs[j].Item.ID
	})
}

func truncate(recs []Recommendation, topN int) []Recommendation {
	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs
}
