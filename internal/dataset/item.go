// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package dataset

import (
	"strings"
	"time"
)

// Known platform identifiers. The dataset store accepts any non-empty
// string as a platform so new sources can be ingested without a schema
// change; these constants cover the sources shipped today.
const (
	PlatformReddit  = "reddit"
	PlatformYouTube = "youtube"
	PlatformBluesky = "bluesky"
)

// Sentiment labels assigned by the preprocessing layer.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// TrendStatus classifies an item by its normalized engagement.
type TrendStatus string

const (
	// TrendRising indicates normalized engagement above 70.
	TrendRising TrendStatus = "rising"
	// TrendStable indicates normalized engagement above 40.
	TrendStable TrendStatus = "stable"
	// TrendFalling covers everything else.
	TrendFalling TrendStatus = "falling"
)

// Normalized engagement thresholds for trend status classification.
const (
	risingThreshold = 70.0
	stableThreshold = 40.0
)

// Item is one social-media post or video in the unified dataset.
//
// Optional fields default rather than error: missing keyword/hashtag
// lists are empty, missing sentiment is "neutral", missing scores are 0.
// The dataset store enforces those defaults at load time so downstream
// code never guesses.
type Item struct {
	// ID is unique across the unified dataset after deduplication.
	ID string `json:"id"`

	// Platform identifies the originating source (reddit, youtube, bluesky, ...).
	Platform string `json:"platform"`

	// Title is the post title or video name.
	Title string `json:"title"`

	// Text is the post body or description.
	Text string `json:"text"`

	// Author is the posting account, used for sequential pattern grouping.
	Author string `json:"author"`

	// CreatedAt is the publication timestamp, normalized to a
	// timezone-naive UTC representation at load time.
	CreatedAt time.Time `json:"created_at"`

	// EngagementScore is the platform-specific weighted combination of
	// raw interaction counts. Always non-negative.
	EngagementScore float64 `json:"engagement_score"`

	// NormalizedEngagement is EngagementScore rescaled to [0,100]
	// relative to the snapshot it belongs to.
	NormalizedEngagement float64 `json:"normalized_engagement"`

	// Sentiment is the discrete label: positive, neutral or negative.
	Sentiment string `json:"sentiment"`

	// SentimentScore is the continuous polarity in [-1,1].
	SentimentScore float64 `json:"sentiment_score"`

	// Keywords are extracted terms in extraction order.
	Keywords []string `json:"keywords"`

	// Hashtags are literal tags in occurrence order.
	Hashtags []string `json:"hashtags"`
}

// TrendStatus derives the trend classification from normalized engagement.
// It is computed on demand so it can never drift from the engagement value.
func (it *Item) TrendStatus() TrendStatus {
	switch {
	case it.NormalizedEngagement > risingThreshold:
		return TrendRising
	case it.NormalizedEngagement > stableThreshold:
		return TrendStable
	default:
		return TrendFalling
	}
}

// HasKeyword reports whether the item's keyword list contains the given
// keyword, case-insensitively.
func (it *Item) HasKeyword(keyword string) bool {
	keyword = strings.ToLower(keyword)
	for _, k := range it.Keywords {
		if strings.ToLower(k) == keyword {
			return true
		}
	}
	return false
}

// applyDefaults substitutes safe defaults for missing optional fields.
func (it *Item) applyDefaults() {
	if it.Sentiment == "" {
		it.Sentiment = SentimentNeutral
	}
	if it.Keywords == nil {
		it.Keywords = []string{}
	}
	if it.Hashtags == nil {
		it.Hashtags = []string{}
	}
	if it.EngagementScore < 0 {
		it.EngagementScore = 0
	}
}
