// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package recommend

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/trendscope/trendscope/internal/dataset"
)

var trendBase = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

func trendItem(id string, daysBack int, engagement float64, keywords, hashtags []string) dataset.Item {
	return dataset.Item{
		ID:              id,
		Platform:        "reddit",
		CreatedAt:       trendBase.AddDate(0, 0, -daysBack),
		EngagementScore: engagement,
		Keywords:        keywords,
		Hashtags:        hashtags,
	}
}

func findTopic(topics []TrendingTopic, name string) (TrendingTopic, bool) {
	for _, tp := range topics {
		if tp.Topic == name {
			return tp, true
		}
	}
	return TrendingTopic{}, false
}

func TestEngine_TrendingTopics(t *testing.T) {
	items := []dataset.Item{
		trendItem("a1", 0, 10, []string{"AI"}, nil),
		trendItem("a2", 1, 10, []string{"ai"}, nil),
		trendItem("a3", 1, 10, []string{"ai"}, nil),
		trendItem("a4", 2, 10, []string{"ai"}, nil),
		// Two mentions stay below the minimum of three.
		trendItem("r1", 0, 50, []string{"rare"}, nil),
		trendItem("r2", 1, 50, []string{"rare"}, nil),
		// Hashtag namespace.
		trendItem("g1", 0, 20, nil, []string{"golang"}),
		trendItem("g2", 1, 20, nil, []string{"golang"}),
		trendItem("g3", 2, 20, nil, []string{"golang"}),
		// Outside the 7-day window, must not count toward "ai".
		trendItem("old", 20, 10, []string{"ai"}, nil),
	}

	e := newTestEngine(t, items)
	got := e.TrendingTopics(7, 10)

	ai, ok := findTopic(got, "ai")
	if !ok {
		t.Fatal("topic ai missing")
	}
	if ai.Mentions != 4 {
		t.Errorf("ai mentions = %d, want 4 (windowed, case-folded)", ai.Mentions)
	}
	if ai.Type != "keyword" {
		t.Errorf("ai type = %q, want keyword", ai.Type)
	}
	wantScore := 4 * math.Log1p(10)
	if math.Abs(ai.Score-wantScore) > 1e-9 {
		t.Errorf("ai score = %f, want %f", ai.Score, wantScore)
	}

	golang, ok := findTopic(got, "#golang")
	if !ok {
		t.Fatal("topic #golang missing (hashtags carry a # prefix)")
	}
	if golang.Type != "hashtag" {
		t.Errorf("#golang type = %q, want hashtag", golang.Type)
	}
	if golang.Mentions != 3 {
		t.Errorf("#golang mentions = %d, want 3", golang.Mentions)
	}

	if _, ok := findTopic(got, "rare"); ok {
		t.Error("topic rare present with 2 mentions, want dropped below minimum")
	}

	for i := 0; i+1 < len(got); i++ {
		if got[i].Score < got[i+1].Score {
			t.Errorf("topics not ordered by score at %d", i)
		}
	}
}

func TestEngine_TrendingTopics_WindowAnchoredOnNewestItem(t *testing.T) {
	// All items are months in the past relative to wall-clock time; the
	// window anchors on the newest item so they still trend.
	items := []dataset.Item{
		trendItem("a1", 100, 10, []string{"ai"}, nil),
		trendItem("a2", 101, 10, []string{"ai"}, nil),
		trendItem("a3", 102, 10, []string{"ai"}, nil),
	}

	e := newTestEngine(t, items)
	got := e.TrendingTopics(7, 10)

	if _, ok := findTopic(got, "ai"); !ok {
		t.Error("topic ai missing, want window measured from newest item")
	}
}

func TestEngine_TrendingTopics_CapsResults(t *testing.T) {
	var items []dataset.Item
	for k := 0; k < 30; k++ {
		kw := fmt.Sprintf("topic%02d", k)
		for rep := 0; rep < 3; rep++ {
			items = append(items, trendItem(fmt.Sprintf("%s-%d", kw, rep), rep, 10, []string{kw}, nil))
		}
	}

	e := newTestEngine(t, items)
	got := e.TrendingTopics(7, 5)
	if len(got) != 5 {
		t.Errorf("TrendingTopics() returned %d topics, want 5", len(got))
	}
}

// A profile interested in "ai" boosts the "#ai" hashtag topic by a
// factor of 1.9: relevance 3 from the substring match, 1 + 3*0.3.
func TestEngine_PersonalizedTrends(t *testing.T) {
	items := []dataset.Item{
		trendItem("a1", 0, 10, nil, []string{"ai"}),
		trendItem("a2", 1, 10, nil, []string{"ai"}),
		trendItem("a3", 2, 10, nil, []string{"ai"}),
		trendItem("g1", 0, 10, []string{"cooking"}, nil),
		trendItem("g2", 1, 10, []string{"cooking"}, nil),
		trendItem("g3", 2, 10, []string{"cooking"}, nil),
	}

	e := newTestEngine(t, items)
	profile := CreateProfile([]string{"ai"}, nil)

	base := e.TrendingTopics(7, 10)
	baseAI, ok := findTopic(base, "#ai")
	if !ok {
		t.Fatal("topic #ai missing from baseline trending")
	}

	got := e.PersonalizedTrends(profile, 10)
	ai, ok := findTopic(got, "#ai")
	if !ok {
		t.Fatal("topic #ai missing from personalized trending")
	}

	if ai.Relevance != 3 {
		t.Errorf("#ai relevance = %d, want 3", ai.Relevance)
	}
	want := baseAI.Score * 1.9
	if math.Abs(ai.PersonalizedScore-want) > 1e-9 {
		t.Errorf("#ai personalized score = %f, want %f (1.9x boost)", ai.PersonalizedScore, want)
	}

	cooking, ok := findTopic(got, "cooking")
	if !ok {
		t.Fatal("topic cooking missing from personalized trending")
	}
	if cooking.Relevance != 0 {
		t.Errorf("cooking relevance = %d, want 0", cooking.Relevance)
	}
	if math.Abs(cooking.PersonalizedScore-cooking.Score) > 1e-9 {
		t.Errorf("cooking personalized score = %f, want unboosted %f", cooking.PersonalizedScore, cooking.Score)
	}

	// The boosted topic outranks the unboosted one despite equal bases.
	if got[0].Topic != "#ai" {
		t.Errorf("top personalized topic = %q, want #ai", got[0].Topic)
	}
}

func TestEngine_PersonalizedTrends_RelevanceScoring(t *testing.T) {
	items := []dataset.Item{
		trendItem("m1", 0, 10, []string{"machine learning"}, nil),
		trendItem("m2", 1, 10, []string{"machine learning"}, nil),
		trendItem("m3", 2, 10, []string{"machine learning"}, nil),
	}

	e := newTestEngine(t, items)

	// Interest equals the topic: +3 substring match both directions,
	// +1 for "machine" and +1 for "learning" as long partial words.
	profile := CreateProfile([]string{"machine learning"}, nil)
	got := e.PersonalizedTrends(profile, 10)
	topic, ok := findTopic(got, "machine learning")
	if !ok {
		t.Fatal("topic missing")
	}
	if topic.Relevance != 5 {
		t.Errorf("relevance = %d, want 5 (+3 substring, +1 +1 partial words)", topic.Relevance)
	}

	// Profile keyword match adds +2 on top.
	profile = CreateProfile([]string{"machine learning"}, []Interaction{
		{ItemID: "m1", Keywords: []string{"machine learning"}},
	})
	got = e.PersonalizedTrends(profile, 10)
	topic, ok = findTopic(got, "machine learning")
	if !ok {
		t.Fatal("topic missing")
	}
	if topic.Relevance != 7 {
		t.Errorf("relevance = %d, want 7 with profile keyword bonus", topic.Relevance)
	}
}

func TestEngine_PersonalizedTrends_EmptyDataset(t *testing.T) {
	e := newTestEngine(t, nil)
	profile := CreateProfile([]string{"ai"}, nil)

	if got := e.PersonalizedTrends(profile, 10); len(got) != 0 {
		t.Errorf("PersonalizedTrends() on empty dataset returned %d topics", len(got))
	}
}
