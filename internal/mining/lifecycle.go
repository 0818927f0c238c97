// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package mining

import (
	"sort"
	"time"

	"github.com/trendscope/trendscope/internal/dataset"
)

// Lifecycle stages for a keyword's engagement trajectory.
const (
	StageEmerging  = "emerging"
	StageGrowing   = "growing"
	StageDeclining = "declining"
	StageStable    = "stable"
)

// Stage transition thresholds relative to the earlier-period average.
const (
	growthFactor  = 1.5
	declineFactor = 0.7
)

// DailyStat aggregates one day of engagement for a keyword.
type DailyStat struct {
	Date            string  `json:"date"` // ISO date (YYYY-MM-DD)
	AvgEngagement   float64 `json:"avg_engagement"`
	TotalEngagement float64 `json:"total_engagement"`
	Count           int     `json:"count"`
}

// LifecycleReport describes where a keyword sits in its trend lifecycle.
type LifecycleReport struct {
	Keyword       string      `json:"keyword"`
	Stage         string      `json:"stage"`
	TotalMentions int         `json:"total_mentions"`
	AvgEngagement float64     `json:"avg_engagement"`
	PeakDate      string      `json:"peak_date"`
	Daily         []DailyStat `json:"daily_stats"`
}

// Lifecycle analyzes the engagement trajectory of a single keyword over
// the items mentioning it, grouped by UTC day. It returns nil when no
// item mentions the keyword.
//
// The stage compares the mean of the last three daily averages against
// the mean of the earlier days: growing above 1.5x, declining below
// 0.7x, stable otherwise. With two or fewer days of data the keyword is
// classified as emerging.
func Lifecycle(items []dataset.Item, keyword string) *LifecycleReport {
	matched := make([]*dataset.Item, 0)
	for i := range items {
		if items[i].HasKeyword(keyword) {
			matched = append(matched, &items[i])
		}
	}
	if len(matched) == 0 {
		return nil
	}

	type bucket struct {
		total float64
		count int
	}
	buckets := make(map[string]*bucket)
	totalEngagement := 0.0
	for _, it := range matched {
		date := it.CreatedAt.UTC().Format(time.DateOnly)
		b, ok := buckets[date]
		if !ok {
			b = &bucket{}
			buckets[date] = b
		}
		b.total += it.EngagementScore
		b.count++
		totalEngagement += it.EngagementScore
	}

	daily := make([]DailyStat, 0, len(buckets))
	for date, b := range buckets {
		daily = append(daily, DailyStat{
			Date:            date,
			AvgEngagement:   b.total / float64(b.count),
			TotalEngagement: b.total,
			Count:           b.count,
		})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	peak := daily[0]
	for _, d := range daily[1:] {
		if d.TotalEngagement > peak.TotalEngagement {
			peak = d
		}
	}

	return &LifecycleReport{
		Keyword:       keyword,
		Stage:         classifyStage(daily),
		TotalMentions: len(matched),
		AvgEngagement: totalEngagement / float64(len(matched)),
		PeakDate:      peak.Date,
		Daily:         daily,
	}
}

// classifyStage compares recent daily averages against the earlier
// baseline.
func classifyStage(daily []DailyStat) string {
	if len(daily) <= 2 {
		return StageEmerging
	}

	recent := meanAvg(daily[len(daily)-3:])
	var earlier float64
	if len(daily) > 3 {
		earlier = meanAvg(daily[:len(daily)-3])
	} else {
		earlier = daily[0].AvgEngagement
	}

	switch {
	case recent > earlier*growthFactor:
		return StageGrowing
	case recent < earlier*declineFactor:
		return StageDeclining
	default:
		return StageStable
	}
}

func meanAvg(daily []DailyStat) float64 {
	if len(daily) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range daily {
		sum += d.AvgEngagement
	}
	return sum / float64(len(daily))
}
