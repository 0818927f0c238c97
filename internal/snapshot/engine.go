// Trendscope - Social Media Trend Analytics and Pattern Mining
// Copyright 2026 Trendscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendscope/trendscope

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/trendscope/trendscope/internal/config"
	"github.com/trendscope/trendscope/internal/database"
	"github.com/trendscope/trendscope/internal/dataset"
	"github.com/trendscope/trendscope/internal/logging"
	"github.com/trendscope/trendscope/internal/metrics"
	"github.com/trendscope/trendscope/internal/mining"
	"github.com/trendscope/trendscope/internal/recommend"
)

// ErrRebuildInProgress is returned when a rebuild is requested while
// another one is still running.
var ErrRebuildInProgress = errors.New("snapshot rebuild already in progress")

// Products bundles one dataset snapshot with everything derived from it.
// A Products value is immutable after publication; readers that hold a
// pointer keep a consistent view even while the next rebuild runs.
type Products struct {
	Snapshot     *dataset.Snapshot
	Transactions []mining.Transaction
	Itemsets     mining.FrequentItemsets
	Rules        []mining.Rule
	FPPatterns   mining.FrequentItemsets
	Sequential   []mining.SequentialPattern
	Recommender  *recommend.Engine
	RebuiltAt    time.Time
	Duration     time.Duration
}

// Engine owns the rebuild cycle: load items from the store, run every
// miner, build the recommender, then publish the result atomically.
// Only one rebuild runs at a time; readers are never blocked.
type Engine struct {
	db     *database.DB
	cfg    *config.Config
	logger zerolog.Logger

	current    atomic.Pointer[Products]
	version    atomic.Int64
	rebuilding atomic.Bool

	// onRebuilt is invoked after each successful publish, outside any
	// lock. Used to fan out rebuild notifications to websocket clients.
	onRebuilt func(*Products)
}

// NewEngine creates a snapshot engine. No snapshot exists until the
// first Rebuild completes.
func NewEngine(db *database.DB, cfg *config.Config) *Engine {
	return &Engine{
		db:     db,
		cfg:    cfg,
		logger: logging.WithComponent("snapshot"),
	}
}

// OnRebuilt registers a callback invoked after each successful rebuild.
// Must be called before the engine starts rebuilding.
func (e *Engine) OnRebuilt(fn func(*Products)) {
	e.onRebuilt = fn
}

// Current returns the latest published products, or false when no
// rebuild has completed yet.
func (e *Engine) Current() (*Products, bool) {
	p := e.current.Load()
	return p, p != nil
}

// Version returns the number of successful rebuilds.
func (e *Engine) Version() int64 {
	return e.version.Load()
}

// Rebuilding reports whether a rebuild is currently running.
func (e *Engine) Rebuilding() bool {
	return e.rebuilding.Load()
}

// Rebuild loads the dataset and recomputes all derived products, then
// publishes them atomically. Returns ErrRebuildInProgress when another
// rebuild is running. The previous snapshot stays published if the
// rebuild fails.
func (e *Engine) Rebuild(ctx context.Context) (*Products, error) {
	if !e.rebuilding.CompareAndSwap(false, true) {
		metrics.RecordRebuild("skipped", 0)
		return nil, ErrRebuildInProgress
	}
	defer e.rebuilding.Store(false)

	if timeout := e.cfg.Snapshot.RebuildTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()

	items, err := e.db.LoadItems(ctx)
	if err != nil {
		metrics.RecordRebuild("error", 0)
		return nil, fmt.Errorf("load items: %w", err)
	}

	products, err := e.build(ctx, items)
	if err != nil {
		metrics.RecordRebuild("error", 0)
		return nil, err
	}
	products.Duration = time.Since(start)

	e.current.Store(products)
	version := e.version.Add(1)

	metrics.RecordRebuild("success", products.Duration)
	metrics.SnapshotItems.Set(float64(products.Snapshot.Len()))
	metrics.SnapshotVersion.Set(float64(version))
	metrics.MiningPatterns.WithLabelValues("itemsets").Set(float64(len(products.Itemsets)))
	metrics.MiningPatterns.WithLabelValues("rules").Set(float64(len(products.Rules)))
	metrics.MiningPatterns.WithLabelValues("fpgrowth").Set(float64(len(products.FPPatterns)))
	metrics.MiningPatterns.WithLabelValues("sequential").Set(float64(len(products.Sequential)))

	e.logger.Info().
		Int64("version", version).
		Int("items", products.Snapshot.Len()).
		Int("transactions", len(products.Transactions)).
		Int("itemsets", len(products.Itemsets)).
		Int("rules", len(products.Rules)).
		Int("sequential", len(products.Sequential)).
		Dur("duration", products.Duration).
		Msg("Snapshot rebuilt")

	if e.onRebuilt != nil {
		e.onRebuilt(products)
	}

	return products, nil
}

// build computes every derived product for the given items. Nothing is
// published until the whole build succeeds.
func (e *Engine) build(ctx context.Context, items []dataset.Item) (*Products, error) {
	snap := dataset.NewSnapshot(items, e.version.Load()+1)
	transactions := mining.BuildTransactions(snap.Items())

	apriori := mining.NewApriori(mining.AprioriConfig{
		MinSupport: e.cfg.Mining.MinSupport,
		MaxK:       e.cfg.Mining.MaxK,
	})
	itemsets, err := apriori.Mine(ctx, transactions)
	if err != nil {
		return nil, fmt.Errorf("apriori: %w", err)
	}

	rules := mining.NewRuleGenerator(mining.RuleGeneratorConfig{
		MinConfidence: e.cfg.Mining.MinConfidence,
	}).Generate(itemsets)

	fpGrowth := mining.NewFPGrowth(mining.FPGrowthConfig{
		MinSupport: e.cfg.Mining.MinSupport,
	})
	fpPatterns, err := fpGrowth.Mine(ctx, transactions)
	if err != nil {
		return nil, fmt.Errorf("fp-growth: %w", err)
	}

	sequential := mining.NewSequentialMiner(mining.SequentialMinerConfig{
		MaxGapDays: e.cfg.Mining.MaxGapDays,
	}).Mine(snap.Items())

	recommender, err := recommend.NewEngine(&recommend.Config{
		TopN:             e.cfg.Recommend.TopN,
		TimeWindowDays:   e.cfg.Recommend.TimeWindowDays,
		MaxFeatures:      e.cfg.Recommend.MaxFeatures,
		MinTrendMentions: e.cfg.Recommend.MinTrendMentions,
		CacheSize:        e.cfg.Recommend.CacheSize,
		CacheTTL:         e.cfg.Recommend.CacheTTL,
	}, e.logger)
	if err != nil {
		return nil, fmt.Errorf("recommender: %w", err)
	}
	recommender.BuildIndex(snap.Items())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Products{
		Snapshot:     snap,
		Transactions: transactions,
		Itemsets:     itemsets,
		Rules:        rules,
		FPPatterns:   fpPatterns,
		Sequential:   sequential,
		Recommender:  recommender,
		RebuiltAt:    time.Now().UTC(),
	}, nil
}
