// Package engine orchestrates ingestion, appraisal matching, and scoring.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"autoprofit/internal/config"
	"autoprofit/internal/ingest"
	"autoprofit/internal/metrics"
	"autoprofit/internal/store"
	"autoprofit/pkg/costmodel"
	"autoprofit/pkg/scorer"
	domain "autoprofit/pkg/types"
)

const defaultRescoreBatchSize = 500

// Matcher resolves a listing to its best appraisal. Satisfied by
// *match.Matcher.
type Matcher interface {
	FindBest(ctx context.Context, l *domain.Listing) (*domain.Appraisal, domain.MatchLevel, int, error)
}

// Scorer computes the cost breakdown and category for a listing against an
// appraisal. Satisfied by *scorer.Engine.
type Scorer interface {
	Score(ctx context.Context, l *domain.Listing, a *domain.Appraisal, cfg scorer.Config) scorer.Result
}

// Engine orchestrates the ingest → match → score pipeline.
type Engine struct {
	store   store.Store
	source  ingest.Client
	matcher Matcher
	scorer  Scorer
	cfg     *config.Store
	log     *slog.Logger

	itemsPerRun      int
	rescoreBatchSize int
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	src ingest.Client,
	m Matcher,
	sc Scorer,
	cfg *config.Store,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:            s,
		source:           src,
		matcher:          m,
		scorer:           sc,
		cfg:              cfg,
		log:              slog.Default(),
		rescoreBatchSize: defaultRescoreBatchSize,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithItemsPerRun caps dataset items fetched per actor run. Zero fetches
// everything.
func WithItemsPerRun(n int) EngineOption {
	return func(e *Engine) {
		e.itemsPerRun = n
	}
}

// WithRescoreBatchSize sets the page size RescoreAll walks listings with.
func WithRescoreBatchSize(n int) EngineOption {
	return func(e *Engine) {
		e.rescoreBatchSize = n
	}
}

// IngestionStats summarizes one ingestion cycle.
type IngestionStats struct {
	Fetched  int `json:"fetched"`
	Upserted int `json:"upserted"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}

// RunIngestion pulls the latest scraper items, upserts usable listings by
// VIN, and matches and scores each one. Per-item failures are logged and
// counted, not fatal; only fetch failures abort the cycle.
func (eng *Engine) RunIngestion(ctx context.Context) (IngestionStats, error) {
	start := time.Now()
	defer func() {
		metrics.IngestionDuration.Observe(time.Since(start).Seconds())
	}()

	var stats IngestionStats

	cfg := eng.cfg.Current()
	items, err := eng.source.FetchLatestItems(ctx, cfg.Apify.RunsToScan, eng.itemsPerRun)
	if err != nil {
		metrics.IngestionErrorsTotal.Inc()
		return stats, fmt.Errorf("fetching items: %w", err)
	}
	stats.Fetched = len(items)

	for _, raw := range items {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		l, err := ingest.NormalizeAutotraderItem(raw)
		if err != nil {
			eng.log.Warn("unparseable item skipped", "error", err)
			stats.Skipped++
			metrics.IngestionSkippedTotal.Inc()
			continue
		}
		if !ingest.Usable(l) {
			stats.Skipped++
			metrics.IngestionSkippedTotal.Inc()
			continue
		}

		if _, err := eng.ProcessListing(ctx, l); err != nil {
			eng.log.Error("listing processing failed", "vin", l.VIN, "error", err)
			stats.Errors++
			metrics.IngestionErrorsTotal.Inc()
			continue
		}
		stats.Upserted++
		metrics.IngestionListingsTotal.Inc()
	}

	eng.log.Info("ingestion cycle complete",
		"fetched", stats.Fetched,
		"upserted", stats.Upserted,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
	)

	return stats, nil
}

// ProcessListing upserts the listing, finds its best appraisal, scores it,
// and replaces its match result. A NONE match still produces a result row
// so the listing surfaces with category UNKNOWN rather than disappearing.
func (eng *Engine) ProcessListing(ctx context.Context, l *domain.Listing) (*domain.MatchResult, error) {
	if err := eng.store.UpsertListing(ctx, l); err != nil {
		return nil, fmt.Errorf("upserting listing: %w", err)
	}
	return eng.matchAndScore(ctx, l)
}

// RescoreListing re-matches and re-scores one stored listing.
func (eng *Engine) RescoreListing(ctx context.Context, listingID string) (*domain.MatchResult, error) {
	l, err := eng.store.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("loading listing: %w", err)
	}
	return eng.matchAndScore(ctx, l)
}

// RescoreAll re-matches and re-scores every stored listing, paging through
// the table in batches. Returns the number of listings rescored.
func (eng *Engine) RescoreAll(ctx context.Context) (int, error) {
	rescored := 0
	offset := 0

	for {
		listings, total, err := eng.store.ListListings(ctx, &store.ListingQuery{
			Limit:   eng.rescoreBatchSize,
			Offset:  offset,
			OrderBy: "ingested_at",
		})
		if err != nil {
			return rescored, fmt.Errorf("listing listings: %w", err)
		}
		if len(listings) == 0 {
			break
		}

		for i := range listings {
			if ctx.Err() != nil {
				return rescored, ctx.Err()
			}

			if _, err := eng.matchAndScore(ctx, &listings[i]); err != nil {
				eng.log.Error("rescore failed", "listing", listings[i].ID, "error", err)
				continue
			}
			rescored++
		}

		offset += len(listings)
		if offset >= total {
			break
		}
	}

	eng.log.Info("rescore complete", "rescored", rescored)
	return rescored, nil
}

func (eng *Engine) matchAndScore(ctx context.Context, l *domain.Listing) (*domain.MatchResult, error) {
	appraisal, level, conf, err := eng.matcher.FindBest(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("matching listing: %w", err)
	}

	metrics.MatchesTotal.WithLabelValues(string(level)).Inc()
	metrics.MatchConfidence.Observe(float64(conf))

	res := eng.scorer.Score(ctx, l, appraisal, ScorerConfig(eng.cfg.Current()))

	metrics.ScoresTotal.WithLabelValues(string(res.Category)).Inc()
	metrics.MarginPercent.Observe(res.MarginPercent)
	if res.Explanations.Shipping != nil && res.Explanations.Shipping.Unknown {
		metrics.ShippingUnknownTotal.Inc()
	}

	explJSON, err := json.Marshal(res.Explanations)
	if err != nil {
		return nil, fmt.Errorf("marshaling explanations: %w", err)
	}

	mr := &domain.MatchResult{
		ListingID:          l.ID,
		MatchLevel:         level,
		MatchConfidence:    conf,
		ShippingMiles:      res.ShippingMiles,
		ShippingCost:       res.ShippingCost,
		ReconCost:          res.ReconCost,
		PackCost:           res.PackCost,
		TotalCost:          res.TotalCost,
		GrossMarginDollars: res.GrossMarginDollars,
		MarginPercent:      res.MarginPercent,
		Category:           res.Category,
		Explanations:       explJSON,
	}
	if appraisal != nil {
		mr.AppraisalID = &appraisal.ID
	}

	if err := eng.store.UpsertMatchResult(ctx, mr); err != nil {
		return nil, fmt.Errorf("upserting match result: %w", err)
	}

	return mr, nil
}

// ScorerConfig assembles the per-call scoring configuration from a config
// snapshot.
func ScorerConfig(cfg *config.Config) scorer.Config {
	tiers := make([]costmodel.PackTier, len(cfg.Pack.Tiers))
	for i, t := range cfg.Pack.Tiers {
		tiers[i] = costmodel.PackTier{Min: t.Min, Max: t.Max, Cost: t.Cost}
	}

	return scorer.Config{
		ShippingRatePerMile: cfg.Shipping.RatePerMile,
		Thresholds: scorer.Thresholds{
			ProfitMinPct: cfg.Margins.ProfitMinPct,
			MaybeMinPct:  cfg.Margins.MaybeMinPct,
		},
		Costs: costmodel.Params{
			PackTiers: tiers,
			Recon: costmodel.ReconRule{
				NewMilesMax:      cfg.Recon.NewMilesMax,
				NewCost:          cfg.Recon.NewCost,
				OldYearThreshold: cfg.Recon.OldYearThreshold,
				OldCost:          cfg.Recon.OldCost,
				StandardCost:     cfg.Recon.StandardCost,
			},
			Mileage: costmodel.MileageRule{
				SupercarPriceThreshold: cfg.Mileage.SupercarPriceThreshold,
				HighMileThreshold:      cfg.Mileage.HighMileThreshold,
				SupercarPer5K:          cfg.Mileage.SupercarPer5K,
				HighMilePer5K:          cfg.Mileage.HighMilePer5K,
				SedanPer10K:            cfg.Mileage.SedanPer10K,
				SUVPer10K:              cfg.Mileage.SUVPer10K,
			},
		},
	}
}
