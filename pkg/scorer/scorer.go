// Package scorer composes the matcher, geo estimator, and cost model
// outputs into a categorized, explainable financial result for a listing.
package scorer

import (
	"context"
	"encoding/json"
	"math"

	"autoprofit/pkg/costmodel"
	"autoprofit/pkg/geo"
	domain "autoprofit/pkg/types"
)

// Thresholds are the margin-percent category boundaries.
type Thresholds struct {
	ProfitMinPct float64
	MaybeMinPct  float64
}

// Config is the immutable configuration for one scoring call.
type Config struct {
	ShippingRatePerMile float64
	Thresholds          Thresholds
	Costs               costmodel.Params
}

// ShippingEstimator resolves a listing's shipping estimate. Satisfied by
// *geo.Estimator.
type ShippingEstimator interface {
	Estimate(ctx context.Context, l *domain.Listing) geo.Estimate
}

// Result is the scored outcome for one (listing, appraisal) pair.
type Result struct {
	ShippingMiles      float64
	ShippingCost       int
	ReconCost          int
	PackCost           int
	TotalCost          int
	GrossMarginDollars int
	MarginPercent      float64
	Category           domain.Category
	Explanations       Explanation
}

// Explanation preserves every intermediate value used in a score, for
// auditability. Downstream consumers may attach a market-pricing verdict
// without touching the fields computed here.
type Explanation struct {
	Reason        string            `json:"reason,omitempty"`
	Shipping      *ShippingDetail   `json:"shipping,omitempty"`
	Recon         int               `json:"recon"`
	Pack          int               `json:"pack"`
	Mileage       *MileageDetail    `json:"mileage,omitempty"`
	Totals        *TotalsDetail     `json:"totals,omitempty"`
	Thresholds    *ThresholdsDetail `json:"thresholds,omitempty"`
	MarketPricing json.RawMessage   `json:"market_pricing,omitempty"`
}

// ShippingDetail explains the shipping estimate. Unknown marks the cost as
// a zero-value placeholder rather than a real zero-distance result.
type ShippingDetail struct {
	Miles   float64 `json:"miles"`
	Rate    float64 `json:"rate"`
	Cost    float64 `json:"cost"`
	Unknown bool    `json:"unknown"`
}

// MileageDetail explains the benchmark mileage adjustment.
type MileageDetail struct {
	ListingMileage   *int                      `json:"listing_mileage"`
	BenchmarkMileage *int                      `json:"benchmark_mileage"`
	MileageDiff      int                       `json:"mileage_diff"`
	VehicleCategory  costmodel.VehicleCategory `json:"vehicle_category"`
	Adjustment       int                       `json:"adjustment"`
}

// TotalsDetail explains the margin computation.
type TotalsDetail struct {
	TotalCost         int     `json:"total_cost"`
	OriginalBenchmark int     `json:"original_benchmark"`
	AdjustedBenchmark int     `json:"adjusted_benchmark"`
	MarginDollars     int     `json:"margin_dollars"`
	MarginPercent     float64 `json:"margin_percent"`
}

// ThresholdsDetail records the category boundaries in effect.
type ThresholdsDetail struct {
	ProfitMinPct float64 `json:"profit_min_pct"`
	MaybeMinPct  float64 `json:"maybe_min_pct"`
}

// Engine scores listings. Pure given its inputs and configuration; the
// only I/O is the estimator's geocoding fallback chain.
type Engine struct {
	shipping ShippingEstimator
}

// NewEngine creates a scoring Engine.
func NewEngine(shipping ShippingEstimator) *Engine {
	return &Engine{shipping: shipping}
}

// Score computes the cost breakdown, margin, and category for a listing
// against an appraisal. A nil appraisal is a deliberate fallback, not an
// error: the result carries the listing price as total cost, zero margin,
// and category UNKNOWN.
func (e *Engine) Score(ctx context.Context, l *domain.Listing, a *domain.Appraisal, cfg Config) Result {
	if a == nil {
		return Result{
			TotalCost: l.Price,
			Category:  domain.CategoryUnknown,
			Explanations: Explanation{
				Reason: "no appraisal match",
			},
		}
	}

	ship := e.shipping.Estimate(ctx, l)
	recon := cfg.Costs.Recon.Cost(l.Year, l.Mileage)
	pack := costmodel.PackCost(cfg.Costs.PackTiers, l.Price)
	adjustment := cfg.Costs.Mileage.Adjustment(l.Price, l.BodyStyle, l.Mileage, a.AvgMileage)

	// The mileage adjustment moves the benchmark price, not the cost side.
	adjustedBenchmark := a.BenchmarkPrice + adjustment
	totalCost := l.Price + int(math.Round(ship.Cost)) + recon + pack
	marginDollars := adjustedBenchmark - totalCost

	marginPercent := 0.0
	if totalCost > 0 {
		marginPercent = float64(marginDollars) / float64(totalCost)
	}

	return Result{
		ShippingMiles:      ship.Miles,
		ShippingCost:       int(math.Round(ship.Cost)),
		ReconCost:          recon,
		PackCost:           pack,
		TotalCost:          totalCost,
		GrossMarginDollars: marginDollars,
		MarginPercent:      marginPercent,
		Category:           Categorize(marginPercent, cfg.Thresholds),
		Explanations: Explanation{
			Shipping: &ShippingDetail{
				Miles:   round2(ship.Miles),
				Rate:    cfg.ShippingRatePerMile,
				Cost:    round2(ship.Cost),
				Unknown: ship.Unknown,
			},
			Recon: recon,
			Pack:  pack,
			Mileage: &MileageDetail{
				ListingMileage:   l.Mileage,
				BenchmarkMileage: a.AvgMileage,
				MileageDiff:      mileageDiff(l.Mileage, a.AvgMileage),
				VehicleCategory:  cfg.Costs.Mileage.Categorize(l.Price, l.BodyStyle),
				Adjustment:       adjustment,
			},
			Totals: &TotalsDetail{
				TotalCost:         totalCost,
				OriginalBenchmark: a.BenchmarkPrice,
				AdjustedBenchmark: adjustedBenchmark,
				MarginDollars:     marginDollars,
				MarginPercent:     round4(marginPercent),
			},
			Thresholds: &ThresholdsDetail{
				ProfitMinPct: cfg.Thresholds.ProfitMinPct,
				MaybeMinPct:  cfg.Thresholds.MaybeMinPct,
			},
		},
	}
}

// Categorize is a pure function of margin percent and thresholds.
func Categorize(marginPercent float64, t Thresholds) domain.Category {
	switch {
	case marginPercent >= t.ProfitMinPct:
		return domain.CategoryProfitable
	case marginPercent >= t.MaybeMinPct:
		return domain.CategoryMaybe
	default:
		return domain.CategoryUnknown
	}
}

func mileageDiff(listing, benchmark *int) int {
	if listing == nil || benchmark == nil {
		return 0
	}
	return *listing - *benchmark
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
