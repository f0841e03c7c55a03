// Package costmodel implements the deterministic cost rules behind deal
// scoring: tiered packing cost, the reconditioning rule, and the
// mileage-based benchmark adjustment per vehicle category.
package costmodel

import (
	"math"
	"strings"
)

// PackTier is one price band of the packing cost table. Tiers are validated
// at configuration load to be contiguous over [0, inf); PackCost itself
// simply returns 0 when nothing matches.
type PackTier struct {
	Min  int
	Max  int
	Cost int
}

// ReconRule selects one of three flat reconditioning costs.
type ReconRule struct {
	NewMilesMax      int
	NewCost          int
	OldYearThreshold int
	OldCost          int
	StandardCost     int
}

// MileageRule scales the benchmark price with the mileage differential,
// in fixed increments per vehicle category.
type MileageRule struct {
	SupercarPriceThreshold int
	HighMileThreshold      int
	SupercarPer5K          int
	HighMilePer5K          int
	SedanPer10K            int
	SUVPer10K              int
}

// Params bundles every cost rule.
type Params struct {
	PackTiers []PackTier
	Recon     ReconRule
	Mileage   MileageRule
}

// VehicleCategory drives the mileage adjustment rule.
type VehicleCategory string

// Vehicle categories.
const (
	CategorySupercar         VehicleCategory = "supercar"
	CategoryCoupeConvertible VehicleCategory = "coupe_convertible"
	CategorySUV              VehicleCategory = "suv"
	CategorySedan            VehicleCategory = "sedan"
)

var (
	coupeStyles = []string{"coupe", "convertible", "roadster", "2dr", "2-door"}
	suvStyles   = []string{"suv", "truck", "crossover", "utility"}
)

// PackCost returns the cost of the first tier containing price, or 0.
func PackCost(tiers []PackTier, price int) int {
	for _, t := range tiers {
		if t.Min <= price && price <= t.Max {
			return t.Cost
		}
	}
	return 0
}

// Cost selects the reconditioning cost for a vehicle. A known-low odometer
// wins over age; otherwise recent model years get the cheaper tier.
func (r ReconRule) Cost(year int, mileage *int) int {
	if mileage != nil && *mileage <= r.NewMilesMax {
		return r.NewCost
	}
	if year >= r.OldYearThreshold {
		return r.OldCost
	}
	return r.StandardCost
}

// Categorize classifies a vehicle for mileage adjustment. Price wins over
// body style: anything at or above the supercar threshold is a supercar
// regardless of what the listing calls it.
func (r MileageRule) Categorize(price int, bodyStyle string) VehicleCategory {
	if price >= r.SupercarPriceThreshold {
		return CategorySupercar
	}

	style := strings.ToLower(bodyStyle)
	for _, s := range coupeStyles {
		if strings.Contains(style, s) {
			return CategoryCoupeConvertible
		}
	}
	for _, s := range suvStyles {
		if strings.Contains(style, s) {
			return CategorySUV
		}
	}
	return CategorySedan
}

// Adjustment computes the dollar amount added to the benchmark price for
// the mileage differential (listing minus benchmark average). Positive
// differentials always produce a penalty. Both mileage values must be
// present, otherwise the adjustment is 0.
//
// Coupes and convertibles are penalty-only: above the high-mile threshold
// an over-benchmark differential deducts per 5,000 miles and an
// under-benchmark one earns nothing. Below the threshold they fall back to
// the sedan rule, as the shipped rule table always did.
func (r MileageRule) Adjustment(price int, bodyStyle string, mileage, avgMileage *int) int {
	if mileage == nil || avgMileage == nil {
		return 0
	}

	diff := *mileage - *avgMileage

	switch r.Categorize(price, bodyStyle) {
	case CategorySupercar:
		return scaled(diff, 5000, r.SupercarPer5K)
	case CategoryCoupeConvertible:
		if *mileage > r.HighMileThreshold {
			if diff > 0 {
				return scaled(diff, 5000, r.HighMilePer5K)
			}
			return 0
		}
		return scaled(diff, 10000, r.SedanPer10K)
	case CategorySUV:
		return scaled(diff, 10000, r.SUVPer10K)
	default:
		return scaled(diff, 10000, r.SedanPer10K)
	}
}

// scaled converts a mileage differential into a dollar adjustment in
// fractional increments, truncated toward zero. Non-finite intermediate
// values (bad reference data) contribute nothing instead of poisoning the
// margin math.
func scaled(diff, per int, amount int) int {
	increments := float64(diff) / float64(per)
	v := -increments * float64(amount)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(v)
}
