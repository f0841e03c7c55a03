// Package domain defines the core business types for autoprofit.
package domain

import (
	"encoding/json"
	"time"
)

// MatchLevel is the granularity at which a listing matched an appraisal.
type MatchLevel string

// Match level constants.
const (
	MatchYMMT MatchLevel = "YMMT"
	MatchYMM  MatchLevel = "YMM"
	MatchNone MatchLevel = "NONE"
)

// Category buckets a scored listing by profitability.
type Category string

// Category constants. BUY is reserved for the market-pricing override,
// which is applied downstream of the scoring engine.
const (
	CategoryProfitable Category = "PROFITABLE"
	CategoryMaybe      Category = "MAYBE"
	CategoryUnknown    Category = "UNKNOWN"
	CategorySkip       Category = "SKIP"
	CategoryBuy        Category = "BUY"
)

// PatternType selects how a trim alias is matched against raw trim text.
type PatternType string

// Pattern type constants.
const (
	PatternExact    PatternType = "EXACT"
	PatternContains PatternType = "CONTAINS"
)

// Listing represents an observed vehicle for sale, upserted by VIN.
type Listing struct {
	ID      string `json:"id"             db:"id"`
	VIN     string `json:"vin"            db:"vin"`
	Year    int    `json:"year"           db:"year"`
	Make    string `json:"make"           db:"make"`
	Model   string `json:"model"          db:"model"`
	Trim    string `json:"trim,omitempty" db:"trim"`
	Price   int    `json:"price"          db:"price"`
	Mileage *int   `json:"mileage,omitempty" db:"mileage"`

	// Body style feeds the mileage-adjustment vehicle category.
	BodyStyle string `json:"body_style,omitempty" db:"body_style"`

	// Geographic fields, best-effort from the source payload.
	Lat      *float64 `json:"lat,omitempty"      db:"lat"`
	Lon      *float64 `json:"lon,omitempty"      db:"lon"`
	Zip      string   `json:"zip,omitempty"      db:"zip"`
	Location string   `json:"location,omitempty" db:"location"`
	Phone    string   `json:"phone,omitempty"    db:"phone"`

	SellerType string          `json:"seller_type,omitempty" db:"seller_type"`
	Seller     string          `json:"seller,omitempty"      db:"seller"`
	URL        string          `json:"url"                   db:"url"`
	Source     string          `json:"source"                db:"source"`
	Raw        json.RawMessage `json:"raw,omitempty"         db:"raw"`

	IngestedAt time.Time `json:"ingested_at" db:"ingested_at"`
}

// HasIdentity reports whether the listing carries the fields required
// for appraisal matching.
func (l *Listing) HasIdentity() bool {
	return l.Make != "" && l.Model != "" && l.Year != 0
}

// RawPhone digs a phone number out of the source payload when the
// normalized Phone field is empty. Autotrader payloads carry it as
// ownerPhone.
func (l *Listing) RawPhone() string {
	if len(l.Raw) == 0 {
		return ""
	}
	var payload struct {
		OwnerPhone string `json:"ownerPhone"`
	}
	if err := json.Unmarshal(l.Raw, &payload); err != nil {
		return ""
	}
	return payload.OwnerPhone
}

// Appraisal is a benchmark record. A nil Trim means the benchmark applies
// to every trim of the year/make/model.
type Appraisal struct {
	ID             string    `json:"id"                    db:"id"`
	Year           int       `json:"year"                  db:"year"`
	Make           string    `json:"make"                  db:"make"`
	Model          string    `json:"model"                 db:"model"`
	Trim           *string   `json:"trim,omitempty"        db:"trim"`
	BenchmarkPrice int       `json:"benchmark_price"       db:"benchmark_price"`
	AvgMileage     *int      `json:"avg_mileage,omitempty" db:"avg_mileage"`
	Notes          string    `json:"notes,omitempty"       db:"notes"`
	UpdatedAt      time.Time `json:"updated_at"            db:"updated_at"`
}

// CanonicalTrim is a curated trim definition scoped to a make/model and
// a year range.
type CanonicalTrim struct {
	ID            string    `json:"id"             db:"id"`
	Make          string    `json:"make"           db:"make"`
	Model         string    `json:"model"          db:"model"`
	YearStart     int       `json:"year_start"     db:"year_start"`
	YearEnd       int       `json:"year_end"       db:"year_end"`
	CanonicalTrim string    `json:"canonical_trim" db:"canonical_trim"`
	Active        bool      `json:"active"         db:"active"`
	UpdatedAt     time.Time `json:"updated_at"     db:"updated_at"`
}

// TrimAlias recognizes a raw listing trim string for a canonical trim
// without fuzzy scoring.
type TrimAlias struct {
	ID          string      `json:"id"           db:"id"`
	CanonicalID string      `json:"canonical_id" db:"canonical_id"`
	Alias       string      `json:"alias"        db:"alias"`
	PatternType PatternType `json:"pattern_type" db:"pattern_type"`
	Priority    int         `json:"priority"     db:"priority"`
	Active      bool        `json:"active"       db:"active"`
}

// MatchResult links a listing to at most one appraisal together with the
// computed cost breakdown. One live row per listing; rescoring replaces it.
type MatchResult struct {
	ID              string     `json:"id"                     db:"id"`
	ListingID       string     `json:"listing_id"             db:"listing_id"`
	AppraisalID     *string    `json:"appraisal_id,omitempty" db:"appraisal_id"`
	MatchLevel      MatchLevel `json:"match_level"            db:"match_level"`
	MatchConfidence int        `json:"match_confidence"       db:"match_confidence"`

	ShippingMiles      float64  `json:"shipping_miles"       db:"shipping_miles"`
	ShippingCost       int      `json:"shipping_cost"        db:"shipping_cost"`
	ReconCost          int      `json:"recon_cost"           db:"recon_cost"`
	PackCost           int      `json:"pack_cost"            db:"pack_cost"`
	TotalCost          int      `json:"total_cost"           db:"total_cost"`
	GrossMarginDollars int      `json:"gross_margin_dollars" db:"gross_margin_dollars"`
	MarginPercent      float64  `json:"margin_percent"       db:"margin_percent"`
	Category           Category `json:"category"             db:"category"`

	Explanations json.RawMessage `json:"explanations,omitempty" db:"explanations"`
	ScoredAt     time.Time       `json:"scored_at"              db:"scored_at"`
}
