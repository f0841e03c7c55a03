// Package store defines the datastore abstraction for autoprofit.
// Business logic depends on the Store interface, never on concrete
// implementations; the matcher and trim mapper consume narrow slices of it.
package store

import (
	"context"

	domain "autoprofit/pkg/types"
)

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	Make     *string
	Model    *string
	Year     *int
	MinPrice *int
	MaxPrice *int
	Source   *string
	Limit    int // default 50
	Offset   int
	OrderBy  string // "price", "ingested_at"
}

// MatchQuery defines optional filters for match result queries.
type MatchQuery struct {
	Category     *string
	Level        *string
	MinMarginPct *float64
	Limit        int // default 50
	Offset       int
	OrderBy      string // "margin_percent", "scored_at"
}

// Store defines all data access operations for autoprofit.
//
// Appraisal and trim reference data is read-only here: it is owned by an
// external curation workflow. AppraisalsByYMMT/AppraisalsByYMM return rows
// in insertion order, which the matcher relies on as a stable tie-break.
type Store interface {
	// Listings
	UpsertListing(ctx context.Context, l *domain.Listing) error
	GetListingByVIN(ctx context.Context, vin string) (*domain.Listing, error)
	GetListingByID(ctx context.Context, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, opts *ListingQuery) ([]domain.Listing, int, error)

	// Appraisals (satisfies match.Source)
	AppraisalsByYMMT(ctx context.Context, year int, make, model, trimText string) ([]domain.Appraisal, error)
	AppraisalsByYMM(ctx context.Context, year int, make, model string) ([]domain.Appraisal, error)
	AllAppraisals(ctx context.Context) ([]domain.Appraisal, error)

	// Trim reference data (satisfies trim.Source)
	CandidateTrims(ctx context.Context, make, model string, year int) ([]domain.CanonicalTrim, error)
	AliasesFor(ctx context.Context, canonicalIDs []string) ([]domain.TrimAlias, error)

	// Match results
	UpsertMatchResult(ctx context.Context, r *domain.MatchResult) error
	GetMatchResultByListing(ctx context.Context, listingID string) (*domain.MatchResult, error)
	ListMatchResults(ctx context.Context, opts *MatchQuery) ([]domain.MatchResult, int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
