package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "autoprofit/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertListing inserts or updates a listing keyed by VIN. The listing's ID
// and IngestedAt are populated from the database row; re-observing a VIN
// keeps its original ID.
func (s *PostgresStore) UpsertListing(ctx context.Context, l *domain.Listing) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	args := pgx.NamedArgs{
		"id":          l.ID,
		"vin":         l.VIN,
		"year":        l.Year,
		"make":        l.Make,
		"model":       l.Model,
		"trim":        nullIfEmpty(l.Trim),
		"price":       l.Price,
		"mileage":     l.Mileage,
		"body_style":  nullIfEmpty(l.BodyStyle),
		"lat":         l.Lat,
		"lon":         l.Lon,
		"zip":         nullIfEmpty(l.Zip),
		"location":    nullIfEmpty(l.Location),
		"phone":       nullIfEmpty(l.Phone),
		"seller_type": nullIfEmpty(l.SellerType),
		"seller":      nullIfEmpty(l.Seller),
		"url":         l.URL,
		"source":      l.Source,
		"raw":         []byte(l.Raw),
	}

	return s.pool.QueryRow(ctx, queryUpsertListing, args).Scan(&l.ID, &l.IngestedAt)
}

// GetListingByVIN retrieves a listing by its VIN.
func (s *PostgresStore) GetListingByVIN(ctx context.Context, vin string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListingByVIN, vin), l); err != nil {
		return nil, err
	}
	return l, nil
}

// GetListingByID retrieves a listing by its internal UUID.
func (s *PostgresStore) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListingByID, id), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	opts *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, 0, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, total, nil
}

// AppraisalsByYMMT returns appraisals matching year/make/model/trim, with
// make, model, and trim compared case-insensitively, in insertion order.
func (s *PostgresStore) AppraisalsByYMMT(
	ctx context.Context,
	year int,
	make, model, trimText string,
) ([]domain.Appraisal, error) {
	return s.queryAppraisals(ctx, queryAppraisalsByYMMT, year, make, model, trimText)
}

// AppraisalsByYMM returns trim-less appraisals for a year/make/model, in
// insertion order.
func (s *PostgresStore) AppraisalsByYMM(
	ctx context.Context,
	year int,
	make, model string,
) ([]domain.Appraisal, error) {
	return s.queryAppraisals(ctx, queryAppraisalsByYMM, year, make, model)
}

// AllAppraisals returns every appraisal, in insertion order.
func (s *PostgresStore) AllAppraisals(ctx context.Context) ([]domain.Appraisal, error) {
	return s.queryAppraisals(ctx, queryAllAppraisals)
}

// CandidateTrims returns active canonical trims whose make/model match
// case-insensitively and whose year range covers the given year.
func (s *PostgresStore) CandidateTrims(
	ctx context.Context,
	make, model string,
	year int,
) ([]domain.CanonicalTrim, error) {
	rows, err := s.pool.Query(ctx, queryCandidateTrims, make, model, year)
	if err != nil {
		return nil, fmt.Errorf("querying canonical trims: %w", err)
	}
	defer rows.Close()

	var trims []domain.CanonicalTrim
	for rows.Next() {
		var t domain.CanonicalTrim
		if err := rows.Scan(
			&t.ID, &t.Make, &t.Model, &t.YearStart, &t.YearEnd,
			&t.CanonicalTrim, &t.Active, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning canonical trim: %w", err)
		}
		trims = append(trims, t)
	}

	return trims, rows.Err()
}

// AliasesFor returns active aliases for the given canonical trim IDs,
// ordered by priority.
func (s *PostgresStore) AliasesFor(
	ctx context.Context,
	canonicalIDs []string,
) ([]domain.TrimAlias, error) {
	if len(canonicalIDs) == 0 {
		return nil, nil
	}

	rows, err := s.pool.Query(ctx, queryAliasesFor, canonicalIDs)
	if err != nil {
		return nil, fmt.Errorf("querying trim aliases: %w", err)
	}
	defer rows.Close()

	var aliases []domain.TrimAlias
	for rows.Next() {
		var a domain.TrimAlias
		if err := rows.Scan(
			&a.ID, &a.CanonicalID, &a.Alias, &a.PatternType, &a.Priority, &a.Active,
		); err != nil {
			return nil, fmt.Errorf("scanning trim alias: %w", err)
		}
		aliases = append(aliases, a)
	}

	return aliases, rows.Err()
}

// UpsertMatchResult inserts or replaces the match result for a listing.
func (s *PostgresStore) UpsertMatchResult(ctx context.Context, r *domain.MatchResult) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	args := pgx.NamedArgs{
		"id":                   r.ID,
		"listing_id":           r.ListingID,
		"appraisal_id":         r.AppraisalID,
		"match_level":          string(r.MatchLevel),
		"match_confidence":     r.MatchConfidence,
		"shipping_miles":       r.ShippingMiles,
		"shipping_cost":        r.ShippingCost,
		"recon_cost":           r.ReconCost,
		"pack_cost":            r.PackCost,
		"total_cost":           r.TotalCost,
		"gross_margin_dollars": r.GrossMarginDollars,
		"margin_percent":       r.MarginPercent,
		"category":             string(r.Category),
		"explanations":         []byte(r.Explanations),
	}

	return s.pool.QueryRow(ctx, queryUpsertMatchResult, args).Scan(&r.ID, &r.ScoredAt)
}

// GetMatchResultByListing retrieves the live match result for a listing.
func (s *PostgresStore) GetMatchResultByListing(
	ctx context.Context,
	listingID string,
) (*domain.MatchResult, error) {
	r := &domain.MatchResult{}
	if err := scanMatchResult(s.pool.QueryRow(ctx, queryGetMatchResultByListing, listingID), r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListMatchResults queries match results with optional filters, returning
// results and total count.
func (s *PostgresStore) ListMatchResults(
	ctx context.Context,
	opts *MatchQuery,
) ([]domain.MatchResult, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting match results: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying match results: %w", err)
	}
	defer rows.Close()

	var results []domain.MatchResult
	for rows.Next() {
		var r domain.MatchResult
		if err := scanMatchResult(rows, &r); err != nil {
			return nil, 0, fmt.Errorf("scanning match result: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating match results: %w", err)
	}

	return results, total, nil
}

// queryAppraisals is a helper for appraisal queries.
func (s *PostgresStore) queryAppraisals(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Appraisal, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying appraisals: %w", err)
	}
	defer rows.Close()

	var apps []domain.Appraisal
	for rows.Next() {
		var a domain.Appraisal
		if err := rows.Scan(
			&a.ID, &a.Year, &a.Make, &a.Model, &a.Trim,
			&a.BenchmarkPrice, &a.AvgMileage, &a.Notes, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning appraisal: %w", err)
		}
		apps = append(apps, a)
	}

	return apps, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanListing scans a full listing row.
func scanListing(row scannable, l *domain.Listing) error {
	return row.Scan(
		&l.ID, &l.VIN, &l.Year, &l.Make, &l.Model, &l.Trim,
		&l.Price, &l.Mileage, &l.BodyStyle,
		&l.Lat, &l.Lon, &l.Zip, &l.Location, &l.Phone,
		&l.SellerType, &l.Seller, &l.URL, &l.Source, &l.Raw, &l.IngestedAt,
	)
}

// scanMatchResult scans a full match result row.
func scanMatchResult(row scannable, r *domain.MatchResult) error {
	return row.Scan(
		&r.ID, &r.ListingID, &r.AppraisalID, &r.MatchLevel, &r.MatchConfidence,
		&r.ShippingMiles, &r.ShippingCost, &r.ReconCost, &r.PackCost, &r.TotalCost,
		&r.GrossMarginDollars, &r.MarginPercent, &r.Category, &r.Explanations, &r.ScoredAt,
	)
}

// nullIfEmpty maps "" to SQL NULL so optional text columns stay NULL
// instead of accumulating empty strings.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
