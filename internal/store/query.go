package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// validListingOrderBy maps allowed OrderBy values to their SQL expressions.
var validListingOrderBy = map[string]string{
	"price":       "price ASC",
	"ingested_at": "ingested_at DESC",
	"year":        "year DESC",
}

const defaultListingOrderBy = "ingested_at DESC"

// validMatchOrderBy maps allowed OrderBy values for match result queries.
var validMatchOrderBy = map[string]string{
	"margin_percent": "margin_percent DESC",
	"scored_at":      "scored_at DESC",
}

const defaultMatchOrderBy = "margin_percent DESC"

const baseListingsSelect = `SELECT id, vin, year, make, model, COALESCE(trim, ''),
	price, mileage, COALESCE(body_style, ''),
	lat, lon, COALESCE(zip, ''), COALESCE(location, ''), COALESCE(phone, ''),
	COALESCE(seller_type, ''), COALESCE(seller, ''), url, source, raw, ingested_at
FROM listings`

const countListingsSelect = "SELECT COUNT(*) FROM listings"

const baseMatchesSelect = `SELECT id, listing_id, appraisal_id, match_level, match_confidence,
	shipping_miles, shipping_cost, recon_cost, pack_cost, total_cost,
	gross_margin_dollars, margin_percent, category, explanations, scored_at
FROM matches`

const countMatchesSelect = "SELECT COUNT(*) FROM matches"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a listing
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *ListingQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Make != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(make) = LOWER($%d)", paramIdx))
		args = append(args, *q.Make)
		paramIdx++
	}

	if q.Model != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(model) = LOWER($%d)", paramIdx))
		args = append(args, *q.Model)
		paramIdx++
	}

	if q.Year != nil {
		conditions = append(conditions, fmt.Sprintf("year = $%d", paramIdx))
		args = append(args, *q.Year)
		paramIdx++
	}

	if q.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price >= $%d", paramIdx))
		args = append(args, *q.MinPrice)
		paramIdx++
	}

	if q.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", paramIdx))
		args = append(args, *q.MaxPrice)
		paramIdx++
	}

	if q.Source != nil {
		conditions = append(conditions, fmt.Sprintf("source = $%d", paramIdx))
		args = append(args, *q.Source)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultListingOrderBy
	if q.OrderBy != "" {
		if col, ok := validListingOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseListingsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, args
}

// ToSQL builds the data and count SQL for a match result query.
func (q *MatchQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIdx))
		args = append(args, *q.Category)
		paramIdx++
	}

	if q.Level != nil {
		conditions = append(conditions, fmt.Sprintf("match_level = $%d", paramIdx))
		args = append(args, *q.Level)
		paramIdx++
	}

	if q.MinMarginPct != nil {
		conditions = append(conditions, fmt.Sprintf("margin_percent >= $%d", paramIdx))
		args = append(args, *q.MinMarginPct)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultMatchOrderBy
	if q.OrderBy != "" {
		if col, ok := validMatchOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseMatchesSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countMatchesSelect + whereClause

	return dataSQL, countSQL, args
}
