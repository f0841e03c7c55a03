package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Listing queries.
const (
	queryUpsertListing = `
		INSERT INTO listings (
			id, vin, year, make, model, trim,
			price, mileage, body_style,
			lat, lon, zip, location, phone,
			seller_type, seller, url, source, raw, ingested_at
		) VALUES (
			@id, @vin, @year, @make, @model, @trim,
			@price, @mileage, @body_style,
			@lat, @lon, @zip, @location, @phone,
			@seller_type, @seller, @url, @source, @raw, now()
		)
		ON CONFLICT (vin) DO UPDATE SET
			year = EXCLUDED.year,
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			trim = EXCLUDED.trim,
			price = EXCLUDED.price,
			mileage = EXCLUDED.mileage,
			body_style = EXCLUDED.body_style,
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			zip = EXCLUDED.zip,
			location = EXCLUDED.location,
			phone = EXCLUDED.phone,
			seller_type = EXCLUDED.seller_type,
			seller = EXCLUDED.seller,
			url = EXCLUDED.url,
			source = EXCLUDED.source,
			raw = EXCLUDED.raw,
			ingested_at = now()
		RETURNING id, ingested_at`

	queryGetListingByVIN = baseListingsSelect + `
		WHERE vin = $1`

	queryGetListingByID = baseListingsSelect + `
		WHERE id = $1`
)

// Appraisal queries. Matching on make/model/trim is case-insensitive, and
// ordering by seq (insertion order) keeps first-row tie-breaks stable.
const (
	baseAppraisalsSelect = `SELECT id, year, make, model, trim,
		benchmark_price, avg_mileage, COALESCE(notes, ''), updated_at
	FROM appraisals`

	queryAppraisalsByYMMT = baseAppraisalsSelect + `
		WHERE year = $1
		  AND LOWER(make) = LOWER($2)
		  AND LOWER(model) = LOWER($3)
		  AND LOWER(trim) = LOWER($4)
		ORDER BY seq`

	queryAppraisalsByYMM = baseAppraisalsSelect + `
		WHERE year = $1
		  AND LOWER(make) = LOWER($2)
		  AND LOWER(model) = LOWER($3)
		  AND trim IS NULL
		ORDER BY seq`

	queryAllAppraisals = baseAppraisalsSelect + `
		ORDER BY seq`
)

// Trim reference queries. Only active rows feed the mapper.
const (
	queryCandidateTrims = `
		SELECT id, make, model, year_start, year_end, canonical_trim, active, updated_at
		FROM canonical_trims
		WHERE LOWER(make) = LOWER($1)
		  AND LOWER(model) = LOWER($2)
		  AND year_start <= $3
		  AND year_end >= $3
		  AND active = true
		ORDER BY canonical_trim`

	queryAliasesFor = `
		SELECT id, canonical_id, alias, pattern_type, priority, active
		FROM trim_aliases
		WHERE canonical_id = ANY($1)
		  AND active = true
		ORDER BY priority, id`
)

// Match result queries. The unique constraint on listing_id enforces the
// one-live-result-per-listing rule; rescoring replaces in place.
const (
	queryUpsertMatchResult = `
		INSERT INTO matches (
			id, listing_id, appraisal_id, match_level, match_confidence,
			shipping_miles, shipping_cost, recon_cost, pack_cost, total_cost,
			gross_margin_dollars, margin_percent, category, explanations, scored_at
		) VALUES (
			@id, @listing_id, @appraisal_id, @match_level, @match_confidence,
			@shipping_miles, @shipping_cost, @recon_cost, @pack_cost, @total_cost,
			@gross_margin_dollars, @margin_percent, @category, @explanations, now()
		)
		ON CONFLICT (listing_id) DO UPDATE SET
			appraisal_id = EXCLUDED.appraisal_id,
			match_level = EXCLUDED.match_level,
			match_confidence = EXCLUDED.match_confidence,
			shipping_miles = EXCLUDED.shipping_miles,
			shipping_cost = EXCLUDED.shipping_cost,
			recon_cost = EXCLUDED.recon_cost,
			pack_cost = EXCLUDED.pack_cost,
			total_cost = EXCLUDED.total_cost,
			gross_margin_dollars = EXCLUDED.gross_margin_dollars,
			margin_percent = EXCLUDED.margin_percent,
			category = EXCLUDED.category,
			explanations = EXCLUDED.explanations,
			scored_at = now()
		RETURNING id, scored_at`

	queryGetMatchResultByListing = baseMatchesSelect + `
		WHERE listing_id = $1`
)
