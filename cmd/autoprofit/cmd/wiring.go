package cmd

import (
	"context"
	"log/slog"
	"net/http"

	"autoprofit/internal/config"
	"autoprofit/internal/engine"
	"autoprofit/internal/ingest"
	"autoprofit/internal/store"
	"autoprofit/pkg/geo"
	"autoprofit/pkg/match"
	"autoprofit/pkg/scorer"
	"autoprofit/pkg/trim"
)

// buildEngine assembles the full pipeline against a connected store. The
// caller owns closing the returned PostgresStore.
func buildEngine(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
) (*engine.Engine, *store.PostgresStore, error) {
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, nil, err
	}

	geocoder := geo.NewHTTPGeocoder(
		geo.WithHTTPClient(&http.Client{Timeout: cfg.Shipping.GeocodeTimeout}),
		geo.WithZipLookupURL(cfg.Shipping.ZipLookupURL),
		geo.WithNominatimURL(cfg.Shipping.NominatimURL),
		geo.WithUserAgent(cfg.Shipping.UserAgent),
		geo.WithRateLimit(cfg.Shipping.GeocodePerSecond),
	)
	estimator := geo.NewEstimator(
		geo.Coord{Lat: cfg.Shipping.DestLat, Lon: cfg.Shipping.DestLon},
		cfg.Shipping.RatePerMile,
		geocoder,
		geo.WithLogger(log),
	)

	mapper := trim.NewMapper(st,
		trim.WithFuzzyMin(cfg.Matching.TrimFuzzyMin),
		trim.WithCacheTTL(cfg.Matching.CacheTTL),
	)
	matcher := match.NewMatcher(st, mapper,
		match.WithLogger(log),
		match.WithFuzzyAcceptMin(cfg.Matching.FuzzyAcceptMin),
		match.WithCanonicalMinConfidence(cfg.Matching.CanonicalMinConfidence),
	)

	apify := ingest.NewApifyClient(cfg.Apify.Token, cfg.Apify.ActorID,
		ingest.WithBaseURL(cfg.Apify.BaseURL),
	)

	eng := engine.NewEngine(
		st,
		apify,
		matcher,
		scorer.NewEngine(estimator),
		config.NewStore(cfg),
		engine.WithLogger(log),
	)

	return eng, st, nil
}
