package geo

import (
	"context"
	"log/slog"

	domain "autoprofit/pkg/types"
)

// Estimate is the outcome of a shipping cost estimate. Unknown marks the
// zero values as placeholders: no origin could be resolved, as opposed to
// a genuinely zero-distance listing.
type Estimate struct {
	Miles   float64
	Cost    float64
	Unknown bool
}

// Estimator computes shipping estimates from a listing's best available
// origin signal to a fixed destination.
type Estimator struct {
	dest        Coord
	ratePerMile float64
	geocoder    Geocoder
	log         *slog.Logger
}

// EstimatorOption configures the Estimator.
type EstimatorOption func(*Estimator)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EstimatorOption {
	return func(e *Estimator) {
		e.log = l
	}
}

// NewEstimator creates an Estimator shipping to dest at ratePerMile.
// geocoder may be nil, in which case only direct coordinates and area
// codes resolve.
func NewEstimator(dest Coord, ratePerMile float64, geocoder Geocoder, opts ...EstimatorOption) *Estimator {
	e := &Estimator{
		dest:        dest,
		ratePerMile: ratePerMile,
		geocoder:    geocoder,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate resolves the listing's origin, first available source wins:
// direct lat/lon, zip geocode, free-text location geocode, then phone
// area-code centroid (the phone field first, the raw payload second).
// Geocoding failures are logged and treated as "source unavailable".
func (e *Estimator) Estimate(ctx context.Context, l *domain.Listing) Estimate {
	if l.Lat != nil && l.Lon != nil {
		return e.fromCoord(Coord{Lat: *l.Lat, Lon: *l.Lon})
	}

	if l.Zip != "" {
		if coord, ok := e.geocode(ctx, l.Zip); ok {
			return e.fromCoord(coord)
		}
	}

	if l.Location != "" {
		if coord, ok := e.geocode(ctx, l.Location); ok {
			return e.fromCoord(coord)
		}
	}

	for _, phone := range []string{l.Phone, l.RawPhone()} {
		if phone == "" {
			continue
		}
		if code := ExtractAreaCode(phone); code != "" {
			if coord, ok := AreaCodeCentroid(code); ok {
				return e.fromCoord(coord)
			}
		}
	}

	return Estimate{Unknown: true}
}

func (e *Estimator) fromCoord(origin Coord) Estimate {
	miles := HaversineMiles(origin, e.dest)
	return Estimate{Miles: miles, Cost: miles * e.ratePerMile}
}

func (e *Estimator) geocode(ctx context.Context, query string) (Coord, bool) {
	if e.geocoder == nil {
		return Coord{}, false
	}
	coord, found, err := e.geocoder.Geocode(ctx, query)
	if err != nil {
		e.log.Warn("geocoding failed", "query", query, "error", err)
		return Coord{}, false
	}
	return coord, found
}
