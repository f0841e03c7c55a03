package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Geocoder converts a zip code or free-text location into coordinates.
// found=false with a nil error means the query produced no usable result;
// errors cover transport failures. Callers treat both as "source
// unavailable" and fall through to the next resolution method.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (coord Coord, found bool, err error)
}

// HTTPGeocoder implements Geocoder against Zippopotam.us for 5-digit zips
// with a Nominatim free-text fallback.
type HTTPGeocoder struct {
	client       *http.Client
	zipLookupURL string
	nominatimURL string
	userAgent    string
	limiter      *rate.Limiter
}

// GeocoderOption configures the HTTPGeocoder.
type GeocoderOption func(*HTTPGeocoder)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) GeocoderOption {
	return func(g *HTTPGeocoder) {
		g.client = hc
	}
}

// WithZipLookupURL overrides the Zippopotam.us endpoint.
func WithZipLookupURL(u string) GeocoderOption {
	return func(g *HTTPGeocoder) {
		g.zipLookupURL = u
	}
}

// WithNominatimURL overrides the Nominatim search endpoint.
func WithNominatimURL(u string) GeocoderOption {
	return func(g *HTTPGeocoder) {
		g.nominatimURL = u
	}
}

// WithUserAgent sets the User-Agent sent to Nominatim, which requires one.
func WithUserAgent(ua string) GeocoderOption {
	return func(g *HTTPGeocoder) {
		g.userAgent = ua
	}
}

// WithRateLimit caps Nominatim request frequency. Their usage policy allows
// at most one request per second from anonymous clients.
func WithRateLimit(perSecond float64) GeocoderOption {
	return func(g *HTTPGeocoder) {
		g.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// NewHTTPGeocoder creates a geocoder with a bounded per-attempt timeout.
func NewHTTPGeocoder(opts ...GeocoderOption) *HTTPGeocoder {
	g := &HTTPGeocoder{
		client:       &http.Client{Timeout: 10 * time.Second},
		zipLookupURL: "https://api.zippopotam.us/us",
		nominatimURL: "https://nominatim.openstreetmap.org/search",
		userAgent:    "autoprofit/1.0",
		limiter:      rate.NewLimiter(rate.Limit(1), 1),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Geocode resolves a US zip code or city/state text to coordinates.
// Zip lookups that miss fall through to the free-text search.
func (g *HTTPGeocoder) Geocode(ctx context.Context, location string) (Coord, bool, error) {
	location = strings.TrimSpace(location)
	if len(location) < 2 {
		return Coord{}, false, nil
	}

	if isZip(location) {
		if coord, found, err := g.lookupZip(ctx, location); err == nil && found {
			return coord, true, nil
		}
	}

	return g.searchFreeText(ctx, location)
}

func (g *HTTPGeocoder) lookupZip(ctx context.Context, zip string) (Coord, bool, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, g.zipLookupURL+"/"+zip, http.NoBody,
	)
	if err != nil {
		return Coord{}, false, fmt.Errorf("creating zip lookup request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Coord{}, false, fmt.Errorf("zip lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coord{}, false, nil
	}

	var body struct {
		Places []struct {
			Latitude  string `json:"latitude"`
			Longitude string `json:"longitude"`
		} `json:"places"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Coord{}, false, fmt.Errorf("decoding zip lookup response: %w", err)
	}
	if len(body.Places) == 0 {
		return Coord{}, false, nil
	}

	return parseCoord(body.Places[0].Latitude, body.Places[0].Longitude)
}

func (g *HTTPGeocoder) searchFreeText(ctx context.Context, location string) (Coord, bool, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return Coord{}, false, fmt.Errorf("geocode rate limit: %w", err)
		}
	}

	params := url.Values{}
	params.Set("q", location+", United States")
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("countrycodes", "us")

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, g.nominatimURL+"?"+params.Encode(), http.NoBody,
	)
	if err != nil {
		return Coord{}, false, fmt.Errorf("creating geocode request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return Coord{}, false, fmt.Errorf("free-text geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coord{}, false, nil
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Coord{}, false, fmt.Errorf("decoding geocode response: %w", err)
	}
	if len(results) == 0 {
		return Coord{}, false, nil
	}

	return parseCoord(results[0].Lat, results[0].Lon)
}

func parseCoord(latS, lonS string) (Coord, bool, error) {
	lat, err := strconv.ParseFloat(latS, 64)
	if err != nil {
		return Coord{}, false, fmt.Errorf("parsing latitude %q: %w", latS, err)
	}
	lon, err := strconv.ParseFloat(lonS, 64)
	if err != nil {
		return Coord{}, false, fmt.Errorf("parsing longitude %q: %w", lonS, err)
	}
	return Coord{Lat: lat, Lon: lon}, true, nil
}

func isZip(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
