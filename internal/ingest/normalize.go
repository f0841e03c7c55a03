package ingest

import (
	"encoding/json"
	"strconv"
	"strings"

	domain "autoprofit/pkg/types"
)

// SourceAutotrader is the source tag for listings ingested from the
// Autotrader scraper.
const SourceAutotrader = "apify_autotrader"

// NormalizeAutotraderItem maps one raw scraper item into a Listing.
// Scraper payloads are inconsistent across actor versions, so each field
// falls back through the known key aliases; prices and mileages arrive as
// numbers or as formatted strings ("$12,500", "45,210 mi"). The original
// payload is preserved verbatim in Raw.
//
// A listing missing its VIN or price is unusable downstream; Usable reports
// that gate.
func NormalizeAutotraderItem(raw json.RawMessage) (*domain.Listing, error) {
	var item map[string]any
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}

	l := &domain.Listing{
		VIN:        firstString(item, "vin", "VIN"),
		Year:       firstInt(item, "year"),
		Make:       firstString(item, "make", "brand"),
		Model:      firstString(item, "model"),
		Trim:       firstString(item, "trim"),
		Price:      firstInt(item, "price", "listingPrice", "currentPrice"),
		BodyStyle:  firstString(item, "bodyStyle", "body_style", "vehicleStyle"),
		Zip:        firstString(item, "zip", "postalCode", "postal_code"),
		Location:   firstString(item, "location", "cityState", "city_state"),
		Phone:      firstString(item, "phone", "ownerPhone", "sellerPhone"),
		Seller:     firstString(item, "seller", "sellerName", "ownerTitle"),
		SellerType: firstString(item, "sellerType"),
		URL:        firstString(item, "url", "detailUrl", "listingUrl"),
		Source:     SourceAutotrader,
		Raw:        raw,
	}

	if m := firstIntPtr(item, "mileage", "odometer"); m != nil {
		l.Mileage = m
	}
	if lat := firstFloat(item, "lat", "latitude"); lat != nil {
		l.Lat = lat
	}
	if lon := firstFloat(item, "lon", "longitude", "lng"); lon != nil {
		l.Lon = lon
	}

	return l, nil
}

// Usable reports whether a normalized listing carries the minimum fields
// for ingestion (VIN and a positive price).
func Usable(l *domain.Listing) bool {
	return l.VIN != "" && l.Price > 0
}

func firstString(item map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := item[k]; ok && v != nil {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func firstInt(item map[string]any, keys ...string) int {
	if p := firstIntPtr(item, keys...); p != nil {
		return *p
	}
	return 0
}

func firstIntPtr(item map[string]any, keys ...string) *int {
	for _, k := range keys {
		v, ok := item[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			i := int(n)
			return &i
		case string:
			if i, ok := digitsToInt(n); ok {
				return &i
			}
		}
	}
	return nil
}

func firstFloat(item map[string]any, keys ...string) *float64 {
	for _, k := range keys {
		v, ok := item[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			f := n
			return &f
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// digitsToInt strips every non-digit character and parses the remainder,
// so "$12,500" and "45,210 mi" both parse.
func digitsToInt(s string) (int, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	i, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return i, true
}
