// Package geo resolves a listing's origin coordinates and turns them into
// a great-circle shipping estimate. Resolution sources are layered:
// direct coordinates, zip geocoding, free-text geocoding, and finally a
// phone area-code centroid.
package geo

import "math"

// earthRadiusMiles is the mean Earth radius used for haversine distances.
const earthRadiusMiles = 3958.8

// Coord is a latitude/longitude pair in degrees.
type Coord struct {
	Lat float64
	Lon float64
}

// HaversineMiles returns the great-circle distance between two points.
func HaversineMiles(a, b Coord) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dPhi := radians(b.Lat - a.Lat)
	dLambda := radians(b.Lon - a.Lon)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMiles * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// AreaCodeCentroid returns the approximate center for a North American
// area code.
func AreaCodeCentroid(code string) (Coord, bool) {
	c, ok := areaCodeCentroids[code]
	return c, ok
}
