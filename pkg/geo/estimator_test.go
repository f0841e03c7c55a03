package geo

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "autoprofit/pkg/types"
)

// fakeGeocoder resolves from a fixed table and records queries.
type fakeGeocoder struct {
	coords  map[string]Coord
	err     error
	queries []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, location string) (Coord, bool, error) {
	f.queries = append(f.queries, location)
	if f.err != nil {
		return Coord{}, false, f.err
	}
	c, ok := f.coords[location]
	return c, ok, nil
}

func ptrf(v float64) *float64 { return &v }

func TestEstimator_Estimate(t *testing.T) {
	t.Parallel()

	dest := Coord{Lat: 40.117802, Lon: -83.135870}

	t.Run("direct coordinates win", func(t *testing.T) {
		t.Parallel()
		g := &fakeGeocoder{}
		e := NewEstimator(dest, 0.80, g)

		est := e.Estimate(context.Background(), &domain.Listing{
			Lat: ptrf(40.7128), Lon: ptrf(-74.0060),
			Zip: "10001",
		})

		assert.False(t, est.Unknown)
		assert.Greater(t, est.Miles, 400.0)
		assert.InDelta(t, est.Miles*0.80, est.Cost, 1e-9)
		assert.Empty(t, g.queries, "geocoder must not be consulted")
	})

	t.Run("zip geocode second", func(t *testing.T) {
		t.Parallel()
		g := &fakeGeocoder{coords: map[string]Coord{
			"43017": {Lat: 40.1, Lon: -83.1},
		}}
		e := NewEstimator(dest, 0.80, g)

		est := e.Estimate(context.Background(), &domain.Listing{Zip: "43017"})

		assert.False(t, est.Unknown)
		assert.Equal(t, []string{"43017"}, g.queries)
	})

	t.Run("location text third", func(t *testing.T) {
		t.Parallel()
		g := &fakeGeocoder{coords: map[string]Coord{
			"Columbus, OH": {Lat: 39.96, Lon: -83.0},
		}}
		e := NewEstimator(dest, 0.80, g)

		est := e.Estimate(context.Background(), &domain.Listing{
			Zip:      "00000",
			Location: "Columbus, OH",
		})

		assert.False(t, est.Unknown)
		assert.Equal(t, []string{"00000", "Columbus, OH"}, g.queries)
	})

	t.Run("phone area code fourth", func(t *testing.T) {
		t.Parallel()
		e := NewEstimator(dest, 0.80, &fakeGeocoder{})

		est := e.Estimate(context.Background(), &domain.Listing{Phone: "(201) 555-0147"})

		assert.False(t, est.Unknown)
		assert.Greater(t, est.Miles, 0.0)
	})

	t.Run("raw payload phone as last resort", func(t *testing.T) {
		t.Parallel()
		e := NewEstimator(dest, 0.80, &fakeGeocoder{})

		raw, _ := json.Marshal(map[string]string{"ownerPhone": "2015550147"})
		est := e.Estimate(context.Background(), &domain.Listing{Raw: raw})

		assert.False(t, est.Unknown)
	})

	t.Run("geocoder error falls through", func(t *testing.T) {
		t.Parallel()
		g := &fakeGeocoder{err: errors.New("connection refused")}
		e := NewEstimator(dest, 0.80, g)

		est := e.Estimate(context.Background(), &domain.Listing{
			Zip:   "43017",
			Phone: "2015550147",
		})

		assert.False(t, est.Unknown, "area code should still resolve")
	})

	t.Run("nothing resolvable is unknown", func(t *testing.T) {
		t.Parallel()
		e := NewEstimator(dest, 0.80, &fakeGeocoder{})

		est := e.Estimate(context.Background(), &domain.Listing{})

		assert.True(t, est.Unknown)
		assert.Zero(t, est.Miles)
		assert.Zero(t, est.Cost)
	})

	t.Run("nil geocoder skips lookups", func(t *testing.T) {
		t.Parallel()
		e := NewEstimator(dest, 0.80, nil)

		est := e.Estimate(context.Background(), &domain.Listing{Zip: "43017"})

		assert.True(t, est.Unknown)
	})
}
