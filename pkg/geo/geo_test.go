package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMiles(t *testing.T) {
	t.Parallel()

	nyc := Coord{Lat: 40.7128, Lon: -74.0060}
	la := Coord{Lat: 34.0522, Lon: -118.2437}

	t.Run("known city pair", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 2445, HaversineMiles(nyc, la), 10)
	})

	t.Run("zero distance", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, HaversineMiles(nyc, nyc))
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, HaversineMiles(nyc, la), HaversineMiles(la, nyc), 1e-9)
	})
}

func TestAreaCodeCentroid(t *testing.T) {
	t.Parallel()

	t.Run("known code", func(t *testing.T) {
		t.Parallel()
		c, ok := AreaCodeCentroid("201")
		assert.True(t, ok)
		assert.InDelta(t, 40.7589, c.Lat, 0.001)
		assert.InDelta(t, -74.0758, c.Lon, 0.001)
	})

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()
		_, ok := AreaCodeCentroid("999")
		assert.False(t, ok)
	})
}
