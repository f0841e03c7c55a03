package ingest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "autoprofit/pkg/types"
)

func TestNormalizeAutotraderItem(t *testing.T) {
	t.Parallel()

	t.Run("canonical keys", func(t *testing.T) {
		t.Parallel()
		raw := json.RawMessage(`{
			"vin": "1HGFC2F59LA000001",
			"year": 2020,
			"make": "Honda",
			"model": "Civic",
			"trim": "Sport",
			"price": 18500,
			"mileage": 42000,
			"bodyStyle": "Sedan",
			"lat": 39.96,
			"lon": -83.0,
			"zip": "43017",
			"location": "Columbus, OH",
			"phone": "(614) 555-0147",
			"seller": "Example Motors",
			"sellerType": "Dealer",
			"url": "https://example.com/listing/1"
		}`)

		l, err := NormalizeAutotraderItem(raw)
		require.NoError(t, err)

		assert.Equal(t, "1HGFC2F59LA000001", l.VIN)
		assert.Equal(t, 2020, l.Year)
		assert.Equal(t, "Honda", l.Make)
		assert.Equal(t, "Civic", l.Model)
		assert.Equal(t, "Sport", l.Trim)
		assert.Equal(t, 18500, l.Price)
		require.NotNil(t, l.Mileage)
		assert.Equal(t, 42000, *l.Mileage)
		assert.Equal(t, "Sedan", l.BodyStyle)
		require.NotNil(t, l.Lat)
		assert.InDelta(t, 39.96, *l.Lat, 1e-9)
		assert.Equal(t, "43017", l.Zip)
		assert.Equal(t, "Columbus, OH", l.Location)
		assert.Equal(t, SourceAutotrader, l.Source)
		assert.JSONEq(t, string(raw), string(l.Raw), "original payload preserved")
	})

	t.Run("alias keys", func(t *testing.T) {
		t.Parallel()
		raw := json.RawMessage(`{
			"VIN": "WBA5R1C08LF000002",
			"year": 2020,
			"brand": "BMW",
			"model": "330i",
			"listingPrice": 31000,
			"odometer": 12000,
			"vehicleStyle": "Sedan",
			"latitude": 40.0,
			"lng": -82.9,
			"postalCode": "43215",
			"cityState": "Columbus, OH",
			"ownerPhone": "6145550147",
			"sellerName": "Example BMW",
			"detailUrl": "https://example.com/listing/2"
		}`)

		l, err := NormalizeAutotraderItem(raw)
		require.NoError(t, err)

		assert.Equal(t, "WBA5R1C08LF000002", l.VIN)
		assert.Equal(t, "BMW", l.Make)
		assert.Equal(t, 31000, l.Price)
		require.NotNil(t, l.Mileage)
		assert.Equal(t, 12000, *l.Mileage)
		assert.Equal(t, "Sedan", l.BodyStyle)
		require.NotNil(t, l.Lon)
		assert.InDelta(t, -82.9, *l.Lon, 1e-9)
		assert.Equal(t, "43215", l.Zip)
		assert.Equal(t, "6145550147", l.Phone)
		assert.Equal(t, "Example BMW", l.Seller)
		assert.Equal(t, "https://example.com/listing/2", l.URL)
	})

	t.Run("formatted strings parse", func(t *testing.T) {
		t.Parallel()
		raw := json.RawMessage(`{
			"vin": "X",
			"price": "$12,500",
			"mileage": "45,210 mi"
		}`)

		l, err := NormalizeAutotraderItem(raw)
		require.NoError(t, err)

		assert.Equal(t, 12500, l.Price)
		require.NotNil(t, l.Mileage)
		assert.Equal(t, 45210, *l.Mileage)
	})

	t.Run("missing optional fields stay zero", func(t *testing.T) {
		t.Parallel()
		l, err := NormalizeAutotraderItem(json.RawMessage(`{"vin": "X", "price": 5000}`))
		require.NoError(t, err)

		assert.Nil(t, l.Mileage)
		assert.Nil(t, l.Lat)
		assert.Nil(t, l.Lon)
		assert.Empty(t, l.Trim)
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()
		_, err := NormalizeAutotraderItem(json.RawMessage(`"not an object"`))
		assert.Error(t, err)
	})
}

func TestUsable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		listing domain.Listing
		want    bool
	}{
		{name: "vin and price", listing: domain.Listing{VIN: "X", Price: 5000}, want: true},
		{name: "missing vin", listing: domain.Listing{Price: 5000}, want: false},
		{name: "zero price", listing: domain.Listing{VIN: "X"}, want: false},
		{name: "negative price", listing: domain.Listing{VIN: "X", Price: -1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Usable(&tt.listing))
		})
	}
}

func TestDigitsToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
		ok   bool
	}{
		{name: "currency", in: "$12,500", want: 12500, ok: true},
		{name: "mileage suffix", in: "45,210 mi", want: 45210, ok: true},
		{name: "plain", in: "9000", want: 9000, ok: true},
		{name: "no digits", in: "Call for price", ok: false},
		{name: "empty", in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := digitsToInt(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
