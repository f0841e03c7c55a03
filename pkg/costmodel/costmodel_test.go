package costmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

var testTiers = []PackTier{
	{Min: 0, Max: 19999, Cost: 500},
	{Min: 20000, Max: 39999, Cost: 800},
	{Min: 40000, Max: 59999, Cost: 1200},
}

var testRecon = ReconRule{
	NewMilesMax:      5000,
	NewCost:          800,
	OldYearThreshold: 2012,
	OldCost:          1300,
	StandardCost:     3000,
}

var testMileage = MileageRule{
	SupercarPriceThreshold: 70000,
	HighMileThreshold:      45000,
	SupercarPer5K:          3000,
	HighMilePer5K:          2000,
	SedanPer10K:            2000,
	SUVPer10K:              1500,
}

func TestPackCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price int
		want  int
	}{
		{name: "first tier", price: 15000, want: 500},
		{name: "tier lower bound inclusive", price: 20000, want: 800},
		{name: "tier upper bound inclusive", price: 19999, want: 500},
		{name: "middle tier", price: 45000, want: 1200},
		{name: "above every tier", price: 99999, want: 0},
		{name: "zero price", price: 0, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PackCost(testTiers, tt.price))
		})
	}
}

func TestReconRule_Cost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		year    int
		mileage *int
		want    int
	}{
		{name: "low mileage wins over age", year: 2005, mileage: ptr(4000), want: 800},
		{name: "mileage at threshold is new", year: 2005, mileage: ptr(5000), want: 800},
		{name: "just above threshold falls through", year: 2015, mileage: ptr(5001), want: 1300},
		{name: "recent year", year: 2012, mileage: ptr(60000), want: 1300},
		{name: "old high mileage", year: 2010, mileage: ptr(90000), want: 3000},
		{name: "nil mileage recent year", year: 2020, mileage: nil, want: 1300},
		{name: "nil mileage old year", year: 2008, mileage: nil, want: 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, testRecon.Cost(tt.year, tt.mileage))
		})
	}
}

func TestMileageRule_Categorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		price     int
		bodyStyle string
		want      VehicleCategory
	}{
		{name: "price threshold wins over style", price: 70000, bodyStyle: "SUV", want: CategorySupercar},
		{name: "coupe", price: 30000, bodyStyle: "Coupe", want: CategoryCoupeConvertible},
		{name: "convertible", price: 30000, bodyStyle: "Convertible", want: CategoryCoupeConvertible},
		{name: "two door", price: 30000, bodyStyle: "2dr Hatchback", want: CategoryCoupeConvertible},
		{name: "suv", price: 30000, bodyStyle: "SUV", want: CategorySUV},
		{name: "sport utility", price: 30000, bodyStyle: "Sport Utility", want: CategorySUV},
		{name: "truck", price: 30000, bodyStyle: "Truck", want: CategorySUV},
		{name: "sedan", price: 30000, bodyStyle: "Sedan", want: CategorySedan},
		{name: "unknown style defaults to sedan", price: 30000, bodyStyle: "", want: CategorySedan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, testMileage.Categorize(tt.price, tt.bodyStyle))
		})
	}
}

func TestMileageRule_Adjustment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		price     int
		bodyStyle string
		mileage   *int
		avg       *int
		want      int
	}{
		{name: "nil listing mileage", price: 20000, bodyStyle: "Sedan", mileage: nil, avg: ptr(45000), want: 0},
		{name: "nil benchmark mileage", price: 20000, bodyStyle: "Sedan", mileage: ptr(40000), avg: nil, want: 0},
		{
			name:  "sedan under benchmark earns credit",
			price: 18000, bodyStyle: "Sedan",
			mileage: ptr(40000), avg: ptr(45000),
			want: 1000, // -5k diff at $2000/10k
		},
		{
			name:  "sedan over benchmark pays penalty",
			price: 18000, bodyStyle: "Sedan",
			mileage: ptr(55000), avg: ptr(45000),
			want: -2000,
		},
		{
			name:  "fractional increments truncate toward zero",
			price: 18000, bodyStyle: "Sedan",
			mileage: ptr(48333), avg: ptr(45000),
			want: -666, // 0.3333 increments at $2000
		},
		{
			name:  "supercar scales per 5k",
			price: 80000, bodyStyle: "Coupe",
			mileage: ptr(10000), avg: ptr(5000),
			want: -3000,
		},
		{
			name:  "coupe above high-mile threshold pays per 5k",
			price: 30000, bodyStyle: "Coupe",
			mileage: ptr(55000), avg: ptr(45000),
			want: -4000,
		},
		{
			name:  "coupe above threshold earns nothing under benchmark",
			price: 30000, bodyStyle: "Convertible",
			mileage: ptr(50000), avg: ptr(60000),
			want: 0,
		},
		{
			name:  "coupe below threshold uses sedan rule",
			price: 30000, bodyStyle: "Coupe",
			mileage: ptr(40000), avg: ptr(45000),
			want: 1000,
		},
		{
			name:  "suv scales per 10k",
			price: 30000, bodyStyle: "SUV",
			mileage: ptr(55000), avg: ptr(45000),
			want: -1500,
		},
		{
			name:  "zero diff",
			price: 18000, bodyStyle: "Sedan",
			mileage: ptr(45000), avg: ptr(45000),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, testMileage.Adjustment(tt.price, tt.bodyStyle, tt.mileage, tt.avg))
		})
	}
}
