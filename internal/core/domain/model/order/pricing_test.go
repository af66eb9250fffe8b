package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trustpoints/internal/core/domain/model/order"
)

func TestDeliveryCost(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		weightKg   float64
		fragile    bool
		want       int
	}{
		{
			name:       "base rate per km",
			distanceKm: 5,
			weightKg:   0,
			fragile:    false,
			want:       50,
		},
		{
			name:       "weight surcharge above one kg",
			distanceKm: 5,
			weightKg:   3,
			fragile:    false,
			want:       60,
		},
		{
			name:       "fragile surcharge on top of weight",
			distanceKm: 5,
			weightKg:   3,
			fragile:    true,
			want:       72, // (50 + 10) * 1.2
		},
		{
			name:       "fragile surcharge truncates",
			distanceKm: 4.9,
			weightKg:   0,
			fragile:    true,
			want:       58, // floor(49 * 1.2) = floor(58.8)
		},
		{
			name:       "minimum cost floor",
			distanceKm: 0.3,
			weightKg:   0,
			fragile:    false,
			want:       10,
		},
		{
			name:       "minimum applies after surcharges",
			distanceKm: 0,
			weightKg:   0.5,
			fragile:    true,
			want:       10,
		},
		{
			name:       "weight below one kg is free",
			distanceKm: 2,
			weightKg:   0.9,
			fragile:    false,
			want:       20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := order.DeliveryCost(tt.distanceKm, tt.weightKg, tt.fragile)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrustReward(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		fragile    bool
		want       int
	}{
		{
			name:       "base rate per km",
			distanceKm: 5,
			fragile:    false,
			want:       50,
		},
		{
			name:       "fragile bonus",
			distanceKm: 5,
			fragile:    true,
			want:       75, // floor(50 * 1.5)
		},
		{
			name:       "fragile bonus truncates",
			distanceKm: 0.5,
			fragile:    true,
			want:       7, // floor(5 * 1.5)
		},
		{
			name:       "minimum reward floor",
			distanceKm: 0.2,
			fragile:    false,
			want:       5,
		},
		{
			name:       "zero distance still rewards minimum",
			distanceKm: 0,
			fragile:    true,
			want:       5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := order.TrustReward(tt.distanceKm, tt.fragile)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPricingFloors(t *testing.T) {
	// The minimum floors hold across the input space, not just at the
	// documented corner cases.
	distances := []float64{0, 0.01, 0.5, 1, 2.5, 10, 49.99}
	weights := []float64{0, 0.5, 1, 1.01, 7.3}

	for _, d := range distances {
		for _, w := range weights {
			for _, fragile := range []bool{false, true} {
				assert.GreaterOrEqual(t, order.DeliveryCost(d, w, fragile), 10)
				assert.GreaterOrEqual(t, order.TrustReward(d, fragile), 5)
			}
		}
	}
}
