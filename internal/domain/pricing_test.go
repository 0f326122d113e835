package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightSurcharge(t *testing.T) {
	tests := []struct {
		name     string
		kind     ServiceKind
		weightKg float64
		want     int
	}{
		{"below threshold", KindGrooming, 5.0, 0},
		{"at threshold", KindGrooming, 10.0, 0},
		{"one step above", KindGrooming, 11.0, 5000},
		{"exact step boundary", KindGrooming, 12.0, 5000},
		{"partial step rounds up", KindGrooming, 12.5, 10000},
		{"heavy dog", KindGrooming, 20.0, 25000},
		{"hygiene bath coarser step", KindHygieneBath, 14.0, 5000},
		{"hygiene bath exact step", KindHygieneBath, 15.0, 5000},
		{"hygiene bath second step", KindHygieneBath, 15.1, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeightSurcharge(tt.kind, tt.weightKg))
		})
	}
}

func TestBasePriceFor(t *testing.T) {
	t.Run("flat price plus surcharge", func(t *testing.T) {
		svc := GroomingService{BasePrice: 40000, Kind: KindGrooming}
		assert.Equal(t, 40000, BasePriceFor(svc, 8.0))
		assert.Equal(t, 45000, BasePriceFor(svc, 11.0))
	})

	t.Run("per-kg pricing replaces flat price", func(t *testing.T) {
		perKg := 7000
		svc := GroomingService{BasePrice: 40000, Kind: KindLargeBreed, PricePerKg: &perKg}
		assert.Equal(t, 84000, BasePriceFor(svc, 12.0))
	})

	t.Run("large-breed kind without per-kg tariff falls back to flat", func(t *testing.T) {
		svc := GroomingService{BasePrice: 40000, Kind: KindLargeBreed}
		assert.Equal(t, 40000, BasePriceFor(svc, 5.0))
	})
}

func TestComputePriceRange(t *testing.T) {
	svc := GroomingService{BasePrice: 40000, Kind: KindGrooming}

	t.Run("no options collapses to single price", func(t *testing.T) {
		r := ComputePriceRange(svc, nil, 5.0)
		assert.Equal(t, PriceRange{Min: 40000, Max: 40000}, r)
		assert.True(t, r.IsSingle())
		assert.Equal(t, "40000", r.String())
	})

	t.Run("fixed options raise both bounds", func(t *testing.T) {
		opts := []ServiceOption{
			{ID: 1, AddPrice: 5000},
			{ID: 2, AddPrice: 3000},
		}
		r := ComputePriceRange(svc, opts, 5.0)
		assert.Equal(t, PriceRange{Min: 48000, Max: 48000}, r)
	})

	t.Run("variable options extend only the max", func(t *testing.T) {
		opts := []ServiceOption{
			{ID: 1, AddPrice: 5000},
			{ID: 2, Variable: true},
			{ID: 3, Variable: true},
		}
		r := ComputePriceRange(svc, opts, 5.0)
		assert.Equal(t, PriceRange{Min: 45000, Max: 65000}, r)
		assert.False(t, r.IsSingle())
		assert.Equal(t, "45000~65000", r.String())
	})

	t.Run("weight surcharge included in both bounds", func(t *testing.T) {
		opts := []ServiceOption{{ID: 1, Variable: true}}
		r := ComputePriceRange(svc, opts, 13.0)
		assert.Equal(t, PriceRange{Min: 50000, Max: 60000}, r)
	})
}

func TestAdditionalServicesTotal(t *testing.T) {
	services := []GroomingService{
		{BasePrice: 10000},
		{BasePrice: 15000},
	}
	assert.Equal(t, 25000, AdditionalServicesTotal(services))
	assert.Equal(t, 0, AdditionalServicesTotal(nil))
}
