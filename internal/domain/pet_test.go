package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightTierFor(t *testing.T) {
	tests := []struct {
		weightKg float64
		want     int
	}{
		{0.5, 1},
		{3.9, 1},
		{4.0, 2},
		{5.9, 2},
		{6.0, 3},
		{7.9, 3},
		{8.0, 4},
		{25.0, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WeightTierFor(tt.weightKg), "weight %.1f", tt.weightKg)
	}
}

func TestBreedTypeOrDefault(t *testing.T) {
	assert.Equal(t, BreedTypeDefault, BreedTypeOrDefault(nil))
	assert.Equal(t, BreedTypeDefault, BreedTypeOrDefault(&Breed{TypeID: 0}))
	assert.Equal(t, BreedTypeMedium, BreedTypeOrDefault(&Breed{TypeID: BreedTypeMedium}))
	assert.Equal(t, BreedTypeLarge, BreedTypeOrDefault(&Breed{TypeID: BreedTypeLarge}))
}

func TestRequiresWeekendOnly(t *testing.T) {
	assert.False(t, RequiresWeekendOnly(BreedTypeDefault, 5.0))
	assert.False(t, RequiresWeekendOnly(BreedTypeMedium, 7.9))
	assert.True(t, RequiresWeekendOnly(BreedTypeLarge, 3.0))
	assert.True(t, RequiresWeekendOnly(BreedTypeDefault, 8.0))
	assert.True(t, RequiresWeekendOnly(BreedTypeLarge, 20.0))
}
