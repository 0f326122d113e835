package domain

import "time"

// Pet represents a customer's pet
type Pet struct {
	ID         string // uuid
	OwnerPhone string
	Name       string
	Weight     float64 // kg
	Birth      *time.Time
	BreedID    *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Breed represents a dog breed mapped to a coarse pricing category
type Breed struct {
	ID     int64
	Name   string
	TypeID int
}

// WeightTierFor resolves a pet weight into a pricing tier (1..4)
func WeightTierFor(weightKg float64) int {
	switch {
	case weightKg < WeightTier1MaxKg:
		return 1
	case weightKg < WeightTier2MaxKg:
		return 2
	case weightKg < WeightTier3MaxKg:
		return 3
	default:
		return 4
	}
}

// BreedTypeOrDefault returns the breed's category, falling back to the default
// category when the breed is unknown or has no mapping
func BreedTypeOrDefault(breed *Breed) int {
	if breed == nil || breed.TypeID <= 0 {
		return BreedTypeDefault
	}
	return breed.TypeID
}

// RequiresWeekendOnly reports whether the pet may only be booked on weekends.
// Large dogs (by breed category or by weight) take the whole grooming day,
// so the salon only accepts them on Saturday and Sunday.
func RequiresWeekendOnly(breedType int, weightKg float64) bool {
	return breedType == BreedTypeLarge || weightKg >= LargeDogWeekendWeightKg
}
