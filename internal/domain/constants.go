package domain

import "github.com/easerve/Grooming-BookingService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weight tier boundaries (kg). Tier 4 is the open-ended "large" bucket.
const (
	WeightTier1MaxKg = 4.0
	WeightTier2MaxKg = 6.0
	WeightTier3MaxKg = 8.0
)

// Pricing constants (KRW)
const (
	// WeightSurchargeThresholdKg is the weight above which the weight surcharge applies
	WeightSurchargeThresholdKg = 10.0

	// WeightSurchargeUnitPrice is the price of one surcharge step
	WeightSurchargeUnitPrice = 5000

	// StandardSurchargeStepKg is the step size for regular services: ceil((w-10)/2)
	StandardSurchargeStepKg = 2.0

	// HygieneBathSurchargeStepKg is the step size for the hygiene cut with bath: ceil((w-10)/5)
	HygieneBathSurchargeStepKg = 5.0

	// VariableOptionAddend is the range addend per option with a market-priced cost
	VariableOptionAddend = 10000
)

// Breed type categories
const (
	BreedTypeDefault = 1
	BreedTypeMedium  = 2
	BreedTypeLarge   = 3
)

// LargeDogWeekendWeightKg is the weight from which a dog may only book weekends
const LargeDogWeekendWeightKg = 8.0

// Validation constants
const (
	MaxInquiryLength = 500
	MaxMemoLength    = 500
	MinScopeMonths   = 1
	MaxScopeMonths   = 12
	MaxPetWeightKg   = 100.0
)

// CanonicalSlots is the fixed list of salon slots per day.
// Ten slots in 30-minute steps; the 12:00-13:00 lunch break is excluded.
var CanonicalSlots = []types.TimeString{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30",
}

// CanonicalSlotCount is the fully-booked threshold for a day
func CanonicalSlotCount() int {
	return len(CanonicalSlots)
}
