package domain

import (
	"fmt"
	"math"
)

// PriceRange represents a pet grooming price as a [min, max] pair.
// Min equals Max when no variable-priced option is selected.
type PriceRange struct {
	Min int
	Max int
}

// IsSingle returns true when the range collapses to a single price
func (p PriceRange) IsSingle() bool {
	return p.Min == p.Max
}

// String renders a single price or "min~max"
func (p PriceRange) String() string {
	if p.IsSingle() {
		return fmt.Sprintf("%d", p.Min)
	}
	return fmt.Sprintf("%d~%d", p.Min, p.Max)
}

// WeightSurcharge computes the weight surcharge for a service of the given
// kind. No surcharge up to the threshold (10 kg inclusive); above it regular
// services charge in 2 kg steps, the hygiene cut with bath in 5 kg steps
func WeightSurcharge(kind ServiceKind, weightKg float64) int {
	if weightKg <= WeightSurchargeThresholdKg {
		return 0
	}

	step := StandardSurchargeStepKg
	if kind == KindHygieneBath {
		step = HygieneBathSurchargeStepKg
	}

	units := int(math.Ceil((weightKg - WeightSurchargeThresholdKg) / step))
	return units * WeightSurchargeUnitPrice
}

// BasePriceFor computes the service cost for a pet of the given weight.
// For large-breed services the catalog price is fully replaced by the per-kg rate
func BasePriceFor(svc GroomingService, weightKg float64) int {
	if svc.IsPerKgPriced() {
		return int(float64(*svc.PricePerKg) * weightKg)
	}
	return svc.BasePrice + WeightSurcharge(svc.Kind, weightKg)
}

// ComputePriceRange computes the final price range:
// min = base price (with the weight surcharge) + sum of fixed-price options,
// max = min + the range addend per option with a market-priced cost
func ComputePriceRange(svc GroomingService, selected []ServiceOption, weightKg float64) PriceRange {
	base := BasePriceFor(svc, weightKg)

	fixed := 0
	rangeAddend := 0
	for _, opt := range selected {
		if opt.Variable {
			rangeAddend += VariableOptionAddend
			continue
		}
		fixed += opt.AddPrice
	}

	min := base + fixed
	return PriceRange{Min: min, Max: min + rangeAddend}
}

// AdditionalServicesTotal sums the base prices of the additional services.
// The weight surcharge does not apply to additional services
func AdditionalServicesTotal(services []GroomingService) int {
	total := 0
	for _, s := range services {
		total += s.BasePrice
	}
	return total
}
