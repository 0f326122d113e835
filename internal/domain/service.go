package domain

// ServiceKind distinguishes how a grooming service is priced
type ServiceKind string

const (
	// KindGrooming standard grooming, flat catalog price plus weight surcharge
	KindGrooming ServiceKind = "grooming"

	// KindHygieneBath hygiene cut with bath, coarser weight surcharge stepping
	KindHygieneBath ServiceKind = "hygiene_bath"

	// KindLargeBreed large-breed service priced per kilogram instead of flat
	KindLargeBreed ServiceKind = "large_breed"
)

// GroomingService represents a catalog service row for a (weight tier, breed type) pair.
// Catalog entities are immutable from the client's point of view.
type GroomingService struct {
	ID           int64
	NameID       int64
	Name         string
	BasePrice    int // KRW
	WeightTierID int
	BreedTypeID  int
	Kind         ServiceKind

	// PricePerKg set only for large-breed services (price = PricePerKg * weight)
	PricePerKg *int
}

// IsPerKgPriced returns true if the service overrides the flat catalog price
// with per-kilogram pricing
func (s *GroomingService) IsPerKgPriced() bool {
	return s.Kind == KindLargeBreed && s.PricePerKg != nil
}

// ServiceOption represents an add-on belonging to exactly one category
type ServiceOption struct {
	ID       int64
	Name     string
	AddPrice int // KRW, 0 for variable-priced options
	Category string

	// MultiSelect true when the option's category allows simultaneous selections
	MultiSelect bool

	// Variable true for market-priced options (leg-wear accessories) that
	// contribute a range addend instead of a fixed price
	Variable bool
}

// OptionGroup groups catalog options by category name
type OptionGroup struct {
	Category    string
	MultiSelect bool
	Options     []ServiceOption
}

// GroupOptionsByCategory collects a flat option list into groups by category
// name. Group order follows the first occurrence of each category
func GroupOptionsByCategory(options []ServiceOption) []OptionGroup {
	groups := make([]OptionGroup, 0)
	index := make(map[string]int)

	for _, opt := range options {
		i, ok := index[opt.Category]
		if !ok {
			index[opt.Category] = len(groups)
			groups = append(groups, OptionGroup{
				Category:    opt.Category,
				MultiSelect: opt.MultiSelect,
				Options:     []ServiceOption{opt},
			})
			continue
		}
		groups[i].Options = append(groups[i].Options, opt)
	}

	return groups
}
