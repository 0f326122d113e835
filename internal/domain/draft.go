package domain

import (
	"errors"
	"time"

	"github.com/easerve/Grooming-BookingService/pkg/types"
)

// Draft validation errors
var (
	ErrDraftMissingPhone   = errors.New("draft: owner phone is required")
	ErrDraftMissingPet     = errors.New("draft: pet is required")
	ErrDraftMissingDate    = errors.New("draft: reservation date is required")
	ErrDraftMissingTime    = errors.New("draft: reservation time is required")
	ErrDraftMissingService = errors.New("draft: main service is required")
	ErrDraftStepOutOfOrder = errors.New("draft: step cannot be applied yet")
)

// DraftStep is a step number of the booking wizard
type DraftStep int

const (
	StepPhone    DraftStep = 1 // Owner phone
	StepPet      DraftStep = 2 // Pick or create a pet
	StepDateTime DraftStep = 3 // Date and time
	StepServices DraftStep = 4 // Services and options
	StepConfirm  DraftStep = 5 // Confirmation
)

// ValidDraftStep reports whether s is a known wizard step
func ValidDraftStep(s DraftStep) bool {
	return s >= StepPhone && s <= StepConfirm
}

// DraftPet pet slice of the draft
type DraftPet struct {
	PetID   *string // uuid of an existing pet, nil for a new one
	Name    string
	Weight  float64
	Birth   *time.Time
	BreedID *int64

	// BreedType resolved at apply time (default category when breed unmapped)
	BreedType int
}

// DraftDateTime date/time slice of the draft
type DraftDateTime struct {
	Date string // YYYY-MM-DD
	Time types.TimeString
}

// DraftService selected main service with its chosen options
type DraftService struct {
	ID         int64
	Name       string
	BasePrice  int
	Kind       ServiceKind
	PricePerKg *int

	SelectedOptions []ServiceOption
}

// Draft is the in-progress booking state accumulated across wizard steps.
// The aggregate is owned by exactly one customer session; every mutation goes
// through a reducer method so cross-step invalidation stays in one place.
type Draft struct {
	ID   string // uuid
	Step DraftStep

	OwnerPhone         string
	Pet                *DraftPet
	DateTime           *DraftDateTime
	MainService        *DraftService
	AdditionalServices []GroomingService
	PriceRange         *PriceRange
	Inquiry            string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDraft creates an empty draft positioned at the first step
func NewDraft(id string, now time.Time) *Draft {
	return &Draft{
		ID:        id,
		Step:      StepPhone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetOwnerPhone applies step 1
func (d *Draft) SetOwnerPhone(phone string) {
	d.OwnerPhone = phone
	d.advanceTo(StepPet)
}

// SetPet applies step 2.
// If the weight or breed changed after a service was chosen, the service and
// option selection is reset: price and availability depend on the pet
func (d *Draft) SetPet(pet DraftPet) {
	if d.Pet != nil && d.MainService != nil {
		if d.Pet.Weight != pet.Weight || !equalBreedID(d.Pet.BreedID, pet.BreedID) {
			d.clearServiceSelection()
		}
	}

	d.Pet = &pet
	d.advanceTo(StepDateTime)
}

// SetDateTime applies step 3
func (d *Draft) SetDateTime(date string, t types.TimeString) {
	d.DateTime = &DraftDateTime{Date: date, Time: t}
	d.advanceTo(StepServices)
}

// SetMainService applies the main service choice on step 4.
// Switching the service always clears previously selected options: options
// belong to a specific service and never carry over
func (d *Draft) SetMainService(svc DraftService) {
	if d.MainService != nil && d.MainService.ID != svc.ID {
		svc.SelectedOptions = nil
	}
	d.MainService = &svc
	d.recalcPrice()
	d.advanceTo(StepConfirm)
}

// ToggleOption selects or deselects a main-service option.
// Within an exclusive category a new option displaces the previously selected
// one from the same category; multi-select categories accumulate
func (d *Draft) ToggleOption(opt ServiceOption) error {
	if d.MainService == nil {
		return ErrDraftMissingService
	}

	selected := d.MainService.SelectedOptions

	// Already selected, deselect
	for i, s := range selected {
		if s.ID == opt.ID {
			d.MainService.SelectedOptions = append(selected[:i], selected[i+1:]...)
			d.recalcPrice()
			return nil
		}
	}

	if !opt.MultiSelect {
		kept := selected[:0]
		for _, s := range selected {
			if s.Category != opt.Category {
				kept = append(kept, s)
			}
		}
		selected = kept
	}

	d.MainService.SelectedOptions = append(selected, opt)
	d.recalcPrice()
	return nil
}

// SetAdditionalServices replaces the set of additional services
func (d *Draft) SetAdditionalServices(services []GroomingService) {
	d.AdditionalServices = services
}

// SetInquiry records the customer's inquiry text
func (d *Draft) SetInquiry(text string) {
	d.Inquiry = text
}

// Back moves the step pointer backwards without clearing later slices:
// going forward again keeps previously entered data
func (d *Draft) Back() {
	if d.Step > StepPhone {
		d.Step--
	}
}

// Reset clears the draft after a successful submit
func (d *Draft) Reset(now time.Time) {
	*d = Draft{
		ID:        d.ID,
		Step:      StepPhone,
		CreatedAt: d.CreatedAt,
		UpdatedAt: now,
	}
}

// Validate checks that the draft is complete enough to submit.
// Called before any storage access
func (d *Draft) Validate() error {
	if d.OwnerPhone == "" {
		return ErrDraftMissingPhone
	}
	if d.Pet == nil || d.Pet.Name == "" {
		return ErrDraftMissingPet
	}
	if d.DateTime == nil || d.DateTime.Date == "" {
		return ErrDraftMissingDate
	}
	if d.DateTime.Time == "" {
		return ErrDraftMissingTime
	}
	if d.MainService == nil {
		return ErrDraftMissingService
	}
	return nil
}

// AdditionalTotal is the total price of the additional services
func (d *Draft) AdditionalTotal() int {
	return AdditionalServicesTotal(d.AdditionalServices)
}

// advanceTo moves the step pointer forward; reapplying an earlier step
// after going back never rolls the pointer back
func (d *Draft) advanceTo(next DraftStep) {
	if next > d.Step {
		d.Step = next
	}
}

func (d *Draft) clearServiceSelection() {
	d.MainService = nil
	d.AdditionalServices = nil
	d.PriceRange = nil
}

func (d *Draft) recalcPrice() {
	if d.MainService == nil || d.Pet == nil {
		d.PriceRange = nil
		return
	}

	svc := GroomingService{
		ID:         d.MainService.ID,
		Name:       d.MainService.Name,
		BasePrice:  d.MainService.BasePrice,
		Kind:       d.MainService.Kind,
		PricePerKg: d.MainService.PricePerKg,
	}

	r := ComputePriceRange(svc, d.MainService.SelectedOptions, d.Pet.Weight)
	d.PriceRange = &r
}

func equalBreedID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
