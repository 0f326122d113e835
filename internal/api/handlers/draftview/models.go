// Package draftview содержит общий HTTP response черновика бронирования,
// используемый всеми ручками мастера
package draftview

import (
	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// PetView срез питомца черновика
type PetView struct {
	PetID     *string `json:"petId,omitempty"`
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	BreedID   *int64  `json:"breedId,omitempty"`
	BreedType int     `json:"breedType"`
}

// DateTimeView срез даты и времени черновика
type DateTimeView struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// OptionView выбранная опция услуги
type OptionView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	AddPrice int    `json:"addPrice"`
	Variable bool   `json:"variable"`
}

// ServiceView выбранная основная услуга с опциями
type ServiceView struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	BasePrice       int          `json:"basePrice"`
	SelectedOptions []OptionView `json:"selectedOptions"`
}

// AdditionalServiceView выбранная дополнительная услуга
type AdditionalServiceView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BasePrice int    `json:"basePrice"`
}

// PriceView диапазон цены черновика
type PriceView struct {
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Display string `json:"display"`
}

// DraftResponse HTTP response model черновика
type DraftResponse struct {
	ID   string `json:"id"`
	Step int    `json:"step"`

	OwnerPhone         string                  `json:"ownerPhone,omitempty"`
	Pet                *PetView                `json:"pet,omitempty"`
	DateTime           *DateTimeView           `json:"dateTime,omitempty"`
	MainService        *ServiceView            `json:"mainService,omitempty"`
	AdditionalServices []AdditionalServiceView `json:"additionalServices,omitempty"`
	Price              *PriceView              `json:"price,omitempty"`
	Inquiry            string                  `json:"inquiry,omitempty"`
}

// FromDomain конвертирует черновик в HTTP response
func FromDomain(d *domain.Draft) *DraftResponse {
	resp := &DraftResponse{
		ID:         d.ID,
		Step:       int(d.Step),
		OwnerPhone: d.OwnerPhone,
		Inquiry:    d.Inquiry,
	}

	if d.Pet != nil {
		resp.Pet = &PetView{
			PetID:     d.Pet.PetID,
			Name:      d.Pet.Name,
			Weight:    d.Pet.Weight,
			BreedID:   d.Pet.BreedID,
			BreedType: d.Pet.BreedType,
		}
	}

	if d.DateTime != nil {
		resp.DateTime = &DateTimeView{
			Date: d.DateTime.Date,
			Time: d.DateTime.Time.String(),
		}
	}

	if d.MainService != nil {
		options := make([]OptionView, 0, len(d.MainService.SelectedOptions))
		for _, opt := range d.MainService.SelectedOptions {
			options = append(options, OptionView{
				ID:       opt.ID,
				Name:     opt.Name,
				AddPrice: opt.AddPrice,
				Variable: opt.Variable,
			})
		}
		resp.MainService = &ServiceView{
			ID:              d.MainService.ID,
			Name:            d.MainService.Name,
			BasePrice:       d.MainService.BasePrice,
			SelectedOptions: options,
		}
	}

	if len(d.AdditionalServices) > 0 {
		additional := make([]AdditionalServiceView, 0, len(d.AdditionalServices))
		for _, svc := range d.AdditionalServices {
			additional = append(additional, AdditionalServiceView{
				ID:        svc.ID,
				Name:      svc.Name,
				BasePrice: svc.BasePrice,
			})
		}
		resp.AdditionalServices = additional
	}

	if d.PriceRange != nil {
		resp.Price = &PriceView{
			Min:     d.PriceRange.Min,
			Max:     d.PriceRange.Max,
			Display: d.PriceRange.String(),
		}
	}

	return resp
}
