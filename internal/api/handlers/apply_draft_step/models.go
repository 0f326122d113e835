package apply_draft_step

import (
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/service/drafts/models"
)

// SetPhoneRequest HTTP request model шага телефона
type SetPhoneRequest struct {
	Phone string `json:"phone"`
}

// SetPetRequest HTTP request model шага питомца
// Либо petId существующего питомца, либо параметры нового
type SetPetRequest struct {
	PetID   *string `json:"petId,omitempty"`
	Name    string  `json:"name,omitempty"`
	Weight  float64 `json:"weight,omitempty"`
	Birth   *string `json:"birth,omitempty"` // "2021-05-10"
	BreedID *int64  `json:"breedId,omitempty"`
}

// SetDateTimeRequest HTTP request model шага даты и времени
type SetDateTimeRequest struct {
	Date string `json:"date"` // "2025-11-29"
	Time string `json:"time"` // "10:00"
}

// SetServicesRequest HTTP request model шага услуг
type SetServicesRequest struct {
	ServiceID            int64   `json:"serviceId"`
	OptionIDs            []int64 `json:"optionIds,omitempty"`
	AdditionalServiceIDs []int64 `json:"additionalServiceIds,omitempty"`
	Inquiry              string  `json:"inquiry,omitempty"`
}

// ToPetInput конвертирует HTTP запрос в модель сервиса (с парсингом даты рождения)
func (r *SetPetRequest) ToPetInput() (models.PetInput, error) {
	input := models.PetInput{
		PetID:   r.PetID,
		Name:    r.Name,
		Weight:  r.Weight,
		BreedID: r.BreedID,
	}

	if r.Birth != nil {
		birth, err := time.Parse(domain.DateFormat, *r.Birth)
		if err != nil {
			return models.PetInput{}, err
		}
		input.Birth = &birth
	}

	return input, nil
}

// ToDateTimeInput конвертирует HTTP запрос в модель сервиса
func (r *SetDateTimeRequest) ToDateTimeInput() models.DateTimeInput {
	return models.DateTimeInput{Date: r.Date, Time: r.Time}
}

// ToServicesInput конвертирует HTTP запрос в модель сервиса
func (r *SetServicesRequest) ToServicesInput() models.ServicesInput {
	return models.ServicesInput{
		ServiceID:            r.ServiceID,
		OptionIDs:            r.OptionIDs,
		AdditionalServiceIDs: r.AdditionalServiceIDs,
		Inquiry:              r.Inquiry,
	}
}
