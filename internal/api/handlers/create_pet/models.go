package create_pet

import (
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	petsService "github.com/easerve/Grooming-BookingService/internal/service/pets"
)

// CreatePetRequest HTTP request model
type CreatePetRequest struct {
	OwnerPhone string  `json:"ownerPhone"`
	Name       string  `json:"name"`
	Weight     float64 `json:"weight"`
	Birth      *string `json:"birth,omitempty"` // "2021-05-10"
	BreedID    *int64  `json:"breedId,omitempty"`
}

// PetResponse HTTP response model
type PetResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Birth     *string `json:"birth,omitempty"`
	BreedID   *int64  `json:"breedId,omitempty"`
	BreedName *string `json:"breedName,omitempty"`
}

// ToDomain конвертирует HTTP запрос в доменную модель (с парсингом даты рождения)
func (r *CreatePetRequest) ToDomain() (*domain.Pet, error) {
	p := &domain.Pet{
		OwnerPhone: r.OwnerPhone,
		Name:       r.Name,
		Weight:     r.Weight,
		BreedID:    r.BreedID,
	}

	if r.Birth != nil {
		birth, err := time.Parse(domain.DateFormat, *r.Birth)
		if err != nil {
			return nil, err
		}
		p.Birth = &birth
	}

	return p, nil
}

// FromProfile конвертирует профиль питомца в HTTP response
func FromProfile(profile *petsService.PetProfile) *PetResponse {
	resp := &PetResponse{
		ID:      profile.Pet.ID,
		Name:    profile.Pet.Name,
		Weight:  profile.Pet.Weight,
		BreedID: profile.Pet.BreedID,
	}
	if profile.Pet.Birth != nil {
		birth := profile.Pet.Birth.Format(domain.DateFormat)
		resp.Birth = &birth
	}
	if profile.Breed != nil {
		resp.BreedName = &profile.Breed.Name
	}
	return resp
}
