package get_owner_pets

import (
	"github.com/easerve/Grooming-BookingService/internal/domain"
	petsService "github.com/easerve/Grooming-BookingService/internal/service/pets"
)

// PetResponse HTTP response model
type PetResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Birth     *string `json:"birth,omitempty"`
	BreedID   *int64  `json:"breedId,omitempty"`
	BreedName *string `json:"breedName,omitempty"`
}

// PetsResponse питомцы владельца
type PetsResponse struct {
	Pets []PetResponse `json:"pets"`
}

// FromProfiles конвертирует профили питомцев в HTTP response
func FromProfiles(profiles []*petsService.PetProfile) *PetsResponse {
	out := make([]PetResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, fromProfile(p))
	}
	return &PetsResponse{Pets: out}
}

func fromProfile(p *petsService.PetProfile) PetResponse {
	resp := PetResponse{
		ID:      p.Pet.ID,
		Name:    p.Pet.Name,
		Weight:  p.Pet.Weight,
		BreedID: p.Pet.BreedID,
	}
	if p.Pet.Birth != nil {
		birth := p.Pet.Birth.Format(domain.DateFormat)
		resp.Birth = &birth
	}
	if p.Breed != nil {
		resp.BreedName = &p.Breed.Name
	}
	return resp
}
