package get_breeds

import "github.com/easerve/Grooming-BookingService/internal/domain"

// BreedResponse HTTP response model
type BreedResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TypeID int    `json:"typeId"`
}

// BreedsResponse список пород
type BreedsResponse struct {
	Breeds []BreedResponse `json:"breeds"`
}

// FromDomain конвертирует доменные породы в HTTP response
func FromDomain(breeds []domain.Breed) *BreedsResponse {
	out := make([]BreedResponse, 0, len(breeds))
	for _, b := range breeds {
		out = append(out, BreedResponse{ID: b.ID, Name: b.Name, TypeID: b.TypeID})
	}
	return &BreedsResponse{Breeds: out}
}
