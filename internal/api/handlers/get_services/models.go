package get_services

import (
	"github.com/easerve/Grooming-BookingService/internal/domain"
	catalogService "github.com/easerve/Grooming-BookingService/internal/service/catalog"
)

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BasePrice int    `json:"basePrice"`
	Kind      string `json:"kind"`

	// PricePerKg заполнен только для услуг с тарифом за килограмм
	PricePerKg *int `json:"pricePerKg,omitempty"`
}

// ServicesResponse подобранные услуги для параметров питомца
type ServicesResponse struct {
	WeightTier         int               `json:"weightTier"`
	BreedType          int               `json:"breedType"`
	MainServices       []ServiceResponse `json:"mainServices"`
	AdditionalServices []ServiceResponse `json:"additionalServices"`
}

// FromServiceCatalog конвертирует результат сервиса в HTTP response
func FromServiceCatalog(c *catalogService.ServiceCatalog) *ServicesResponse {
	return &ServicesResponse{
		WeightTier:         c.WeightTier,
		BreedType:          c.BreedType,
		MainServices:       fromServices(c.MainServices),
		AdditionalServices: fromServices(c.AdditionalServices),
	}
}

func fromServices(services []domain.GroomingService) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceResponse{
			ID:         s.ID,
			Name:       s.Name,
			BasePrice:  s.BasePrice,
			Kind:       string(s.Kind),
			PricePerKg: s.PricePerKg,
		})
	}
	return out
}
