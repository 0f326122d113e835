package quote_price

import (
	"fmt"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.PetWeight <= 0 || req.PetWeight > domain.MaxPetWeightKg {
		return fmt.Errorf("%w: petWeight must be in (0, %v]", ErrInvalidInput, domain.MaxPetWeightKg)
	}

	for _, id := range req.OptionIDs {
		if id <= 0 {
			return fmt.Errorf("%w: optionID must be positive", ErrInvalidInput)
		}
	}

	for _, id := range req.AdditionalServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: additionalServiceID must be positive", ErrInvalidInput)
		}
	}

	return nil
}
