package get_booked_dates

import (
	"fmt"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ScopeMonths < domain.MinScopeMonths || req.ScopeMonths > domain.MaxScopeMonths {
		return fmt.Errorf("%w: scopeMonths must be between %d and %d",
			ErrInvalidInput, domain.MinScopeMonths, domain.MaxScopeMonths)
	}

	if req.PetWeight != nil && (*req.PetWeight <= 0 || *req.PetWeight > domain.MaxPetWeightKg) {
		return fmt.Errorf("%w: petWeight must be in (0, %v]", ErrInvalidInput, domain.MaxPetWeightKg)
	}

	return nil
}
