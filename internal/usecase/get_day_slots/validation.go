package get_day_slots

import (
	"fmt"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// validateRequest валидирует входные данные и возвращает распарсенную дату
func validateRequest(req *Request, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidInput, req.Date)
	}

	if req.PetWeight != nil && (*req.PetWeight <= 0 || *req.PetWeight > domain.MaxPetWeightKg) {
		return time.Time{}, fmt.Errorf("%w: petWeight must be in (0, %v]", ErrInvalidInput, domain.MaxPetWeightKg)
	}

	return date, nil
}

// validateDateNotPast проверяет, что дата не раньше сегодняшней
func validateDateNotPast(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateWeekendRule проверяет правило записи крупных собак только на выходные
func validateWeekendRule(date time.Time, petWeight *float64, breedType *int) error {
	if petWeight == nil {
		return nil
	}

	bt := domain.BreedTypeDefault
	if breedType != nil {
		bt = *breedType
	}

	if domain.RequiresWeekendOnly(bt, *petWeight) && !domain.IsWeekend(date) {
		return ErrWeekendOnly
	}

	return nil
}
