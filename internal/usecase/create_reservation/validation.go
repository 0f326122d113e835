package create_reservation

import (
	"fmt"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/pkg/types"
)

// validateRequest валидирует входные данные и возвращает распарсенную дату
func validateRequest(req *Request, loc *time.Location) (time.Time, error) {
	if req.PetID == "" {
		return time.Time{}, fmt.Errorf("%w: petID is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return time.Time{}, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidInput, req.Date)
	}

	if _, err := req.Time.Minutes(); err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q", ErrInvalidInput, req.Time)
	}

	if req.Memo != nil && len(*req.Memo) > domain.MaxMemoLength {
		return time.Time{}, fmt.Errorf("%w: memo exceeds %d characters", ErrInvalidInput, domain.MaxMemoLength)
	}

	return date, nil
}

// validateDateTime проверяет, что дата и время слота еще не прошли
func validateDateTime(date time.Time, slotTime types.TimeString, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	if dateOnly.Equal(nowOnly) {
		nowMinutes := now.Hour()*60 + now.Minute()
		if slotTime.MustMinutes() <= nowMinutes {
			return ErrTimeInPast
		}
	}

	return nil
}

// validateWeekendRule проверяет правило записи крупных собак только на выходные
func validateWeekendRule(date time.Time, breedType int, weightKg float64) error {
	if domain.RequiresWeekendOnly(breedType, weightKg) && !domain.IsWeekend(date) {
		return ErrWeekendOnly
	}
	return nil
}
