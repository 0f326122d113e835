package models

import (
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// ReservationView бронирование, обогащённое данными питомца для админки
type ReservationView struct {
	Reservation *domain.Reservation
	PetName     string
	OwnerPhone  string
}

// ListFilter параметры выборки бронирований
type ListFilter struct {
	From             *time.Time
	To               *time.Time
	Status           *domain.ReservationStatus
	IncludeCancelled bool
}

// ToDomain преобразует фильтр в доменный
func (f ListFilter) ToDomain() domain.ReservationsFilter {
	return domain.ReservationsFilter{
		From:             f.From,
		To:               f.To,
		Status:           f.Status,
		IncludeCancelled: f.IncludeCancelled,
	}
}

// StatusChange результат смены статуса
type StatusChange struct {
	ReservationID int64
	OldStatus     domain.ReservationStatus
	NewStatus     domain.ReservationStatus
}
