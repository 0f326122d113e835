package update_reservation_status

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/service/reservations/models"
)

type ReservationsService interface {
	UpdateStatus(ctx context.Context, id int64, next domain.ReservationStatus) (*models.StatusChange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
