package list_reservations

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/service/reservations/models"
)

type ReservationsService interface {
	List(ctx context.Context, filter models.ListFilter) ([]*models.ReservationView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
