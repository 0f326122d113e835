package cancel_reservation

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/service/reservations/models"
)

// ReservationsService интерфейс сервиса бронирований.
type ReservationsService interface {
	Cancel(ctx context.Context, id int64, memo *string) (*models.StatusChange, error)
}

// Logger интерфейс для логирования.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
