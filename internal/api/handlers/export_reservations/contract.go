package export_reservations

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/service/reservations/models"
)

// ReservationsService интерфейс сервиса бронирований.
type ReservationsService interface {
	ExportToExcel(ctx context.Context, filter models.ListFilter, dir string) (string, error)
}

// Logger интерфейс для логирования.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
