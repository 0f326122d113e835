package get_booked_dates

import (
	"context"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetBookedDays(ctx context.Context, from, to time.Time) ([]domain.BookedDay, error)
}

// SlotRepository интерфейс репозитория дополнительных слотов
type SlotRepository interface {
	GetBookedDays(ctx context.Context, from, to time.Time) ([]domain.BookedDay, error)
}

// AvailabilityCache кэш объединенного расписания
type AvailabilityCache interface {
	Get(ctx context.Context, scopeMonths int) ([]domain.BookedDay, bool)
	Set(ctx context.Context, scopeMonths int, days []domain.BookedDay) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
