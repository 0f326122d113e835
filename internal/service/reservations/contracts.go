package reservations

import (
	"context"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, memo *string) error
}

// PetRepository интерфейс репозитория питомцев для обогащения выборок
type PetRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Pet, error)
}

// EventPublisher интерфейс публикации событий бронирования
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// CacheInvalidator сбрасывает кэш занятости после изменения расписания
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Clock источник текущего времени, подменяется в тестах
type Clock interface {
	Now() time.Time
}
