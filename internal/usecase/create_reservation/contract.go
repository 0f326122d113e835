package create_reservation

import (
	"context"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetBookedDays(ctx context.Context, from, to time.Time) ([]domain.BookedDay, error)
}

// SlotRepository интерфейс репозитория дополнительных слотов
type SlotRepository interface {
	GetBookedDays(ctx context.Context, from, to time.Time) ([]domain.BookedDay, error)
}

// CatalogRepository интерфейс каталога услуг
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.GroomingService, error)
	GetOptionsByIDs(ctx context.Context, serviceID int64, optionIDs []int64) ([]domain.ServiceOption, error)
	GetBreedByID(ctx context.Context, id int64) (*domain.Breed, error)
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Pet, error)
}

// AvailabilityCache кэш объединенного расписания
type AvailabilityCache interface {
	Invalidate(ctx context.Context) error
}

// EventPublisher интерфейс публикации событий бронирования
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
