package submit_draft

import (
	"context"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/usecase/create_reservation"
)

// DraftStore интерфейс хранилища черновиков
type DraftStore interface {
	Get(ctx context.Context, draftID string) (*domain.Draft, error)
	Save(ctx context.Context, draft *domain.Draft) error
}

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	Create(ctx context.Context, p *domain.Pet) (*domain.Pet, error)
}

// ReservationCreator интерфейс создания бронирования из черновика
type ReservationCreator interface {
	Execute(ctx context.Context, req *create_reservation.Request) (*create_reservation.Response, error)
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
