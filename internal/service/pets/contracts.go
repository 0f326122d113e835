package pets

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// PetRepository интерфейс репозитория питомцев
type PetRepository interface {
	Create(ctx context.Context, p *domain.Pet) (*domain.Pet, error)
	GetByID(ctx context.Context, id string) (*domain.Pet, error)
	ListByPhone(ctx context.Context, phone string) ([]*domain.Pet, error)
}

// BreedRepository интерфейс справочника пород
type BreedRepository interface {
	GetBreedByID(ctx context.Context, id int64) (*domain.Breed, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
