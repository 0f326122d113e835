package drafts

import (
	"context"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// DraftStore интерфейс хранилища черновиков
type DraftStore interface {
	Get(ctx context.Context, draftID string) (*domain.Draft, error)
	Save(ctx context.Context, draft *domain.Draft) error
	Delete(ctx context.Context, draftID string) error
}

// CatalogRepository интерфейс каталога услуг для применения шага услуг
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.GroomingService, error)
	GetOptionsByIDs(ctx context.Context, serviceID int64, optionIDs []int64) ([]domain.ServiceOption, error)
	GetBreedByID(ctx context.Context, id int64) (*domain.Breed, error)
}

// PetRepository интерфейс репозитория питомцев для шага выбора питомца
type PetRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Pet, error)
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
