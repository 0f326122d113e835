package catalog

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetMainServices(ctx context.Context, weightTier, breedType int) ([]domain.GroomingService, error)
	GetAdditionalServices(ctx context.Context, weightTier, breedType int) ([]domain.GroomingService, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.GroomingService, error)
	GetOptionsForService(ctx context.Context, serviceID int64) ([]domain.ServiceOption, error)
	GetBreedByID(ctx context.Context, id int64) (*domain.Breed, error)
	ListBreeds(ctx context.Context) ([]domain.Breed, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
