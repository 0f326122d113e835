package get_breeds

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

type CatalogService interface {
	ListBreeds(ctx context.Context) ([]domain.Breed, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
