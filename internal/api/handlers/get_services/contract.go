package get_services

import (
	"context"

	catalogService "github.com/easerve/Grooming-BookingService/internal/service/catalog"
)

type CatalogService interface {
	ListServices(ctx context.Context, weightKg float64, breedID *int64) (*catalogService.ServiceCatalog, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
