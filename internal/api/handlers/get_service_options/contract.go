package get_service_options

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

type CatalogService interface {
	GetOptions(ctx context.Context, serviceID int64) ([]domain.OptionGroup, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
