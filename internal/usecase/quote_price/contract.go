package quote_price

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

// CatalogRepository интерфейс каталога услуг
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.GroomingService, error)
	GetOptionsByIDs(ctx context.Context, serviceID int64, optionIDs []int64) ([]domain.ServiceOption, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
