package create_draft

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

type DraftsService interface {
	Create(ctx context.Context) (*domain.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
