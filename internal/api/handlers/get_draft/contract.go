package get_draft

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

type DraftsService interface {
	Get(ctx context.Context, draftID string) (*domain.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
