package navigate_draft

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/domain"
)

type DraftsService interface {
	Back(ctx context.Context, draftID string) (*domain.Draft, error)
	Delete(ctx context.Context, draftID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
