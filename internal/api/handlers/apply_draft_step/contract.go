package apply_draft_step

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/service/drafts/models"
)

type DraftsService interface {
	SetPhone(ctx context.Context, draftID, phone string) (*domain.Draft, error)
	SetPet(ctx context.Context, draftID string, input models.PetInput) (*domain.Draft, error)
	SetDateTime(ctx context.Context, draftID string, input models.DateTimeInput) (*domain.Draft, error)
	SetServices(ctx context.Context, draftID string, input models.ServicesInput) (*domain.Draft, error)
	ToggleOption(ctx context.Context, draftID string, optionID int64) (*domain.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
