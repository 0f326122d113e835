package create_time_slot

import (
	"context"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/infra/storage/timeslot"
	"github.com/easerve/Grooming-BookingService/pkg/types"
)

// TimeSlotsService интерфейс сервиса дополнительных слотов.
type TimeSlotsService interface {
	Create(ctx context.Context, date time.Time, slotTime types.TimeString, note *string) (*timeslot.AdditionalSlot, error)
}

// Logger интерфейс для логирования.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
