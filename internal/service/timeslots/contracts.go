package timeslots

import (
	"context"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/infra/storage/timeslot"
)

// SlotRepository интерфейс репозитория дополнительных слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *timeslot.AdditionalSlot) (*timeslot.AdditionalSlot, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, from, to time.Time) ([]*timeslot.AdditionalSlot, error)
}

// CacheInvalidator сбрасывает кэш занятости после изменения расписания
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
