package delete_time_slot

import "context"

// TimeSlotsService интерфейс сервиса дополнительных слотов.
type TimeSlotsService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
