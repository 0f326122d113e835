package timeslots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/infra/storage/timeslot"
	"github.com/easerve/Grooming-BookingService/pkg/types"
)

// Service сервис управления дополнительными слотами персонала.
// Через него персонал вручную блокирует время или открывает
// нестандартные слоты вне канонической сетки.
type Service struct {
	slots  SlotRepository
	cache  CacheInvalidator
	logger Logger
}

func New(slots SlotRepository, cache CacheInvalidator, logger Logger) *Service {
	return &Service{
		slots:  slots,
		cache:  cache,
		logger: logger,
	}
}

// Create добавляет слот на дату и время.
// Время валидируется как "HH:MM", дубликат на ту же дату и время отклоняется.
func (s *Service) Create(ctx context.Context, date time.Time, slotTime types.TimeString, note *string) (*timeslot.AdditionalSlot, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: Create - date is required", ErrInvalidInput)
	}
	if _, err := slotTime.Minutes(); err != nil {
		return nil, fmt.Errorf("%w: Create - time %q: %v", ErrInvalidInput, slotTime, err)
	}

	created, err := s.slots.Create(ctx, &timeslot.AdditionalSlot{
		Date: date,
		Time: slotTime,
		Note: note,
	})
	if err != nil {
		if errors.Is(err, timeslot.ErrSlotAlreadyExists) {
			return nil, fmt.Errorf("%w: Create - %s %s", ErrSlotAlreadyExists, date.Format("2006-01-02"), slotTime)
		}
		s.logger.Error("timeslots.Create: insert failed: %v", err)
		return nil, fmt.Errorf("%w: Create - insert slot: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	s.logger.Info("timeslots.Create: slot %d added for %s %s", created.ID, date.Format("2006-01-02"), slotTime)

	return created, nil
}

// Delete удаляет дополнительный слот по идентификатору
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: Delete - id must be positive", ErrInvalidInput)
	}

	if err := s.slots.Delete(ctx, id); err != nil {
		if errors.Is(err, timeslot.ErrSlotNotFound) {
			return fmt.Errorf("%w: Delete - id %d", ErrSlotNotFound, id)
		}
		return fmt.Errorf("%w: Delete - delete slot: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	s.logger.Info("timeslots.Delete: slot %d removed", id)

	return nil
}

// List возвращает дополнительные слоты за период
func (s *Service) List(ctx context.Context, from, to time.Time) ([]*timeslot.AdditionalSlot, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: List - period end before start", ErrInvalidInput)
	}

	list, err := s.slots.List(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: List - list slots: %v", ErrInternal, err)
	}

	return list, nil
}

func (s *Service) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("timeslots: cache invalidation failed: %v", err)
	}
}
