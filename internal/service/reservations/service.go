package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/infra/events"
	"github.com/easerve/Grooming-BookingService/internal/infra/storage/reservation"
	"github.com/easerve/Grooming-BookingService/internal/service/reservations/models"
)

// Service сервис администрирования бронирований
type Service struct {
	reservations ReservationRepository
	pets         PetRepository
	txManager    TransactionManager
	publisher    EventPublisher
	cache        CacheInvalidator
	logger       Logger
	clock        Clock
}

func New(
	reservations ReservationRepository,
	pets PetRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	cache CacheInvalidator,
	logger Logger,
	clock Clock,
) *Service {
	return &Service{
		reservations: reservations,
		pets:         pets,
		txManager:    txManager,
		publisher:    publisher,
		cache:        cache,
		logger:       logger,
		clock:        clock,
	}
}

// GetByID возвращает бронирование с данными питомца
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationView, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: GetByID - id must be positive", ErrInvalidInput)
	}

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			return nil, fmt.Errorf("%w: GetByID - id %d", ErrReservationNotFound, id)
		}
		return nil, fmt.Errorf("%w: GetByID - get reservation: %v", ErrInternal, err)
	}

	return s.enrich(ctx, res), nil
}

// List возвращает бронирования по фильтру периода и статуса.
// Отменённые бронирования по умолчанию скрыты.
func (s *Service) List(ctx context.Context, filter models.ListFilter) ([]*models.ReservationView, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: List - period end before start", ErrInvalidInput)
	}
	if filter.Status != nil && !domain.ValidReservationStatus(*filter.Status) {
		return nil, fmt.Errorf("%w: List - status %q", ErrInvalidStatus, *filter.Status)
	}

	list, err := s.reservations.ListWithFilter(ctx, filter.ToDomain())
	if err != nil {
		return nil, fmt.Errorf("%w: List - list reservations: %v", ErrInternal, err)
	}

	views := make([]*models.ReservationView, 0, len(list))
	for _, res := range list {
		views = append(views, s.enrich(ctx, res))
	}

	return views, nil
}

// UpdateStatus переводит бронирование в новый статус.
// Переход проверяется по жизненному циклу, смена публикуется как событие.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next domain.ReservationStatus) (*models.StatusChange, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: UpdateStatus - id must be positive", ErrInvalidInput)
	}
	if !domain.ValidReservationStatus(next) {
		return nil, fmt.Errorf("%w: UpdateStatus - status %q", ErrInvalidStatus, next)
	}

	var change *models.StatusChange

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 1. Читаем текущее состояние под транзакцией
		res, err := s.reservations.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservation.ErrReservationNotFound) {
				return fmt.Errorf("%w: UpdateStatus - id %d", ErrReservationNotFound, id)
			}
			return fmt.Errorf("%w: UpdateStatus - get reservation: %v", ErrInternal, err)
		}

		// 2. Проверяем допустимость перехода
		if !res.CanTransitionTo(next) {
			return fmt.Errorf("%w: UpdateStatus - %s -> %s", ErrForbiddenTransition, res.Status, next)
		}

		// 3. Применяем новый статус
		if err := s.reservations.UpdateStatus(ctx, id, next); err != nil {
			return fmt.Errorf("%w: UpdateStatus - update status: %v", ErrInternal, err)
		}

		change = &models.StatusChange{
			ReservationID: id,
			OldStatus:     res.Status,
			NewStatus:     next,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusChange(ctx, change)

	return change, nil
}

// Cancel отменяет бронирование и освобождает его слот.
// Отмена доступна только из статусов waiting и confirmed.
func (s *Service) Cancel(ctx context.Context, id int64, memo *string) (*models.StatusChange, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: Cancel - id must be positive", ErrInvalidInput)
	}

	var change *models.StatusChange

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		res, err := s.reservations.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservation.ErrReservationNotFound) {
				return fmt.Errorf("%w: Cancel - id %d", ErrReservationNotFound, id)
			}
			return fmt.Errorf("%w: Cancel - get reservation: %v", ErrInternal, err)
		}

		if !res.CanBeCancelled() {
			return fmt.Errorf("%w: Cancel - status %s", ErrAlreadyCancelled, res.Status)
		}

		if err := s.reservations.Cancel(ctx, id, memo); err != nil {
			return fmt.Errorf("%w: Cancel - cancel reservation: %v", ErrInternal, err)
		}

		change = &models.StatusChange{
			ReservationID: id,
			OldStatus:     res.Status,
			NewStatus:     domain.StatusCancelled,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Слот освободился, кэш занятости больше не актуален
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("reservations.Cancel: cache invalidation failed: %v", err)
	}

	s.publishStatusChange(ctx, change)

	return change, nil
}

// enrich дополняет бронирование именем питомца и телефоном владельца
func (s *Service) enrich(ctx context.Context, res *domain.Reservation) *models.ReservationView {
	view := &models.ReservationView{Reservation: res}

	p, err := s.pets.GetByID(ctx, res.PetID)
	if err != nil {
		s.logger.Warn("reservations: pet %s lookup failed for reservation %d: %v", res.PetID, res.ID, err)
		return view
	}

	view.PetName = p.Name
	view.OwnerPhone = p.OwnerPhone
	return view
}

// publishStatusChange публикует событие смены статуса.
// Публикация fire-and-forget: ошибка не проваливает операцию.
func (s *Service) publishStatusChange(ctx context.Context, change *models.StatusChange) {
	if change == nil {
		return
	}

	payload := events.ReservationStatusChanged{
		ReservationID: change.ReservationID,
		OldStatus:     string(change.OldStatus),
		NewStatus:     string(change.NewStatus),
		ChangedAt:     s.clock.Now().Format(time.RFC3339),
	}
	if err := s.publisher.Publish(ctx, events.RouteReservationStatusChanged, payload); err != nil {
		s.logger.Warn("reservations: publish status change for %d failed: %v", change.ReservationID, err)
	}
}
