package get_day_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/pkg/types"
)

// UseCase use case для получения свободных слотов на конкретную дату
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс салона, по нему отсекаются прошедшие слоты сегодня
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: date=%s", req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req, uc.location)
	if err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в часовом поясе салона
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Дата не должна быть в прошлом
	if err := validateDateNotPast(date, now); err != nil {
		uc.logger.Warn("GetDaySlots: date %s is in the past", req.Date)
		return nil, err
	}

	// 4. Правило выходных для крупных собак
	if err := validateWeekendRule(date, req.PetWeight, req.BreedType); err != nil {
		uc.logger.Info("GetDaySlots: weekend rule rejected date %s", req.Date)
		return nil, err
	}

	// 5. Занятые времена из бронирований
	reserved, err := uc.dayTimes(ctx, uc.reservationRepo.GetBookedDays, date, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get reservation times: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservation times: %v", ErrInternal, err)
	}

	// 6. Дополнительные слоты персонала: занимают время и одновременно
	// расширяют список кандидатов за пределы обычного расписания
	overflow, err := uc.dayTimes(ctx, uc.slotRepo.GetBookedDays, date, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get additional slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get additional slots: %v", ErrInternal, err)
	}

	// 7. Вычисляем свободные слоты
	free := domain.FreeSlotsForDay(date, reserved, overflow, now)

	slots := make([]string, 0, len(free))
	for _, t := range free {
		slots = append(slots, t.String())
	}

	uc.logger.Info("GetDaySlots: %d free slots on %s", len(slots), req.Date)

	return &Response{
		Date:        req.Date,
		FreeSlots:   slots,
		FullyBooked: len(slots) == 0,
	}, nil
}

// dayTimes загружает занятые времена одного дня из источника занятости
func (uc *UseCase) dayTimes(
	ctx context.Context,
	source func(ctx context.Context, from, to time.Time) ([]domain.BookedDay, error),
	date time.Time,
	dateStr string,
) ([]types.TimeString, error) {
	days, err := source(ctx, date, date)
	if err != nil {
		return nil, err
	}

	for _, day := range days {
		if day.Date == dateStr {
			return day.Times, nil
		}
	}

	return nil, nil
}
