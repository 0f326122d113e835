package get_booked_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/pkg/metrics"
)

// UseCase use case для получения занятых дат на горизонте бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	cache           AvailabilityCache
	metrics         *metrics.Metrics
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс салона, горизонт отсчитывается от начала его суток
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	cache AvailabilityCache,
	m *metrics.Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		cache:           cache,
		metrics:         m,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения занятых дат
// Расписание объединяется из двух источников: подтвержденные бронирования
// и добавленные персоналом дополнительные слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookedDates: scope=%d months", req.ScopeMonths)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookedDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Пробуем кэш объединенного расписания
	merged, hit := uc.cache.Get(ctx, req.ScopeMonths)
	if hit {
		uc.metrics.IncCacheHit()
	} else {
		uc.metrics.IncCacheMiss()

		var err error
		merged, err = uc.loadMerged(ctx, req.ScopeMonths)
		if err != nil {
			return nil, err
		}

		if err := uc.cache.Set(ctx, req.ScopeMonths, merged); err != nil {
			// Кэш не критичен, расписание уже загружено из БД
			uc.logger.Warn("GetBookedDates: cache set failed: %v", err)
		}
	}

	// 3. Собираем ответ
	dates := make([]BookedDate, 0, len(merged))
	for _, day := range merged {
		times := make([]string, 0, len(day.Times))
		for _, t := range day.Times {
			times = append(times, t.String())
		}
		dates = append(dates, BookedDate{
			Date:        day.Date,
			Times:       times,
			FullyBooked: day.IsFullyBooked(),
		})
	}

	resp := &Response{
		ScopeMonths: req.ScopeMonths,
		Dates:       dates,
		FullyBooked: domain.FullyBookedDates(merged),
	}

	// 4. Правило выходных для крупных собак
	if req.PetWeight != nil {
		breedType := domain.BreedTypeDefault
		if req.BreedType != nil {
			breedType = *req.BreedType
		}
		resp.WeekendOnly = domain.RequiresWeekendOnly(breedType, *req.PetWeight)
	}

	uc.logger.Info("GetBookedDates: %d dates occupied, %d fully booked (cache hit=%t)",
		len(resp.Dates), len(resp.FullyBooked), hit)

	return resp, nil
}

// loadMerged загружает и объединяет занятость из обоих источников
func (uc *UseCase) loadMerged(ctx context.Context, scopeMonths int) ([]domain.BookedDay, error) {
	// Горизонт отсчитывается от начала текущих суток салона, иначе
	// сегодняшние брони выпадают из сравнения с датой в БД
	now := uc.timeProvider.Now().In(uc.location)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.location)
	to := from.AddDate(0, scopeMonths, 0)

	reserved, err := uc.reservationRepo.GetBookedDays(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetBookedDates: failed to get reservation days: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservation days: %v", ErrInternal, err)
	}

	additional, err := uc.slotRepo.GetBookedDays(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetBookedDates: failed to get additional slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get additional slots: %v", ErrInternal, err)
	}

	return domain.MergeBookedDays(reserved, additional), nil
}
