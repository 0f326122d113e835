package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/infra/events"
	catalogRepo "github.com/easerve/Grooming-BookingService/internal/infra/storage/catalog"
	petRepo "github.com/easerve/Grooming-BookingService/internal/infra/storage/pet"
	"github.com/easerve/Grooming-BookingService/pkg/metrics"
	"github.com/easerve/Grooming-BookingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	catalogRepo     CatalogRepository
	petRepo         PetRepository
	cache           AvailabilityCache
	publisher       EventPublisher
	txManager       TransactionManager
	metrics         *metrics.Metrics
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	catalogRepo CatalogRepository,
	petRepo PetRepository,
	cache AvailabilityCache,
	publisher EventPublisher,
	txManager TransactionManager,
	m *metrics.Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		catalogRepo:     catalogRepo,
		petRepo:         petRepo,
		cache:           cache,
		publisher:       publisher,
		txManager:       txManager,
		metrics:         m,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости слота и вставка выполняются в сериализуемой транзакции:
// при конкуренции за последний слот одна из транзакций завершится ошибкой
// сериализации и клиент получит отказ, повторных попыток нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: pet=%s, date=%s, time=%s, service=%d",
		req.PetID, req.Date, req.Time, req.ServiceID)

	// 1. Валидация входных данных
	date, err := validateRequest(req, uc.location)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в часовом поясе салона
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Дата и время слота не должны быть в прошлом
	if err := validateDateTime(date, req.Time, now); err != nil {
		uc.logger.Warn("CreateReservation: date/time validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем питомца
	p, err := uc.petRepo.GetByID(ctx, req.PetID)
	if err != nil {
		if errors.Is(err, petRepo.ErrPetNotFound) {
			uc.logger.Warn("CreateReservation: pet id=%s not found", req.PetID)
			return nil, ErrPetNotFound
		}
		uc.logger.Error("CreateReservation: failed to get pet id=%s: %v", req.PetID, err)
		return nil, fmt.Errorf("%w: failed to get pet: %v", ErrInternal, err)
	}

	// 5. Правило выходных для крупных собак
	breedType := uc.resolveBreedType(ctx, p.BreedID)
	if err := validateWeekendRule(date, breedType, p.Weight); err != nil {
		uc.logger.Info("CreateReservation: weekend rule rejected date %s for pet %s", req.Date, p.ID)
		return nil, err
	}

	// 6. Получаем услугу
	svc, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservation: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 7. Получаем выбранные опции
	var options []domain.ServiceOption
	if len(req.OptionIDs) > 0 {
		options, err = uc.catalogRepo.GetOptionsByIDs(ctx, req.ServiceID, req.OptionIDs)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get options: %v", err)
			return nil, fmt.Errorf("%w: failed to get options: %v", ErrInternal, err)
		}
		if len(options) != len(req.OptionIDs) {
			uc.logger.Warn("CreateReservation: %d of %d options found for service id=%d",
				len(options), len(req.OptionIDs), req.ServiceID)
			return nil, ErrOptionNotFound
		}
	}

	// 8. Получаем дополнительные услуги
	additional, err := uc.loadAdditional(ctx, req.AdditionalServiceIDs)
	if err != nil {
		return nil, err
	}

	// 9. Цена вычисляется на сервере из каталога, клиентские суммы не принимаются
	priceRange := domain.ComputePriceRange(*svc, options, p.Weight)
	additionalPrice := domain.AdditionalServicesTotal(additional)

	var result *domain.Reservation

	// 10. Проверка слота и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 10.1. Занятость из бронирований читается с блокировкой (FOR UPDATE)
		reserved, err := uc.dayTimes(txCtx, uc.reservationRepo.GetBookedDays, date, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservation times: %v", err)
			return fmt.Errorf("%w: failed to get reservation times: %v", ErrInternal, err)
		}

		overflow, err := uc.dayTimes(txCtx, uc.slotRepo.GetBookedDays, date, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get additional slots: %v", err)
			return fmt.Errorf("%w: failed to get additional slots: %v", ErrInternal, err)
		}

		// 10.2. Запрошенное время должно быть среди свободных слотов
		free := domain.FreeSlotsForDay(date, reserved, overflow, now)
		if !containsTime(free, req.Time) {
			uc.logger.Warn("CreateReservation: slot %s %s is not available", req.Date, req.Time)
			return ErrSlotNotAvailable
		}

		// 10.3. Создаем бронирование с денормализацией данных услуг
		res := &domain.Reservation{
			PetID:  p.ID,
			Date:   date,
			Time:   req.Time,
			Memo:   req.Memo,
			Status: domain.StatusWaiting,

			ServiceName:        serviceDisplayName(svc, options),
			AdditionalServices: additionalDisplayNames(additional),

			TotalPrice:      priceRange.Min,
			AdditionalPrice: additionalPrice,
		}

		created, err := uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncReservationCreated()

	// 11. Слот занят, кэш занятости больше не актуален
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("CreateReservation: cache invalidation failed: %v", err)
	}

	// 12. Публикуем событие, ошибка публикации не проваливает бронирование
	uc.publishCreated(ctx, result)

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:                 result.ID,
		PetID:              result.PetID,
		Date:               result.Date.Format(domain.DateFormat),
		Time:               result.Time,
		Status:             string(result.Status),
		ServiceName:        result.ServiceName,
		AdditionalServices: result.AdditionalServices,
		TotalPrice:         result.TotalPrice,
		AdditionalPrice:    result.AdditionalPrice,
		CreatedAt:          result.CreatedAt,
	}, nil
}

// resolveBreedType резолвит категорию породы питомца, питомец без породы
// и неизвестная порода деградируют в категорию по умолчанию
func (uc *UseCase) resolveBreedType(ctx context.Context, breedID *int64) int {
	if breedID == nil {
		return domain.BreedTypeDefault
	}

	breed, err := uc.catalogRepo.GetBreedByID(ctx, *breedID)
	if err != nil {
		if !errors.Is(err, catalogRepo.ErrBreedNotFound) {
			uc.logger.Warn("CreateReservation: breed %d lookup failed: %v", *breedID, err)
		}
		return domain.BreedTypeDefault
	}
	return domain.BreedTypeOrDefault(breed)
}

// loadAdditional загружает дополнительные услуги по ID
func (uc *UseCase) loadAdditional(ctx context.Context, ids []int64) ([]domain.GroomingService, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	services := make([]domain.GroomingService, 0, len(ids))
	for _, id := range ids {
		svc, err := uc.catalogRepo.GetServiceByID(ctx, id)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateReservation: additional service id=%d not found", id)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateReservation: failed to get additional service id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: failed to get additional service: %v", ErrInternal, err)
		}
		services = append(services, *svc)
	}

	return services, nil
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

// publishCreated публикует событие создания бронирования
func (uc *UseCase) publishCreated(ctx context.Context, res *domain.Reservation) {
	payload := events.ReservationCreated{
		ReservationID: res.ID,
		PetID:         res.PetID,
		Date:          res.Date.Format(domain.DateFormat),
		Time:          res.Time.String(),
		ServiceName:   res.ServiceName,
		TotalPrice:    res.TotalPrice,
		CreatedAt:     res.CreatedAt.Format(time.RFC3339),
	}
	if err := uc.publisher.Publish(ctx, events.RouteReservationCreated, payload); err != nil {
		uc.logger.Warn("CreateReservation: publish event for id=%d failed: %v", res.ID, err)
	}
}

// serviceDisplayName собирает отображаемое имя: услуга и выбранные опции
func serviceDisplayName(svc *domain.GroomingService, options []domain.ServiceOption) string {
	parts := make([]string, 0, 1+len(options))
	parts = append(parts, svc.Name)
	for _, opt := range options {
		parts = append(parts, opt.Name)
	}
	return strings.Join(parts, ", ")
}

// additionalDisplayNames собирает отображаемый список дополнительных услуг
func additionalDisplayNames(services []domain.GroomingService) *string {
	if len(services) == 0 {
		return nil
	}

	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}
	joined := strings.Join(names, ", ")
	return &joined
}

// containsTime проверяет наличие времени в списке слотов
func containsTime(slots []types.TimeString, t types.TimeString) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
