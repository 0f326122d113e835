package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	catalogRepo "github.com/easerve/Grooming-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для расчета цены груминга
type UseCase struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogRepo CatalogRepository, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute выполняет use case расчета цены
// Цена детерминирована: базовая цена услуги с надбавкой за вес плюс опции,
// опции с рыночной ценой расширяют только верхнюю границу диапазона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: service=%d, weight=%.1f, options=%d",
		req.ServiceID, req.PetWeight, len(req.OptionIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	svc, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("QuotePrice: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("QuotePrice: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем выбранные опции, все должны принадлежать услуге
	var options []domain.ServiceOption
	if len(req.OptionIDs) > 0 {
		options, err = uc.catalogRepo.GetOptionsByIDs(ctx, req.ServiceID, req.OptionIDs)
		if err != nil {
			uc.logger.Error("QuotePrice: failed to get options: %v", err)
			return nil, fmt.Errorf("%w: failed to get options: %v", ErrInternal, err)
		}
		if len(options) != len(req.OptionIDs) {
			uc.logger.Warn("QuotePrice: %d of %d options found for service id=%d",
				len(options), len(req.OptionIDs), req.ServiceID)
			return nil, ErrOptionNotFound
		}
	}

	// 4. Вычисляем диапазон цены основной услуги
	priceRange := domain.ComputePriceRange(*svc, options, req.PetWeight)

	// 5. Суммируем дополнительные услуги
	additionalTotal, err := uc.additionalTotal(ctx, req.AdditionalServiceIDs)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("QuotePrice: service=%d price=%s additional=%d",
		req.ServiceID, priceRange.String(), additionalTotal)

	return &Response{
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		PriceMin:        priceRange.Min,
		PriceMax:        priceRange.Max,
		Display:         priceRange.String(),
		AdditionalTotal: additionalTotal,
	}, nil
}

// additionalTotal загружает дополнительные услуги и суммирует их базовые цены
func (uc *UseCase) additionalTotal(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	services := make([]domain.GroomingService, 0, len(ids))
	for _, id := range ids {
		svc, err := uc.catalogRepo.GetServiceByID(ctx, id)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("QuotePrice: additional service id=%d not found", id)
				return 0, ErrServiceNotFound
			}
			uc.logger.Error("QuotePrice: failed to get additional service id=%d: %v", id, err)
			return 0, fmt.Errorf("%w: failed to get additional service: %v", ErrInternal, err)
		}
		services = append(services, *svc)
	}

	return domain.AdditionalServicesTotal(services), nil
}
