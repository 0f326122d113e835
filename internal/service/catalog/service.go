package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	catalogRepo "github.com/easerve/Grooming-BookingService/internal/infra/storage/catalog"
)

// ServiceCatalog результат подбора услуг под параметры питомца
type ServiceCatalog struct {
	WeightTier         int
	BreedType          int
	MainServices       []domain.GroomingService
	AdditionalServices []domain.GroomingService
}

// Service сервис каталога: подбор услуг, опций и пород
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListServices подбирает услуги под вес и породу питомца
// Вес транслируется в весовую категорию, порода - в тип; порода без маппинга
// (или без указания) получает тип по умолчанию
// Пустой список услуг не ошибка: вызывающий показывает "услуги не найдены"
func (s *Service) ListServices(ctx context.Context, weightKg float64, breedID *int64) (*ServiceCatalog, error) {
	if weightKg <= 0 || weightKg > domain.MaxPetWeightKg {
		return nil, fmt.Errorf("%w: weight must be in (0, %v]", ErrInvalidInput, domain.MaxPetWeightKg)
	}

	tier := domain.WeightTierFor(weightKg)
	breedType := s.resolveBreedType(ctx, breedID)

	s.logger.Info("ListServices: weight=%.1f tier=%d breedType=%d", weightKg, tier, breedType)

	mains, err := s.repo.GetMainServices(ctx, tier, breedType)
	if err != nil {
		s.logger.Error("ListServices: failed to get main services: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	additional, err := s.repo.GetAdditionalServices(ctx, tier, breedType)
	if err != nil {
		s.logger.Error("ListServices: failed to get additional services: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return &ServiceCatalog{
		WeightTier:         tier,
		BreedType:          breedType,
		MainServices:       mains,
		AdditionalServices: additional,
	}, nil
}

// GetOptions получает группы опций услуги, сгруппированные по категориям
func (s *Service) GetOptions(ctx context.Context, serviceID int64) ([]domain.OptionGroup, error) {
	if serviceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if _, err := s.repo.GetServiceByID(ctx, serviceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetOptions: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetOptions: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetOptions - repository error: %v", ErrInternal, err)
	}

	options, err := s.repo.GetOptionsForService(ctx, serviceID)
	if err != nil {
		s.logger.Error("GetOptions: failed to get options for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetOptions - repository error: %v", ErrInternal, err)
	}

	return domain.GroupOptionsByCategory(options), nil
}

// ListBreeds получает список пород для формы выбора
func (s *Service) ListBreeds(ctx context.Context) ([]domain.Breed, error) {
	breeds, err := s.repo.ListBreeds(ctx)
	if err != nil {
		s.logger.Error("ListBreeds: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBreeds - repository error: %v", ErrInternal, err)
	}
	return breeds, nil
}

// resolveBreedType переводит породу в тип, деградируя к типу по умолчанию:
// отсутствие породы в справочнике не должно ломать подбор услуг
func (s *Service) resolveBreedType(ctx context.Context, breedID *int64) int {
	if breedID == nil {
		return domain.BreedTypeDefault
	}

	breed, err := s.repo.GetBreedByID(ctx, *breedID)
	if err != nil {
		if !errors.Is(err, catalogRepo.ErrBreedNotFound) {
			s.logger.Error("resolveBreedType: failed to get breed id=%d: %v", *breedID, err)
		} else {
			s.logger.Warn("resolveBreedType: breed id=%d not mapped, using default type", *breedID)
		}
		return domain.BreedTypeDefault
	}

	return domain.BreedTypeOrDefault(breed)
}
