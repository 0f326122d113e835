package pets

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/infra/storage/catalog"
	"github.com/easerve/Grooming-BookingService/internal/infra/storage/pet"
)

// PetProfile питомец вместе с данными породы
type PetProfile struct {
	Pet   *domain.Pet
	Breed *domain.Breed
}

// Service сервис работы с питомцами
type Service struct {
	pets   PetRepository
	breeds BreedRepository
	logger Logger
}

func New(pets PetRepository, breeds BreedRepository, logger Logger) *Service {
	return &Service{
		pets:   pets,
		breeds: breeds,
		logger: logger,
	}
}

// Create регистрирует нового питомца владельца.
// Идентификатор генерируется сервисом, порода проверяется по справочнику.
func (s *Service) Create(ctx context.Context, p *domain.Pet) (*PetProfile, error) {
	if p == nil || p.OwnerPhone == "" || p.Name == "" {
		return nil, fmt.Errorf("%w: Create - owner phone and name are required", ErrInvalidInput)
	}
	if p.Weight <= 0 {
		return nil, fmt.Errorf("%w: Create - weight must be positive", ErrInvalidInput)
	}

	var breed *domain.Breed
	if p.BreedID != nil {
		found, err := s.breeds.GetBreedByID(ctx, *p.BreedID)
		if err != nil {
			if errors.Is(err, catalog.ErrBreedNotFound) {
				return nil, fmt.Errorf("%w: Create - breed id %d", ErrBreedNotFound, *p.BreedID)
			}
			s.logger.Error("pets.Create: breed lookup failed: %v", err)
			return nil, fmt.Errorf("%w: Create - get breed: %v", ErrInternal, err)
		}
		breed = found
	}

	p.ID = uuid.NewString()

	created, err := s.pets.Create(ctx, p)
	if err != nil {
		s.logger.Error("pets.Create: insert failed: %v", err)
		return nil, fmt.Errorf("%w: Create - insert pet: %v", ErrInternal, err)
	}

	s.logger.Info("pets.Create: pet %s registered for %s", created.ID, created.OwnerPhone)

	return &PetProfile{Pet: created, Breed: breed}, nil
}

// GetByID возвращает питомца с данными породы
func (s *Service) GetByID(ctx context.Context, id string) (*PetProfile, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: GetByID - id is required", ErrInvalidInput)
	}

	p, err := s.pets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pet.ErrPetNotFound) {
			return nil, fmt.Errorf("%w: GetByID - id %s", ErrPetNotFound, id)
		}
		return nil, fmt.Errorf("%w: GetByID - get pet: %v", ErrInternal, err)
	}

	return &PetProfile{Pet: p, Breed: s.lookupBreed(ctx, p)}, nil
}

// ListByPhone возвращает питомцев владельца по номеру телефона
func (s *Service) ListByPhone(ctx context.Context, phone string) ([]*PetProfile, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: ListByPhone - phone is required", ErrInvalidInput)
	}

	list, err := s.pets.ListByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - list pets: %v", ErrInternal, err)
	}

	profiles := make([]*PetProfile, 0, len(list))
	for _, p := range list {
		profiles = append(profiles, &PetProfile{Pet: p, Breed: s.lookupBreed(ctx, p)})
	}

	return profiles, nil
}

// lookupBreed возвращает породу питомца или nil: питомец без породы и
// порода, удаленная из справочника, не считаются ошибкой
func (s *Service) lookupBreed(ctx context.Context, p *domain.Pet) *domain.Breed {
	if p.BreedID == nil {
		return nil
	}

	breed, err := s.breeds.GetBreedByID(ctx, *p.BreedID)
	if err != nil {
		if !errors.Is(err, catalog.ErrBreedNotFound) {
			s.logger.Warn("pets: breed %d lookup failed for pet %s: %v", *p.BreedID, p.ID, err)
		}
		return nil
	}

	return breed
}
