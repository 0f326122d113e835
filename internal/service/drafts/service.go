package drafts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/infra/draftstore"
	"github.com/easerve/Grooming-BookingService/internal/infra/storage/catalog"
	"github.com/easerve/Grooming-BookingService/internal/infra/storage/pet"
	"github.com/easerve/Grooming-BookingService/internal/service/drafts/models"
	"github.com/easerve/Grooming-BookingService/pkg/types"
)

// phoneRe допустимый формат номера телефона владельца
var phoneRe = regexp.MustCompile(`^[0-9][0-9-]{8,12}$`)

// Service сервис мастера бронирования.
// Черновик живет в redis между шагами; каждый шаг загружает черновик,
// применяет редьюсер домена и сохраняет результат обратно.
type Service struct {
	store   DraftStore
	catalog CatalogRepository
	pets    PetRepository
	logger  Logger
	clock   Clock
}

func New(store DraftStore, catalog CatalogRepository, pets PetRepository, logger Logger, clock Clock) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		pets:    pets,
		logger:  logger,
		clock:   clock,
	}
}

// Create заводит пустой черновик и возвращает его
func (s *Service) Create(ctx context.Context) (*domain.Draft, error) {
	draft := domain.NewDraft(uuid.NewString(), s.clock.Now())

	if err := s.store.Save(ctx, draft); err != nil {
		s.logger.Error("drafts.Create: save failed: %v", err)
		return nil, fmt.Errorf("%w: Create - save draft: %v", ErrInternal, err)
	}

	s.logger.Info("drafts.Create: draft %s started", draft.ID)

	return draft, nil
}

// Get возвращает черновик по ID
func (s *Service) Get(ctx context.Context, draftID string) (*domain.Draft, error) {
	return s.load(ctx, "Get", draftID)
}

// SetPhone применяет шаг телефона владельца
func (s *Service) SetPhone(ctx context.Context, draftID, phone string) (*domain.Draft, error) {
	if !phoneRe.MatchString(phone) {
		return nil, fmt.Errorf("%w: SetPhone - phone %q", ErrInvalidInput, phone)
	}

	draft, err := s.load(ctx, "SetPhone", draftID)
	if err != nil {
		return nil, err
	}

	draft.SetOwnerPhone(phone)

	return s.save(ctx, "SetPhone", draft)
}

// SetPet применяет шаг выбора питомца.
// Для существующего питомца параметры берутся из хранилища, для нового
// валидируются. Категория породы резолвится сразу и хранится в черновике.
func (s *Service) SetPet(ctx context.Context, draftID string, input models.PetInput) (*domain.Draft, error) {
	draft, err := s.load(ctx, "SetPet", draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step < domain.StepPet {
		return nil, fmt.Errorf("%w: SetPet - step %d", domain.ErrDraftStepOutOfOrder, draft.Step)
	}

	draftPet, err := s.resolvePet(ctx, input)
	if err != nil {
		return nil, err
	}

	draft.SetPet(*draftPet)

	return s.save(ctx, "SetPet", draft)
}

// SetDateTime применяет шаг даты и времени
func (s *Service) SetDateTime(ctx context.Context, draftID string, input models.DateTimeInput) (*domain.Draft, error) {
	if _, err := time.Parse(domain.DateFormat, input.Date); err != nil {
		return nil, fmt.Errorf("%w: SetDateTime - date %q", ErrInvalidInput, input.Date)
	}
	slotTime, err := types.NewTimeStringFromString(input.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: SetDateTime - time %q", ErrInvalidInput, input.Time)
	}

	draft, err := s.load(ctx, "SetDateTime", draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step < domain.StepDateTime {
		return nil, fmt.Errorf("%w: SetDateTime - step %d", domain.ErrDraftStepOutOfOrder, draft.Step)
	}

	draft.SetDateTime(input.Date, slotTime)

	return s.save(ctx, "SetDateTime", draft)
}

// SetServices применяет шаг выбора услуг: основная услуга, ее опции,
// дополнительные услуги и текст обращения. Выбор опций применяется
// через доменный toggle, эксклюзивность категорий соблюдается там.
func (s *Service) SetServices(ctx context.Context, draftID string, input models.ServicesInput) (*domain.Draft, error) {
	draft, err := s.load(ctx, "SetServices", draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step < domain.StepServices {
		return nil, fmt.Errorf("%w: SetServices - step %d", domain.ErrDraftStepOutOfOrder, draft.Step)
	}

	svc, err := s.catalog.GetServiceByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: SetServices - service id %d", ErrServiceNotFound, input.ServiceID)
		}
		return nil, fmt.Errorf("%w: SetServices - get service: %v", ErrInternal, err)
	}

	options, err := s.resolveOptions(ctx, input.ServiceID, input.OptionIDs)
	if err != nil {
		return nil, err
	}

	additional, err := s.resolveAdditional(ctx, input.AdditionalServiceIDs)
	if err != nil {
		return nil, err
	}

	draft.SetMainService(domain.DraftService{
		ID:         svc.ID,
		Name:       svc.Name,
		BasePrice:  svc.BasePrice,
		Kind:       svc.Kind,
		PricePerKg: svc.PricePerKg,
	})
	for _, opt := range options {
		if err := draft.ToggleOption(opt); err != nil {
			return nil, fmt.Errorf("%w: SetServices - apply option %d: %v", ErrInternal, opt.ID, err)
		}
	}
	draft.SetAdditionalServices(additional)
	draft.SetInquiry(input.Inquiry)

	return s.save(ctx, "SetServices", draft)
}

// ToggleOption переключает одну опцию основной услуги.
// Используется интерактивным UI между полными применениями шага услуг.
func (s *Service) ToggleOption(ctx context.Context, draftID string, optionID int64) (*domain.Draft, error) {
	draft, err := s.load(ctx, "ToggleOption", draftID)
	if err != nil {
		return nil, err
	}
	if draft.MainService == nil {
		return nil, fmt.Errorf("%w: ToggleOption - no main service selected", domain.ErrDraftMissingService)
	}

	options, err := s.resolveOptions(ctx, draft.MainService.ID, []int64{optionID})
	if err != nil {
		return nil, err
	}

	if err := draft.ToggleOption(options[0]); err != nil {
		return nil, fmt.Errorf("%w: ToggleOption - toggle: %v", ErrInternal, err)
	}

	return s.save(ctx, "ToggleOption", draft)
}

// Back возвращает мастер на предыдущий шаг, данные шагов сохраняются
func (s *Service) Back(ctx context.Context, draftID string) (*domain.Draft, error) {
	draft, err := s.load(ctx, "Back", draftID)
	if err != nil {
		return nil, err
	}

	draft.Back()

	return s.save(ctx, "Back", draft)
}

// Delete удаляет черновик досрочно
func (s *Service) Delete(ctx context.Context, draftID string) error {
	if draftID == "" {
		return fmt.Errorf("%w: Delete - draft id is required", ErrInvalidInput)
	}
	if err := s.store.Delete(ctx, draftID); err != nil {
		return fmt.Errorf("%w: Delete - delete draft: %v", ErrInternal, err)
	}
	return nil
}

// resolvePet собирает срез питомца черновика из входа шага
func (s *Service) resolvePet(ctx context.Context, input models.PetInput) (*domain.DraftPet, error) {
	if input.PetID != nil {
		existing, err := s.pets.GetByID(ctx, *input.PetID)
		if err != nil {
			if errors.Is(err, pet.ErrPetNotFound) {
				return nil, fmt.Errorf("%w: resolvePet - pet id %s", ErrPetNotFound, *input.PetID)
			}
			return nil, fmt.Errorf("%w: resolvePet - get pet: %v", ErrInternal, err)
		}

		return &domain.DraftPet{
			PetID:     input.PetID,
			Name:      existing.Name,
			Weight:    existing.Weight,
			Birth:     existing.Birth,
			BreedID:   existing.BreedID,
			BreedType: s.breedType(ctx, existing.BreedID),
		}, nil
	}

	if input.Name == "" {
		return nil, fmt.Errorf("%w: resolvePet - pet name is required", ErrInvalidInput)
	}
	if input.Weight <= 0 {
		return nil, fmt.Errorf("%w: resolvePet - weight must be positive", ErrInvalidInput)
	}

	return &domain.DraftPet{
		Name:      input.Name,
		Weight:    input.Weight,
		Birth:     input.Birth,
		BreedID:   input.BreedID,
		BreedType: s.breedType(ctx, input.BreedID),
	}, nil
}

// breedType резолвит категорию породы, неизвестная порода деградирует
// в категорию по умолчанию
func (s *Service) breedType(ctx context.Context, breedID *int64) int {
	if breedID == nil {
		return domain.BreedTypeDefault
	}

	breed, err := s.catalog.GetBreedByID(ctx, *breedID)
	if err != nil {
		if !errors.Is(err, catalog.ErrBreedNotFound) {
			s.logger.Warn("drafts: breed %d lookup failed: %v", *breedID, err)
		}
		return domain.BreedTypeDefault
	}

	return domain.BreedTypeOrDefault(breed)
}

// resolveOptions загружает опции по ID и проверяет, что все принадлежат услуге
func (s *Service) resolveOptions(ctx context.Context, serviceID int64, optionIDs []int64) ([]domain.ServiceOption, error) {
	if len(optionIDs) == 0 {
		return nil, nil
	}

	options, err := s.catalog.GetOptionsByIDs(ctx, serviceID, optionIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: resolveOptions - get options: %v", ErrInternal, err)
	}
	if len(options) != len(optionIDs) {
		return nil, fmt.Errorf("%w: resolveOptions - %d of %d options found", ErrOptionNotFound, len(options), len(optionIDs))
	}

	return options, nil
}

// resolveAdditional загружает дополнительные услуги по ID
func (s *Service) resolveAdditional(ctx context.Context, ids []int64) ([]domain.GroomingService, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	services := make([]domain.GroomingService, 0, len(ids))
	for _, id := range ids {
		svc, err := s.catalog.GetServiceByID(ctx, id)
		if err != nil {
			if errors.Is(err, catalog.ErrServiceNotFound) {
				return nil, fmt.Errorf("%w: resolveAdditional - service id %d", ErrServiceNotFound, id)
			}
			return nil, fmt.Errorf("%w: resolveAdditional - get service: %v", ErrInternal, err)
		}
		services = append(services, *svc)
	}

	return services, nil
}

func (s *Service) load(ctx context.Context, op, draftID string) (*domain.Draft, error) {
	if draftID == "" {
		return nil, fmt.Errorf("%w: %s - draft id is required", ErrInvalidInput, op)
	}

	draft, err := s.store.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftstore.ErrDraftNotFound) {
			return nil, fmt.Errorf("%w: %s - id %s", ErrDraftNotFound, op, draftID)
		}
		return nil, fmt.Errorf("%w: %s - load draft: %v", ErrInternal, op, err)
	}

	return draft, nil
}

func (s *Service) save(ctx context.Context, op string, draft *domain.Draft) (*domain.Draft, error) {
	draft.UpdatedAt = s.clock.Now()

	if err := s.store.Save(ctx, draft); err != nil {
		s.logger.Error("drafts.%s: save failed: %v", op, err)
		return nil, fmt.Errorf("%w: %s - save draft: %v", ErrInternal, op, err)
	}

	return draft, nil
}
