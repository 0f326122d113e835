package submit_draft

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/infra/draftstore"
	"github.com/easerve/Grooming-BookingService/internal/usecase/create_reservation"
	"github.com/easerve/Grooming-BookingService/pkg/metrics"
)

// UseCase use case отправки заполненного черновика
type UseCase struct {
	drafts       DraftStore
	petRepo      PetRepository
	creator      ReservationCreator
	metrics      *metrics.Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	drafts DraftStore,
	petRepo PetRepository,
	creator ReservationCreator,
	m *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		drafts:       drafts,
		petRepo:      petRepo,
		creator:      creator,
		metrics:      m,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отправки черновика
// Черновик валидируется целиком до любого обращения к хранилищу; при отказе
// на любом шаге черновик сохраняется, клиент может исправить данные и
// повторить отправку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitDraft: draft=%s", req.DraftID)

	// 1. Валидация входных данных
	if req.DraftID == "" {
		return nil, fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	// 2. Загружаем черновик
	draft, err := uc.drafts.Get(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftstore.ErrDraftNotFound) {
			uc.logger.Warn("SubmitDraft: draft %s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("SubmitDraft: failed to load draft %s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to load draft: %v", ErrInternal, err)
	}

	// 3. Полная валидация черновика до обращений к БД
	if err := draft.Validate(); err != nil {
		uc.logger.Warn("SubmitDraft: draft %s incomplete: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: %v", ErrDraftIncomplete, err)
	}

	// 4. Новый питомец регистрируется перед бронированием
	petID, err := uc.resolvePetID(ctx, draft)
	if err != nil {
		uc.metrics.IncDraftSubmitted("failure")
		return nil, err
	}

	// 5. Создаем бронирование через общий use case
	created, err := uc.creator.Execute(ctx, &create_reservation.Request{
		PetID:                petID,
		Date:                 draft.DateTime.Date,
		Time:                 draft.DateTime.Time,
		ServiceID:            draft.MainService.ID,
		OptionIDs:            optionIDs(draft),
		AdditionalServiceIDs: additionalIDs(draft),
		Memo:                 memoFromInquiry(draft),
	})
	if err != nil {
		// Черновик сохраняется: клиент исправляет данные и пробует снова
		uc.metrics.IncDraftSubmitted("failure")
		uc.logger.Warn("SubmitDraft: reservation failed for draft %s: %v", req.DraftID, err)
		return nil, err
	}

	// 6. Черновик очищается только после успешного бронирования
	draft.Reset(uc.timeProvider.Now())
	if err := uc.drafts.Save(ctx, draft); err != nil {
		// Бронирование уже создано, просроченный черновик исчезнет по TTL
		uc.logger.Warn("SubmitDraft: failed to reset draft %s: %v", req.DraftID, err)
	}

	uc.metrics.IncDraftSubmitted("success")
	uc.logger.Info("SubmitDraft: draft %s submitted as reservation id=%d", req.DraftID, created.ID)

	return &Response{
		ReservationID: created.ID,
		PetID:         created.PetID,
		Date:          created.Date,
		Time:          created.Time.String(),
		Status:        created.Status,
		ServiceName:   created.ServiceName,
		TotalPrice:    created.TotalPrice,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// resolvePetID возвращает ID существующего питомца или регистрирует нового
func (uc *UseCase) resolvePetID(ctx context.Context, draft *domain.Draft) (string, error) {
	if draft.Pet.PetID != nil {
		return *draft.Pet.PetID, nil
	}

	created, err := uc.petRepo.Create(ctx, &domain.Pet{
		ID:         uuid.NewString(),
		OwnerPhone: draft.OwnerPhone,
		Name:       draft.Pet.Name,
		Weight:     draft.Pet.Weight,
		Birth:      draft.Pet.Birth,
		BreedID:    draft.Pet.BreedID,
	})
	if err != nil {
		uc.logger.Error("SubmitDraft: failed to create pet: %v", err)
		return "", fmt.Errorf("%w: failed to create pet: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitDraft: pet %s registered for %s", created.ID, created.OwnerPhone)

	return created.ID, nil
}

func optionIDs(draft *domain.Draft) []int64 {
	ids := make([]int64, 0, len(draft.MainService.SelectedOptions))
	for _, opt := range draft.MainService.SelectedOptions {
		ids = append(ids, opt.ID)
	}
	return ids
}

func additionalIDs(draft *domain.Draft) []int64 {
	ids := make([]int64, 0, len(draft.AdditionalServices))
	for _, svc := range draft.AdditionalServices {
		ids = append(ids, svc.ID)
	}
	return ids
}

func memoFromInquiry(draft *domain.Draft) *string {
	if draft.Inquiry == "" {
		return nil
	}
	memo := draft.Inquiry
	return &memo
}
