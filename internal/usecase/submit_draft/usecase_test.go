package submit_draft

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/infra/draftstore"
	"github.com/easerve/Grooming-BookingService/internal/usecase/create_reservation"
)

type fakeDraftStore struct {
	drafts map[string]*domain.Draft
	saved  int
}

func (f *fakeDraftStore) Get(ctx context.Context, draftID string) (*domain.Draft, error) {
	d, ok := f.drafts[draftID]
	if !ok {
		return nil, draftstore.ErrDraftNotFound
	}
	return d, nil
}

func (f *fakeDraftStore) Save(ctx context.Context, draft *domain.Draft) error {
	f.saved++
	f.drafts[draft.ID] = draft
	return nil
}

type fakePetRepo struct {
	created []*domain.Pet
}

func (f *fakePetRepo) Create(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
	f.created = append(f.created, p)
	return p, nil
}

type fakeCreator struct {
	req *create_reservation.Request
	err error
}

func (f *fakeCreator) Execute(ctx context.Context, req *create_reservation.Request) (*create_reservation.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &create_reservation.Response{
		ID:          42,
		PetID:       req.PetID,
		Date:        req.Date,
		Time:        req.Time,
		Status:      string(domain.StatusWaiting),
		ServiceName: "Grooming",
		TotalPrice:  45000,
		CreatedAt:   time.Date(2025, 11, 28, 12, 0, 0, 0, time.UTC),
	}, nil
}

type fakeTimeProvider struct{ now time.Time }

func (f fakeTimeProvider) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func completeDraft() *domain.Draft {
	d := domain.NewDraft("draft-1", time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC))
	d.SetOwnerPhone("010-1234-5678")
	d.SetPet(domain.DraftPet{Name: "Bori", Weight: 5.0, BreedType: domain.BreedTypeDefault})
	d.SetDateTime("2025-11-29", "10:00")
	d.SetMainService(domain.DraftService{
		ID: 1, Name: "Grooming", BasePrice: 40000, Kind: domain.KindGrooming,
		SelectedOptions: []domain.ServiceOption{{ID: 10, AddPrice: 5000}},
	})
	d.SetAdditionalServices([]domain.GroomingService{{ID: 7, Name: "Teeth Cleaning", BasePrice: 10000}})
	d.SetInquiry("осторожнее с ушами")
	return d
}

func newTestUseCase(store *fakeDraftStore, pets *fakePetRepo, creator *fakeCreator) *UseCase {
	uc := NewUseCase(store, pets, creator, nil, noopLogger{})
	uc.timeProvider = fakeTimeProvider{now: time.Date(2025, 11, 28, 13, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute(t *testing.T) {
	t.Run("submits complete draft and resets it", func(t *testing.T) {
		store := &fakeDraftStore{drafts: map[string]*domain.Draft{"draft-1": completeDraft()}}
		pets := &fakePetRepo{}
		creator := &fakeCreator{}
		uc := newTestUseCase(store, pets, creator)

		resp, err := uc.Execute(context.Background(), &Request{DraftID: "draft-1"})
		require.NoError(t, err)

		assert.Equal(t, int64(42), resp.ReservationID)
		assert.Equal(t, "waiting", resp.Status)

		// Новый питомец зарегистрирован перед бронированием
		require.Len(t, pets.created, 1)
		assert.Equal(t, "Bori", pets.created[0].Name)
		assert.Equal(t, "010-1234-5678", pets.created[0].OwnerPhone)

		// Данные черновика переданы создателю бронирования
		require.NotNil(t, creator.req)
		assert.Equal(t, []int64{10}, creator.req.OptionIDs)
		assert.Equal(t, []int64{7}, creator.req.AdditionalServiceIDs)
		require.NotNil(t, creator.req.Memo)
		assert.Equal(t, "осторожнее с ушами", *creator.req.Memo)

		// Черновик очищен после успеха
		assert.Equal(t, 1, store.saved)
		assert.Equal(t, domain.StepPhone, store.drafts["draft-1"].Step)
		assert.Nil(t, store.drafts["draft-1"].MainService)
	})

	t.Run("existing pet is not re-registered", func(t *testing.T) {
		draft := completeDraft()
		petID := "pet-1"
		draft.Pet.PetID = &petID

		store := &fakeDraftStore{drafts: map[string]*domain.Draft{"draft-1": draft}}
		pets := &fakePetRepo{}
		creator := &fakeCreator{}
		uc := newTestUseCase(store, pets, creator)

		_, err := uc.Execute(context.Background(), &Request{DraftID: "draft-1"})
		require.NoError(t, err)
		assert.Empty(t, pets.created)
		assert.Equal(t, "pet-1", creator.req.PetID)
	})

	t.Run("draft kept when reservation fails", func(t *testing.T) {
		store := &fakeDraftStore{drafts: map[string]*domain.Draft{"draft-1": completeDraft()}}
		pets := &fakePetRepo{}
		creator := &fakeCreator{err: create_reservation.ErrSlotNotAvailable}
		uc := newTestUseCase(store, pets, creator)

		_, err := uc.Execute(context.Background(), &Request{DraftID: "draft-1"})
		assert.ErrorIs(t, err, create_reservation.ErrSlotNotAvailable)

		// Черновик не очищен: клиент исправляет данные и пробует снова
		assert.Equal(t, 0, store.saved)
		assert.Equal(t, domain.StepConfirm, store.drafts["draft-1"].Step)
	})

	t.Run("incomplete draft rejected before any write", func(t *testing.T) {
		draft := domain.NewDraft("draft-1", time.Now())
		draft.SetOwnerPhone("010-1234-5678")

		store := &fakeDraftStore{drafts: map[string]*domain.Draft{"draft-1": draft}}
		pets := &fakePetRepo{}
		creator := &fakeCreator{}
		uc := newTestUseCase(store, pets, creator)

		_, err := uc.Execute(context.Background(), &Request{DraftID: "draft-1"})
		assert.ErrorIs(t, err, ErrDraftIncomplete)
		assert.Empty(t, pets.created)
		assert.Nil(t, creator.req)
	})

	t.Run("missing draft", func(t *testing.T) {
		store := &fakeDraftStore{drafts: map[string]*domain.Draft{}}
		uc := newTestUseCase(store, &fakePetRepo{}, &fakeCreator{})

		_, err := uc.Execute(context.Background(), &Request{DraftID: "missing"})
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})

	t.Run("empty draft id", func(t *testing.T) {
		store := &fakeDraftStore{drafts: map[string]*domain.Draft{}}
		uc := newTestUseCase(store, &fakePetRepo{}, &fakeCreator{})

		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
