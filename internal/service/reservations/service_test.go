package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/infra/storage/reservation"
	"github.com/easerve/Grooming-BookingService/internal/service/reservations/models"
	"github.com/easerve/Grooming-BookingService/pkg/ptr"
)

type fakeReservationRepo struct {
	byID map[int64]*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeReservationRepo) ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	list := make([]*domain.Reservation, 0, len(f.byID))
	for _, res := range f.byID {
		if !filter.IncludeCancelled && res.Status == domain.StatusCancelled {
			continue
		}
		copied := *res
		list = append(list, &copied)
	}
	return list, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	res, ok := f.byID[id]
	if !ok {
		return reservation.ErrReservationNotFound
	}
	res.Status = status
	return nil
}

func (f *fakeReservationRepo) Cancel(ctx context.Context, id int64, memo *string) error {
	res, ok := f.byID[id]
	if !ok {
		return reservation.ErrReservationNotFound
	}
	res.Status = domain.StatusCancelled
	res.Memo = memo
	return nil
}

type fakePetRepo struct {
	byID map[string]*domain.Pet
}

func (f *fakePetRepo) GetByID(ctx context.Context, id string) (*domain.Pet, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, errors.New("pet not found")
	}
	return p, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	routingKeys []string
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	f.routingKeys = append(f.routingKeys, routingKey)
	return nil
}

type fakeCacheInvalidator struct {
	invalidated int
}

func (f *fakeCacheInvalidator) Invalidate(ctx context.Context) error {
	f.invalidated++
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type serviceFixture struct {
	service   *Service
	repo      *fakeReservationRepo
	publisher *fakePublisher
	cache     *fakeCacheInvalidator
}

func newServiceFixture() *serviceFixture {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
		1: {
			ID:          1,
			PetID:       "pet-1",
			Date:        time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC),
			Time:        "10:00",
			Status:      domain.StatusWaiting,
			ServiceName: "Grooming, Face Trim",
			TotalPrice:  45000,
		},
		2: {
			ID:     2,
			PetID:  "pet-1",
			Date:   time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
			Time:   "13:00",
			Status: domain.StatusCancelled,
		},
	}}
	pets := &fakePetRepo{byID: map[string]*domain.Pet{
		"pet-1": {ID: "pet-1", Name: "Bori", OwnerPhone: "010-1234-5678"},
	}}
	publisher := &fakePublisher{}
	cache := &fakeCacheInvalidator{}

	svc := New(
		repo,
		pets,
		fakeTxManager{},
		publisher,
		cache,
		noopLogger{},
		fixedClock{now: time.Date(2025, 11, 28, 12, 0, 0, 0, time.UTC)},
	)

	return &serviceFixture{service: svc, repo: repo, publisher: publisher, cache: cache}
}

func TestGetByID(t *testing.T) {
	f := newServiceFixture()

	t.Run("enriches with pet data", func(t *testing.T) {
		view, err := f.service.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Bori", view.PetName)
		assert.Equal(t, "010-1234-5678", view.OwnerPhone)
		assert.Equal(t, int64(1), view.Reservation.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := f.service.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := f.service.GetByID(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestList(t *testing.T) {
	f := newServiceFixture()

	t.Run("cancelled hidden by default", func(t *testing.T) {
		views, err := f.service.List(context.Background(), models.ListFilter{})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, int64(1), views[0].Reservation.ID)
	})

	t.Run("include cancelled", func(t *testing.T) {
		views, err := f.service.List(context.Background(), models.ListFilter{IncludeCancelled: true})
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("inverted period rejected", func(t *testing.T) {
		from := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
		_, err := f.service.List(context.Background(), models.ListFilter{From: &from, To: &to})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		status := domain.ReservationStatus("pending")
		_, err := f.service.List(context.Background(), models.ListFilter{Status: &status})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("waiting to confirmed", func(t *testing.T) {
		f := newServiceFixture()

		change, err := f.service.UpdateStatus(context.Background(), 1, domain.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusWaiting, change.OldStatus)
		assert.Equal(t, domain.StatusConfirmed, change.NewStatus)
		assert.Equal(t, domain.StatusConfirmed, f.repo.byID[1].Status)
		assert.Len(t, f.publisher.routingKeys, 1)
	})

	t.Run("forbidden transition", func(t *testing.T) {
		f := newServiceFixture()

		_, err := f.service.UpdateStatus(context.Background(), 1, domain.StatusCompleted)
		assert.ErrorIs(t, err, ErrForbiddenTransition)
		assert.Equal(t, domain.StatusWaiting, f.repo.byID[1].Status)
		assert.Empty(t, f.publisher.routingKeys)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newServiceFixture()

		_, err := f.service.UpdateStatus(context.Background(), 1, "pending")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		f := newServiceFixture()

		_, err := f.service.UpdateStatus(context.Background(), 99, domain.StatusConfirmed)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Run("active reservation cancelled", func(t *testing.T) {
		f := newServiceFixture()
		memo := ptr.Ptr("клиент попросил перенести")

		change, err := f.service.Cancel(context.Background(), 1, memo)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, change.NewStatus)
		assert.Equal(t, domain.StatusCancelled, f.repo.byID[1].Status)
		assert.Equal(t, memo, f.repo.byID[1].Memo)
		assert.Equal(t, 1, f.cache.invalidated)
		assert.Len(t, f.publisher.routingKeys, 1)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := newServiceFixture()

		_, err := f.service.Cancel(context.Background(), 2, nil)
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
		assert.Equal(t, 0, f.cache.invalidated)
	})

	t.Run("not found", func(t *testing.T) {
		f := newServiceFixture()

		_, err := f.service.Cancel(context.Background(), 99, nil)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}
