package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	catalogRepo "github.com/easerve/Grooming-BookingService/internal/infra/storage/catalog"
	petRepo "github.com/easerve/Grooming-BookingService/internal/infra/storage/pet"
	"github.com/easerve/Grooming-BookingService/pkg/types"
)

type fakeReservations struct {
	days    []domain.BookedDay
	created []*domain.Reservation
	nextID  int64
}

func (f *fakeReservations) GetBookedDays(ctx context.Context, from, to time.Time) ([]domain.BookedDay, error) {
	return f.days, nil
}

func (f *fakeReservations) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	created := *res
	created.ID = f.nextID
	created.CreatedAt = time.Date(2025, 11, 28, 12, 0, 0, 0, time.UTC)
	f.created = append(f.created, &created)
	return &created, nil
}

type fakeSlots struct {
	days []domain.BookedDay
}

func (f *fakeSlots) GetBookedDays(ctx context.Context, from, to time.Time) ([]domain.BookedDay, error) {
	return f.days, nil
}

type fakeCatalog struct {
	services map[int64]*domain.GroomingService
	options  map[int64]domain.ServiceOption
	breeds   map[int64]*domain.Breed
}

func (f *fakeCatalog) GetServiceByID(ctx context.Context, id int64) (*domain.GroomingService, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeCatalog) GetOptionsByIDs(ctx context.Context, serviceID int64, optionIDs []int64) ([]domain.ServiceOption, error) {
	found := make([]domain.ServiceOption, 0, len(optionIDs))
	for _, id := range optionIDs {
		if opt, ok := f.options[id]; ok {
			found = append(found, opt)
		}
	}
	return found, nil
}

func (f *fakeCatalog) GetBreedByID(ctx context.Context, id int64) (*domain.Breed, error) {
	breed, ok := f.breeds[id]
	if !ok {
		return nil, catalogRepo.ErrBreedNotFound
	}
	return breed, nil
}

type fakePets struct {
	byID map[string]*domain.Pet
}

func (f *fakePets) GetByID(ctx context.Context, id string) (*domain.Pet, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, petRepo.ErrPetNotFound
	}
	return p, nil
}

type fakeCache struct{ invalidated int }

func (f *fakeCache) Invalidate(ctx context.Context) error {
	f.invalidated++
	return nil
}

type fakePublisher struct{ routingKeys []string }

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	f.routingKeys = append(f.routingKeys, routingKey)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct{ now time.Time }

func (f fakeTimeProvider) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	uc           *UseCase
	reservations *fakeReservations
	slots        *fakeSlots
	cache        *fakeCache
	publisher    *fakePublisher
}

func newFixture() *fixture {
	largeBreedID := int64(3)

	reservations := &fakeReservations{}
	slots := &fakeSlots{}
	cache := &fakeCache{}
	publisher := &fakePublisher{}

	catalog := &fakeCatalog{
		services: map[int64]*domain.GroomingService{
			1: {ID: 1, Name: "Grooming", BasePrice: 40000, Kind: domain.KindGrooming},
			7: {ID: 7, Name: "Teeth Cleaning", BasePrice: 10000, Kind: domain.KindGrooming},
		},
		options: map[int64]domain.ServiceOption{
			10: {ID: 10, Name: "Face Trim", AddPrice: 5000, Category: "face"},
			30: {ID: 30, Name: "Leg Wear", Variable: true, Category: "wear"},
		},
		breeds: map[int64]*domain.Breed{
			largeBreedID: {ID: largeBreedID, Name: "Samoyed", TypeID: domain.BreedTypeLarge},
		},
	}
	pets := &fakePets{byID: map[string]*domain.Pet{
		"pet-1": {ID: "pet-1", Name: "Bori", Weight: 5.0},
		"pet-2": {ID: "pet-2", Name: "Gom", Weight: 12.0, BreedID: &largeBreedID},
	}}

	uc := NewUseCase(
		reservations,
		slots,
		catalog,
		pets,
		cache,
		publisher,
		fakeTxManager{},
		nil,
		time.UTC,
		noopLogger{},
	)
	uc.timeProvider = fakeTimeProvider{now: time.Date(2025, 11, 28, 12, 0, 0, 0, time.UTC)}

	return &fixture{
		uc:           uc,
		reservations: reservations,
		slots:        slots,
		cache:        cache,
		publisher:    publisher,
	}
}

func validRequest() *Request {
	return &Request{
		PetID:     "pet-1",
		Date:      "2025-11-29",
		Time:      "10:00",
		ServiceID: 1,
	}
}

func TestExecute(t *testing.T) {
	t.Run("creates reservation with server-side pricing", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.OptionIDs = []int64{10, 30}
		req.AdditionalServiceIDs = []int64{7}

		resp, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "waiting", resp.Status)
		assert.Equal(t, "Grooming, Face Trim, Leg Wear", resp.ServiceName)
		require.NotNil(t, resp.AdditionalServices)
		assert.Equal(t, "Teeth Cleaning", *resp.AdditionalServices)
		// Цена: база 40000 + фиксированная опция 5000, variable-опция
		// не входит в нижнюю границу
		assert.Equal(t, 45000, resp.TotalPrice)
		assert.Equal(t, 10000, resp.AdditionalPrice)

		assert.Equal(t, 1, f.cache.invalidated)
		assert.Equal(t, []string{"reservation.created"}, f.publisher.routingKeys)
	})

	t.Run("occupied slot rejected", func(t *testing.T) {
		f := newFixture()
		f.reservations.days = []domain.BookedDay{
			{Date: "2025-11-29", Times: []types.TimeString{"10:00"}},
		}

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Empty(t, f.reservations.created)
		assert.Equal(t, 0, f.cache.invalidated)
	})

	t.Run("staff slot blocks the time", func(t *testing.T) {
		f := newFixture()
		f.slots.days = []domain.BookedDay{
			{Date: "2025-11-29", Times: []types.TimeString{"10:00"}},
		}

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("non-canonical time rejected", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.Time = "12:00" // обеденный перерыв

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("unknown pet", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.PetID = "missing"

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPetNotFound)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.ServiceID = 99

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("unknown option", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.OptionIDs = []int64{10, 99}

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOptionNotFound)
	})

	t.Run("large dog rejected on weekday", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.PetID = "pet-2"
		req.Date = "2025-12-01" // понедельник

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrWeekendOnly)
	})

	t.Run("large dog allowed on weekend", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.PetID = "pet-2"

		_, err := f.uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("past date rejected", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.Date = "2025-11-27"

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("past time today rejected", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.Date = "2025-11-28"
		req.Time = "11:30" // now 12:00

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTimeInPast)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.Execute(context.Background(), &Request{Date: "2025-11-29", Time: "10:00", ServiceID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.uc.Execute(context.Background(), &Request{PetID: "pet-1", Date: "bad", Time: "10:00", ServiceID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.uc.Execute(context.Background(), &Request{PetID: "pet-1", Date: "2025-11-29", Time: "25:00", ServiceID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
