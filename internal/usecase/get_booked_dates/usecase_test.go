package get_booked_dates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/pkg/ptr"
	"github.com/easerve/Grooming-BookingService/pkg/types"
)

type fakeBookedDaysRepo struct {
	days []domain.BookedDay
	err  error

	from time.Time
	to   time.Time
}

func (f *fakeBookedDaysRepo) GetBookedDays(ctx context.Context, from, to time.Time) ([]domain.BookedDay, error) {
	f.from = from
	f.to = to
	return f.days, f.err
}

type fakeCache struct {
	days []domain.BookedDay
	hit  bool

	setDays []domain.BookedDay
	setErr  error
}

func (f *fakeCache) Get(ctx context.Context, scopeMonths int) ([]domain.BookedDay, bool) {
	return f.days, f.hit
}

func (f *fakeCache) Set(ctx context.Context, scopeMonths int, days []domain.BookedDay) error {
	f.setDays = days
	return f.setErr
}

type fakeTimeProvider struct{ now time.Time }

func (f fakeTimeProvider) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(reserved, slots *fakeBookedDaysRepo, cache *fakeCache, loc *time.Location, now time.Time) *UseCase {
	uc := NewUseCase(reserved, slots, cache, nil, loc, noopLogger{})
	uc.timeProvider = fakeTimeProvider{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	now := time.Date(2025, 11, 28, 15, 45, 0, 0, loc)

	t.Run("horizon starts at salon day start", func(t *testing.T) {
		reserved := &fakeBookedDaysRepo{
			days: []domain.BookedDay{{Date: "2025-11-28", Times: []types.TimeString{"09:00"}}},
		}
		slots := &fakeBookedDaysRepo{}
		uc := newTestUseCase(reserved, slots, &fakeCache{}, loc, now)

		resp, err := uc.Execute(context.Background(), &Request{ScopeMonths: 3})
		require.NoError(t, err)

		// Запрос в 15:45 не должен отрезать сегодняшние брони: репозитории
		// получают границу с полуночи суток салона
		wantFrom := time.Date(2025, 11, 28, 0, 0, 0, 0, loc)
		assert.True(t, reserved.from.Equal(wantFrom), "reservation from = %v, want %v", reserved.from, wantFrom)
		assert.True(t, slots.from.Equal(wantFrom), "slot from = %v, want %v", slots.from, wantFrom)
		assert.True(t, reserved.to.Equal(wantFrom.AddDate(0, 3, 0)))

		require.Len(t, resp.Dates, 1)
		assert.Equal(t, "2025-11-28", resp.Dates[0].Date)
	})

	t.Run("day start taken in salon timezone", func(t *testing.T) {
		reserved := &fakeBookedDaysRepo{}
		// 23:30 UTC 27-го - это уже утро 28-го по времени салона
		utcNow := time.Date(2025, 11, 27, 23, 30, 0, 0, time.UTC)
		uc := newTestUseCase(reserved, &fakeBookedDaysRepo{}, &fakeCache{}, loc, utcNow)

		_, err := uc.Execute(context.Background(), &Request{ScopeMonths: 1})
		require.NoError(t, err)

		wantFrom := time.Date(2025, 11, 28, 0, 0, 0, 0, loc)
		assert.True(t, reserved.from.Equal(wantFrom), "from = %v, want %v", reserved.from, wantFrom)
	})

	t.Run("merges both sources and caches result", func(t *testing.T) {
		reserved := &fakeBookedDaysRepo{
			days: []domain.BookedDay{{Date: "2025-11-29", Times: []types.TimeString{"09:00", "10:00"}}},
		}
		slots := &fakeBookedDaysRepo{
			days: []domain.BookedDay{{Date: "2025-11-29", Times: []types.TimeString{"13:00"}}},
		}
		cache := &fakeCache{}
		uc := newTestUseCase(reserved, slots, cache, loc, now)

		resp, err := uc.Execute(context.Background(), &Request{ScopeMonths: 3})
		require.NoError(t, err)

		require.Len(t, resp.Dates, 1)
		assert.Equal(t, []string{"09:00", "10:00", "13:00"}, resp.Dates[0].Times)
		assert.Len(t, cache.setDays, 1)
	})

	t.Run("cache hit skips repositories", func(t *testing.T) {
		reserved := &fakeBookedDaysRepo{err: errors.New("must not be called")}
		cache := &fakeCache{
			days: []domain.BookedDay{{Date: "2025-12-01", Times: []types.TimeString{"11:00"}}},
			hit:  true,
		}
		uc := newTestUseCase(reserved, &fakeBookedDaysRepo{}, cache, loc, now)

		resp, err := uc.Execute(context.Background(), &Request{ScopeMonths: 3})
		require.NoError(t, err)
		require.Len(t, resp.Dates, 1)
		assert.Equal(t, "2025-12-01", resp.Dates[0].Date)
	})

	t.Run("fully booked date reported", func(t *testing.T) {
		reserved := &fakeBookedDaysRepo{
			days: []domain.BookedDay{
				{Date: "2025-11-29", Times: append([]types.TimeString{}, domain.CanonicalSlots...)},
			},
		}
		uc := newTestUseCase(reserved, &fakeBookedDaysRepo{}, &fakeCache{}, loc, now)

		resp, err := uc.Execute(context.Background(), &Request{ScopeMonths: 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-11-29"}, resp.FullyBooked)
		assert.True(t, resp.Dates[0].FullyBooked)
	})

	t.Run("weekend only flag for heavy pet", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookedDaysRepo{}, &fakeBookedDaysRepo{}, &fakeCache{}, loc, now)

		resp, err := uc.Execute(context.Background(), &Request{
			ScopeMonths: 3,
			PetWeight:   ptr.Ptr(12.0),
		})
		require.NoError(t, err)
		assert.True(t, resp.WeekendOnly)
	})

	t.Run("invalid scope rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookedDaysRepo{}, &fakeBookedDaysRepo{}, &fakeCache{}, loc, now)

		_, err := uc.Execute(context.Background(), &Request{ScopeMonths: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository error wrapped as internal", func(t *testing.T) {
		reserved := &fakeBookedDaysRepo{err: errors.New("db down")}
		uc := newTestUseCase(reserved, &fakeBookedDaysRepo{}, &fakeCache{}, loc, now)

		_, err := uc.Execute(context.Background(), &Request{ScopeMonths: 3})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("cache set failure is not fatal", func(t *testing.T) {
		cache := &fakeCache{setErr: errors.New("redis down")}
		uc := newTestUseCase(&fakeBookedDaysRepo{}, &fakeBookedDaysRepo{}, cache, loc, now)

		_, err := uc.Execute(context.Background(), &Request{ScopeMonths: 3})
		assert.NoError(t, err)
	})
}
