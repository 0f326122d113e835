package get_day_slots

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
}

func (f *fakeBookedDaysRepo) GetBookedDays(ctx context.Context, from, to time.Time) ([]domain.BookedDay, error) {
	return f.days, f.err
}

type fakeTimeProvider struct{ now time.Time }

func (f fakeTimeProvider) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(reserved, overflow []domain.BookedDay, now time.Time) *UseCase {
	uc := NewUseCase(
		&fakeBookedDaysRepo{days: reserved},
		&fakeBookedDaysRepo{days: overflow},
		time.UTC,
		noopLogger{},
	)
	uc.timeProvider = fakeTimeProvider{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	now := time.Date(2025, 11, 28, 12, 0, 0, 0, time.UTC)

	t.Run("free slots exclude both occupancy sources", func(t *testing.T) {
		reserved := []domain.BookedDay{
			{Date: "2025-11-29", Times: []types.TimeString{"09:00", "10:00"}},
		}
		overflow := []domain.BookedDay{
			{Date: "2025-11-29", Times: []types.TimeString{"13:00"}},
		}
		uc := newTestUseCase(reserved, overflow, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: "2025-11-29"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"09:30", "10:30", "11:00", "11:30", "13:30", "14:00", "14:30",
		}, resp.FreeSlots)
		assert.False(t, resp.FullyBooked)
	})

	t.Run("today excludes past slot times", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, time.Date(2025, 11, 29, 11, 10, 0, 0, time.UTC))

		resp, err := uc.Execute(context.Background(), &Request{Date: "2025-11-29"})
		require.NoError(t, err)
		assert.Equal(t, []string{"11:30", "13:00", "13:30", "14:00", "14:30"}, resp.FreeSlots)
	})

	t.Run("fully booked day", func(t *testing.T) {
		reserved := []domain.BookedDay{
			{Date: "2025-11-29", Times: append([]types.TimeString{}, domain.CanonicalSlots...)},
		}
		uc := newTestUseCase(reserved, nil, now)

		resp, err := uc.Execute(context.Background(), &Request{Date: "2025-11-29"})
		require.NoError(t, err)
		assert.Empty(t, resp.FreeSlots)
		assert.True(t, resp.FullyBooked)
	})

	t.Run("past date rejected", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, now)

		_, err := uc.Execute(context.Background(), &Request{Date: "2025-11-27"})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, now)

		_, err := uc.Execute(context.Background(), &Request{Date: "29-11-2025"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("large dog rejected on weekday", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, now)

		// 2025-12-01 - понедельник
		_, err := uc.Execute(context.Background(), &Request{
			Date:      "2025-12-01",
			PetWeight: ptr.Ptr(12.0),
		})
		assert.ErrorIs(t, err, ErrWeekendOnly)
	})

	t.Run("large breed allowed on weekend", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, now)

		resp, err := uc.Execute(context.Background(), &Request{
			Date:      "2025-11-29",
			PetWeight: ptr.Ptr(3.0),
			BreedType: ptr.Ptr(domain.BreedTypeLarge),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.FreeSlots)
	})

	t.Run("repository error wrapped as internal", func(t *testing.T) {
		uc := NewUseCase(
			&fakeBookedDaysRepo{err: errors.New("db down")},
			&fakeBookedDaysRepo{},
			time.UTC,
			noopLogger{},
		)
		uc.timeProvider = fakeTimeProvider{now: now}

		_, err := uc.Execute(context.Background(), &Request{Date: "2025-11-29"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
