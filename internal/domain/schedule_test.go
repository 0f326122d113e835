package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/easerve/Grooming-BookingService/pkg/types"
)

func TestMergeBookedDays(t *testing.T) {
	reserved := []BookedDay{
		{Date: "2025-11-29", Times: []types.TimeString{"10:00", "09:00"}},
		{Date: "2025-12-01", Times: []types.TimeString{"13:00"}},
	}
	overflow := []BookedDay{
		{Date: "2025-11-29", Times: []types.TimeString{"10:00", "15:00"}},
		{Date: "2025-11-30", Times: []types.TimeString{"11:00"}},
	}

	t.Run("union with dedup and sorting", func(t *testing.T) {
		merged := MergeBookedDays(reserved, overflow)

		assert.Equal(t, []BookedDay{
			{Date: "2025-11-29", Times: []types.TimeString{"09:00", "10:00", "15:00"}},
			{Date: "2025-11-30", Times: []types.TimeString{"11:00"}},
			{Date: "2025-12-01", Times: []types.TimeString{"13:00"}},
		}, merged)
	})

	t.Run("commutative", func(t *testing.T) {
		assert.Equal(t, MergeBookedDays(reserved, overflow), MergeBookedDays(overflow, reserved))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := MergeBookedDays(reserved, overflow)
		assert.Equal(t, once, MergeBookedDays(once, once))
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, MergeBookedDays(nil, nil))
		assert.Equal(t, []BookedDay{
			{Date: "2025-11-29", Times: []types.TimeString{"09:00", "10:00"}},
			{Date: "2025-12-01", Times: []types.TimeString{"13:00"}},
		}, MergeBookedDays(nil, reserved))
	})
}

func TestFullyBookedDates(t *testing.T) {
	full := BookedDay{Date: "2025-11-29", Times: append([]types.TimeString{}, CanonicalSlots...)}
	partial := BookedDay{Date: "2025-11-30", Times: []types.TimeString{"09:00"}}

	assert.Equal(t, []string{"2025-11-29"}, FullyBookedDates([]BookedDay{full, partial}))
	assert.Empty(t, FullyBookedDates([]BookedDay{partial}))
}

func TestFreeSlotsForDay(t *testing.T) {
	date := time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC)

	t.Run("future day returns canonical minus occupied", func(t *testing.T) {
		now := time.Date(2025, 11, 28, 12, 0, 0, 0, time.UTC)
		reserved := []types.TimeString{"09:00", "13:00"}

		free := FreeSlotsForDay(date, reserved, nil, now)

		assert.Equal(t, []types.TimeString{
			"09:30", "10:00", "10:30", "11:00", "11:30", "13:30", "14:00", "14:30",
		}, free)
	})

	t.Run("overflow slots occupy their own time", func(t *testing.T) {
		now := time.Date(2025, 11, 28, 12, 0, 0, 0, time.UTC)
		overflow := []types.TimeString{"08:30", "10:00"}

		free := FreeSlotsForDay(date, nil, overflow, now)

		// 08:30 joins the candidates as a non-standard slot but is
		// occupied either way, same as 10:00
		assert.NotContains(t, free, types.TimeString("08:30"))
		assert.NotContains(t, free, types.TimeString("10:00"))
		assert.Contains(t, free, types.TimeString("09:00"))
	})

	t.Run("today filters past times inclusively", func(t *testing.T) {
		now := time.Date(2025, 11, 29, 10, 5, 0, 0, time.UTC)

		free := FreeSlotsForDay(date, nil, nil, now)

		assert.Equal(t, []types.TimeString{
			"10:30", "11:00", "11:30", "13:00", "13:30", "14:00", "14:30",
		}, free)
	})

	t.Run("today at slot boundary excludes the boundary slot", func(t *testing.T) {
		now := time.Date(2025, 11, 29, 10, 0, 0, 0, time.UTC)

		free := FreeSlotsForDay(date, nil, nil, now)

		assert.NotContains(t, free, types.TimeString("10:00"))
		assert.Contains(t, free, types.TimeString("10:30"))
	})

	t.Run("fully occupied day has no free slots", func(t *testing.T) {
		now := time.Date(2025, 11, 28, 12, 0, 0, 0, time.UTC)

		free := FreeSlotsForDay(date, CanonicalSlots, nil, now)

		assert.Empty(t, free)
	})
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC)))  // Saturday
	assert.True(t, IsWeekend(time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)))  // Sunday
	assert.False(t, IsWeekend(time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC))) // Friday
}
