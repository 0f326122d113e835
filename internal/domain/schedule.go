package domain

import (
	"sort"
	"time"

	"github.com/easerve/Grooming-BookingService/pkg/types"
)

// BookedDay aggregates occupied times for one date.
// Date is a YYYY-MM-DD string, Times are deduplicated and sorted ascending
// by minute-of-day.
type BookedDay struct {
	Date  string
	Times []types.TimeString
}

// IsFullyBooked returns true when the occupied-time count meets or exceeds
// the canonical per-day slot count
func (d *BookedDay) IsFullyBooked() bool {
	return len(d.Times) >= CanonicalSlotCount()
}

// MergeBookedDays merges two independent occupied-slot lists (confirmed
// reservations and manually added slots) into one: union by date string,
// times deduplicated across sources and sorted by minute-of-day, dates
// sorted lexicographically. The operation is commutative and idempotent
func MergeBookedDays(a, b []BookedDay) []BookedDay {
	byDate := make(map[string]map[types.TimeString]struct{})

	collect := func(days []BookedDay) {
		for _, day := range days {
			times, ok := byDate[day.Date]
			if !ok {
				times = make(map[types.TimeString]struct{})
				byDate[day.Date] = times
			}
			for _, t := range day.Times {
				times[t] = struct{}{}
			}
		}
	}
	collect(a)
	collect(b)

	merged := make([]BookedDay, 0, len(byDate))
	for date, timeSet := range byDate {
		times := make([]types.TimeString, 0, len(timeSet))
		for t := range timeSet {
			times = append(times, t)
		}
		sortTimes(times)
		merged = append(merged, BookedDay{Date: date, Times: times})
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Date < merged[j].Date })
	return merged
}

// FullyBookedDates returns the dates whose occupied-time count reached the
// fully-booked threshold
func FullyBookedDates(days []BookedDay) []string {
	dates := make([]string, 0)
	for i := range days {
		if days[i].IsFullyBooked() {
			dates = append(dates, days[i].Date)
		}
	}
	return dates
}

// FreeSlotsForDay computes the free slots for a date: the canonical list
// extended with overflow-source times outside of it, minus times occupied by
// either source, minus times already past when date is today (per now)
func FreeSlotsForDay(date time.Time, reserved, overflow []types.TimeString, now time.Time) []types.TimeString {
	candidates := extendCanonical(overflow)

	occupied := make(map[types.TimeString]struct{}, len(reserved)+len(overflow))
	for _, t := range reserved {
		occupied[t] = struct{}{}
	}
	for _, t := range overflow {
		occupied[t] = struct{}{}
	}

	// For today, slots whose time has already passed are unavailable
	cutoff := -1
	if isSameDay(date, now) {
		cutoff = now.Hour()*60 + now.Minute()
	}

	free := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		if _, taken := occupied[slot]; taken {
			continue
		}
		if cutoff >= 0 && slot.MustMinutes() <= cutoff {
			continue
		}
		free = append(free, slot)
	}

	return free
}

// extendCanonical returns the canonical list extended with overflow-source
// times missing from it (staff may open slots outside the regular schedule)
func extendCanonical(overflow []types.TimeString) []types.TimeString {
	seen := make(map[types.TimeString]struct{}, len(CanonicalSlots))
	candidates := make([]types.TimeString, 0, len(CanonicalSlots)+len(overflow))

	for _, t := range CanonicalSlots {
		seen[t] = struct{}{}
		candidates = append(candidates, t)
	}
	for _, t := range overflow {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		candidates = append(candidates, t)
	}

	sortTimes(candidates)
	return candidates
}

// IsWeekend reports whether the date falls on Saturday or Sunday
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func sortTimes(times []types.TimeString) {
	sort.Slice(times, func(i, j int) bool {
		return times[i].MustMinutes() < times[j].MustMinutes()
	})
}

func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
