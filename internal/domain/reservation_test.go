package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationTransitions(t *testing.T) {
	tests := []struct {
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{StatusWaiting, StatusConfirmed, true},
		{StatusWaiting, StatusCancelled, true},
		{StatusWaiting, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusWaiting, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusWaiting, false},
		{StatusCancelled, StatusWaiting, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" -> "+string(tt.to), func(t *testing.T) {
			r := Reservation{Status: tt.from}
			assert.Equal(t, tt.allowed, r.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationCanBeCancelled(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusWaiting}).CanBeCancelled())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCancelled}).CanBeCancelled())
}

func TestReservationIsActive(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusWaiting}).IsActive())
	assert.True(t, (&Reservation{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Reservation{Status: StatusCancelled}).IsActive())
}

func TestValidReservationStatus(t *testing.T) {
	assert.True(t, ValidReservationStatus(StatusWaiting))
	assert.True(t, ValidReservationStatus(StatusCancelled))
	assert.False(t, ValidReservationStatus("pending"))
	assert.False(t, ValidReservationStatus(""))
}
