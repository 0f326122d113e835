package domain

import (
	"time"

	"github.com/easerve/Grooming-BookingService/pkg/types"
)

// ReservationStatus represents the staff-managed reservation lifecycle
type ReservationStatus string

const (
	StatusWaiting   ReservationStatus = "waiting"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// statusTransitions lists the allowed status transitions.
// Transitions are performed by staff only, there are no automatic ones
var statusTransitions = map[ReservationStatus][]ReservationStatus{
	StatusWaiting:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ValidReservationStatus reports whether s is a known status value
func ValidReservationStatus(s ReservationStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// Reservation represents a persisted grooming reservation
type Reservation struct {
	ID     int64
	PetID  string // uuid
	Date   time.Time
	Time   types.TimeString
	Memo   *string
	Status ReservationStatus

	// Denormalized display data
	ServiceName        string  // main service + option names joined
	AdditionalServices *string // joined additional service names

	TotalPrice      int // KRW, main service + options (min of the quoted range)
	AdditionalPrice int // KRW, additional services

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true while the reservation still occupies its time slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// CanTransitionTo returns true if the status change is allowed by the lifecycle
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range statusTransitions[r.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true while cancellation is still possible
func (r *Reservation) CanBeCancelled() bool {
	return r.CanTransitionTo(StatusCancelled)
}

// ReservationsFilter filters the staff reservation listing
type ReservationsFilter struct {
	From             *time.Time         // Period start (optional)
	To               *time.Time         // Period end (optional)
	Status           *ReservationStatus // Status filter (optional)
	IncludeCancelled bool               // Whether to include cancelled reservations
}
