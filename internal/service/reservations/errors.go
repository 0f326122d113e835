package reservations

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrForbiddenTransition = errors.New("status transition not allowed")
	ErrAlreadyCancelled    = errors.New("reservation already in a final state")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
)
