package timeslots

import "errors"

var (
	ErrSlotNotFound      = errors.New("time slot not found")
	ErrSlotAlreadyExists = errors.New("time slot already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternal          = errors.New("internal error")
)
