package pets

import "errors"

var (
	ErrPetNotFound   = errors.New("pet not found")
	ErrBreedNotFound = errors.New("breed not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInternal      = errors.New("internal error")
)
