package drafts

import "errors"

var (
	ErrDraftNotFound   = errors.New("draft not found")
	ErrPetNotFound     = errors.New("pet not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrOptionNotFound  = errors.New("option not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
)
