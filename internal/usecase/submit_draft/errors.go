package submit_draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истек
	ErrDraftNotFound = errors.New("submit_draft: draft not found")

	// ErrDraftIncomplete возвращается, когда черновик заполнен не полностью
	ErrDraftIncomplete = errors.New("submit_draft: draft is incomplete")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_draft: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_draft: internal error")
)
