package get_day_slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("get_day_slots: invalid date")

	// ErrWeekendOnly возвращается, когда питомец записывается только на выходные,
	// а запрошен будний день
	ErrWeekendOnly = errors.New("get_day_slots: pet can only be booked on weekends")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_slots: internal error")
)
