package create_reservation

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("create_reservation: pet not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrOptionNotFound возвращается, когда часть опций не принадлежит услуге
	ErrOptionNotFound = errors.New("create_reservation: option not found for service")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrTimeInPast возвращается, когда время слота на сегодня уже прошло
	ErrTimeInPast = errors.New("create_reservation: slot time has already passed")

	// ErrWeekendOnly возвращается, когда питомец записывается только на выходные,
	// а запрошен будний день
	ErrWeekendOnly = errors.New("create_reservation: pet can only be booked on weekends")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
