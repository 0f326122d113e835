package quote_price

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("quote_price: service not found")

	// ErrOptionNotFound возвращается, когда часть опций не принадлежит услуге
	ErrOptionNotFound = errors.New("quote_price: option not found for service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
