package timeslot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда дополнительный слот не найден
	ErrSlotNotFound = errors.New("timeslot.repository: additional time slot not found")

	// ErrSlotAlreadyExists возвращается при попытке создать дубликат слота
	ErrSlotAlreadyExists = errors.New("timeslot.repository: additional time slot already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timeslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timeslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timeslot.repository: failed to scan row")
)
