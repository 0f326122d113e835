package draftstore

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истек его TTL
	ErrDraftNotFound = errors.New("draftstore: draft not found")

	// ErrStore возвращается при ошибках работы с Redis
	ErrStore = errors.New("draftstore: storage error")
)
