package cancel_reservation

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	reservationsService "github.com/easerve/Grooming-BookingService/internal/service/reservations"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidID           = "некорректный идентификатор бронирования"
	msgAlreadyCancelled    = "бронирование уже отменено"
	msgForbiddenTransition = "бронирование нельзя отменить"
	msgReservationNotFound = "бронирование не найдено"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{reservationId}/cancel - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	// Тело запроса опционально: пустое тело означает отмену без пометки.
	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /admin/reservations/{reservationId}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	change, err := h.service.Cancel(r.Context(), id, req.Memo)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{reservationId}/cancel - Not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /admin/reservations/{reservationId}/cancel - Already cancelled: reservation_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		case errors.Is(err, reservationsService.ErrForbiddenTransition):
			h.logger.Warn("PATCH /admin/reservations/{reservationId}/cancel - Forbidden: reservation_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgForbiddenTransition)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/reservations/{reservationId}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("PATCH /admin/reservations/{reservationId}/cancel - Failed to cancel: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{reservationId}/cancel - Cancelled: reservation_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromStatusChange(change))
}
