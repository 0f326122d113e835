package update_reservation_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	"github.com/easerve/Grooming-BookingService/internal/domain"
	reservationsService "github.com/easerve/Grooming-BookingService/internal/service/reservations"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidID           = "некорректный идентификатор бронирования"
	msgInvalidStatus       = "некорректный статус бронирования"
	msgForbiddenTransition = "переход статуса недопустим"
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

// Handle PATCH /api/v1/admin/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{reservationId}/status - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{reservationId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	change, err := h.service.UpdateStatus(r.Context(), id, domain.ReservationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{reservationId}/status - Not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/reservations/{reservationId}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservationsService.ErrForbiddenTransition):
			h.logger.Warn("PATCH /admin/reservations/{reservationId}/status - Forbidden transition: reservation_id=%d, status=%s",
				id, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgForbiddenTransition)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/reservations/{reservationId}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("PATCH /admin/reservations/{reservationId}/status - Failed to update: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{reservationId}/status - Updated: reservation_id=%d, %s -> %s",
		id, change.OldStatus, change.NewStatus)
	handlers.RespondJSON(w, http.StatusOK, FromStatusChange(change))
}
