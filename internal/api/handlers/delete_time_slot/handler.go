package delete_time_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	timeslotsService "github.com/easerve/Grooming-BookingService/internal/service/timeslots"
)

const (
	msgInvalidID    = "некорректный идентификатор слота"
	msgSlotNotFound = "слот не найден"
)

type Handler struct {
	service TimeSlotsService
	logger  Logger
}

func NewHandler(service TimeSlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/time-slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/time-slots/{slotId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, timeslotsService.ErrSlotNotFound):
			h.logger.Warn("DELETE /admin/time-slots/{slotId} - Not found: slot_id=%d", id)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, timeslotsService.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/time-slots/{slotId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("DELETE /admin/time-slots/{slotId} - Failed to delete slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/time-slots/{slotId} - Deleted: slot_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
