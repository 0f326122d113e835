package create_time_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	"github.com/easerve/Grooming-BookingService/internal/domain"
	timeslotsService "github.com/easerve/Grooming-BookingService/internal/service/timeslots"
	"github.com/easerve/Grooming-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата слота"
	msgInvalidTime        = "некорректное время слота"
	msgSlotAlreadyExists  = "слот на это время уже существует"
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

// Handle POST /api/v1/admin/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/time-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /admin/time-slots - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slotTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("POST /admin/time-slots - Invalid time: %s", req.Time)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	slot, err := h.service.Create(r.Context(), date, slotTime, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, timeslotsService.ErrSlotAlreadyExists):
			h.logger.Warn("POST /admin/time-slots - Already exists: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyExists)

		case errors.Is(err, timeslotsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/time-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/time-slots - Failed to create slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/time-slots - Created: slot_id=%d, date=%s, time=%s", slot.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromSlot(slot))
}
