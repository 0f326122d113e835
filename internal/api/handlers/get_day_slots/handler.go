package get_day_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	getDaySlots "github.com/easerve/Grooming-BookingService/internal/usecase/get_day_slots"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidDate   = "некорректная или прошедшая дата"
	msgWeekendOnly   = "питомец записывается только на выходные дни"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/days/{date}/slots?petWeight=9.5&breedType=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getDaySlots.Request{Date: mux.Vars(r)["date"]}

	query := r.URL.Query()

	if raw := query.Get("petWeight"); raw != "" {
		weight, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.logger.Warn("GET /schedule/days/{date}/slots - Invalid petWeight: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.PetWeight = &weight
	}

	if raw := query.Get("breedType"); raw != "" {
		bt, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /schedule/days/{date}/slots - Invalid breedType: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.BreedType = &bt
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /schedule/days/{date}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getDaySlots.ErrInvalidDate):
			h.logger.Warn("GET /schedule/days/{date}/slots - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getDaySlots.ErrWeekendOnly):
			h.logger.Warn("GET /schedule/days/{date}/slots - Weekend only: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgWeekendOnly)

		default:
			h.logger.Error("GET /schedule/days/{date}/slots - Failed to get slots: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
