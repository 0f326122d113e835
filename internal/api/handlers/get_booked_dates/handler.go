package get_booked_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	getBookedDates "github.com/easerve/Grooming-BookingService/internal/usecase/get_booked_dates"
)

const (
	msgInvalidScope  = "некорректный горизонт в месяцах"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase      GetBookedDatesUseCase
	defaultScope int
	logger       Logger
}

// NewHandler создает handler, defaultScope - горизонт в месяцах,
// когда параметр scopeMonths не передан
func NewHandler(useCase GetBookedDatesUseCase, defaultScope int, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		defaultScope: defaultScope,
		logger:       logger,
	}
}

// Handle GET /api/v1/schedule/booked-dates?scopeMonths=2&petWeight=9.5&breedType=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	scope := h.defaultScope
	if raw := query.Get("scopeMonths"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /schedule/booked-dates - Invalid scopeMonths: %v", err)
			handlers.RespondBadRequest(w, msgInvalidScope)
			return
		}
		scope = parsed
	}

	req := &getBookedDates.Request{ScopeMonths: scope}

	if raw := query.Get("petWeight"); raw != "" {
		weight, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.logger.Warn("GET /schedule/booked-dates - Invalid petWeight: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.PetWeight = &weight
	}

	if raw := query.Get("breedType"); raw != "" {
		bt, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /schedule/booked-dates - Invalid breedType: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.BreedType = &bt
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getBookedDates.ErrInvalidInput):
			h.logger.Warn("GET /schedule/booked-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
		default:
			h.logger.Error("GET /schedule/booked-dates - Failed to get booked dates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
