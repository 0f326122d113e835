package create_reservation

import (
	"errors"
	"net/http"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	createReservation "github.com/easerve/Grooming-BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidDate        = "некорректная или прошедшая дата бронирования"
	msgTimeInPast         = "время слота уже прошло"
	msgWeekendOnly        = "питомец записывается только на выходные дни"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgPetNotFound        = "питомец не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgOptionNotFound     = "опция не принадлежит выбранной услуге"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: pet_id=%s, date=%s, time=%s",
				req.PetID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrWeekendOnly):
			h.logger.Warn("POST /reservations - Weekend only: pet_id=%s, date=%s", req.PetID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgWeekendOnly)

		case errors.Is(err, createReservation.ErrPetNotFound):
			h.logger.Warn("POST /reservations - Pet not found: pet_id=%s", req.PetID)
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrOptionNotFound):
			h.logger.Warn("POST /reservations - Option not found: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgOptionNotFound)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrTimeInPast):
			h.logger.Warn("POST /reservations - Time in past: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: pet_id=%s, error=%v", req.PetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, pet_id=%s", result.ID, req.PetID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
