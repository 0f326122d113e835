package get_owner_pets

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	petsService "github.com/easerve/Grooming-BookingService/internal/service/pets"
)

const msgInvalidPhone = "некорректный номер телефона"

type Handler struct {
	service PetsService
	logger  Logger
}

func NewHandler(service PetsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{phone}/pets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]

	profiles, err := h.service.ListByPhone(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, petsService.ErrInvalidInput):
			h.logger.Warn("GET /owners/{phone}/pets - Invalid phone")
			handlers.RespondBadRequest(w, msgInvalidPhone)
		default:
			h.logger.Error("GET /owners/{phone}/pets - Failed to list pets: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromProfiles(profiles))
}
