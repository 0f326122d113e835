package create_pet

import (
	"errors"
	"net/http"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	petsService "github.com/easerve/Grooming-BookingService/internal/service/pets"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBirth       = "некорректный формат даты рождения, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные питомца"
	msgBreedNotFound      = "порода не найдена"
)

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

// Handle POST /api/v1/pets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pet, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /pets - Invalid birth date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBirth)
		return
	}

	profile, err := h.service.Create(r.Context(), pet)
	if err != nil {
		switch {
		case errors.Is(err, petsService.ErrInvalidInput):
			h.logger.Warn("POST /pets - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, petsService.ErrBreedNotFound):
			h.logger.Warn("POST /pets - Breed not found: %v", err)
			handlers.RespondNotFound(w, msgBreedNotFound)

		default:
			h.logger.Error("POST /pets - Failed to create pet: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pets - Pet created: pet_id=%s", profile.Pet.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromProfile(profile))
}
