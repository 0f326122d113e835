package get_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	catalogService "github.com/easerve/Grooming-BookingService/internal/service/catalog"
)

const (
	msgInvalidWeight = "некорректный вес питомца"
	msgInvalidBreed  = "некорректный идентификатор породы"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services?weight=5.5&breedId=12
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weight, err := strconv.ParseFloat(r.URL.Query().Get("weight"), 64)
	if err != nil {
		h.logger.Warn("GET /services - Invalid weight: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeight)
		return
	}

	var breedID *int64
	if raw := r.URL.Query().Get("breedId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /services - Invalid breedId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBreed)
			return
		}
		breedID = &id
	}

	result, err := h.service.ListServices(r.Context(), weight, breedID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("GET /services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeight)
		default:
			h.logger.Error("GET /services - Failed to list services: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceCatalog(result))
}
