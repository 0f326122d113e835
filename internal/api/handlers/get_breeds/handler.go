package get_breeds

import (
	"net/http"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/breeds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	breeds, err := h.service.ListBreeds(r.Context())
	if err != nil {
		h.logger.Error("GET /breeds - Failed to list breeds: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(breeds))
}
