package get_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	"github.com/easerve/Grooming-BookingService/internal/api/handlers/draftview"
	draftsService "github.com/easerve/Grooming-BookingService/internal/service/drafts"
)

const msgDraftNotFound = "черновик не найден или истек"

type Handler struct {
	service DraftsService
	logger  Logger
}

func NewHandler(service DraftsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	draft, err := h.service.Get(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, draftsService.ErrDraftNotFound), errors.Is(err, draftsService.ErrInvalidInput):
			h.logger.Warn("GET /drafts/{draftId} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)
		default:
			h.logger.Error("GET /drafts/{draftId} - Failed to get draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draftview.FromDomain(draft))
}
