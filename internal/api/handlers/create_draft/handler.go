package create_draft

import (
	"net/http"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	"github.com/easerve/Grooming-BookingService/internal/api/handlers/draftview"
)

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

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.Create(r.Context())
	if err != nil {
		h.logger.Error("POST /drafts - Failed to create draft: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /drafts - Draft created: draft_id=%s", draft.ID)
	handlers.RespondJSON(w, http.StatusCreated, draftview.FromDomain(draft))
}
