package navigate_draft

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

// HandleBack POST /api/v1/drafts/{draftId}/back
// Возврат на предыдущий шаг, данные более поздних шагов сохраняются
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	draft, err := h.service.Back(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, draftsService.ErrDraftNotFound), errors.Is(err, draftsService.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{draftId}/back - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)
		default:
			h.logger.Error("POST /drafts/{draftId}/back - Failed to navigate: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draftview.FromDomain(draft))
}

// HandleDelete DELETE /api/v1/drafts/{draftId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	if err := h.service.Delete(r.Context(), draftID); err != nil {
		h.logger.Error("DELETE /drafts/{draftId} - Failed to delete: draft_id=%s, error=%v", draftID, err)
		handlers.RespondInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
