package submit_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	createReservation "github.com/easerve/Grooming-BookingService/internal/usecase/create_reservation"
	submitDraft "github.com/easerve/Grooming-BookingService/internal/usecase/submit_draft"
)

const (
	msgDraftNotFound    = "черновик не найден или истек"
	msgDraftIncomplete  = "черновик заполнен не полностью"
	msgSlotNotAvailable = "выбранный временной слот недоступен"
	msgWeekendOnly      = "питомец записывается только на выходные дни"
	msgInvalidDate      = "некорректная или прошедшая дата бронирования"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase SubmitDraftUseCase
	logger  Logger
}

func NewHandler(useCase SubmitDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	result, err := h.useCase.Execute(r.Context(), &submitDraft.Request{DraftID: draftID})
	if err != nil {
		switch {
		case errors.Is(err, submitDraft.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{draftId}/submit - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, submitDraft.ErrDraftIncomplete):
			h.logger.Warn("POST /drafts/{draftId}/submit - Draft incomplete: draft_id=%s, error=%v", draftID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDraftIncomplete)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /drafts/{draftId}/submit - Slot not available: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrWeekendOnly):
			h.logger.Warn("POST /drafts/{draftId}/submit - Weekend only: draft_id=%s", draftID)
			handlers.RespondError(w, http.StatusConflict, msgWeekendOnly)

		case errors.Is(err, createReservation.ErrInvalidDate), errors.Is(err, createReservation.ErrTimeInPast):
			h.logger.Warn("POST /drafts/{draftId}/submit - Invalid date/time: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /drafts/{draftId}/submit - Service not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /drafts/{draftId}/submit - Failed to submit draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{draftId}/submit - Draft submitted: draft_id=%s, reservation_id=%d",
		draftID, result.ReservationID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
