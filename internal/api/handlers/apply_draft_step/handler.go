package apply_draft_step

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	"github.com/easerve/Grooming-BookingService/internal/api/handlers/draftview"
	"github.com/easerve/Grooming-BookingService/internal/domain"
	draftsService "github.com/easerve/Grooming-BookingService/internal/service/drafts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBirth       = "некорректный формат даты рождения, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные шага"
	msgInvalidOptionID    = "некорректный идентификатор опции"
	msgDraftNotFound      = "черновик не найден или истек"
	msgPetNotFound        = "питомец не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgOptionNotFound     = "опция не принадлежит выбранной услуге"
	msgStepOutOfOrder     = "шаг недоступен: предыдущие шаги не завершены"
	msgNoMainService      = "основная услуга еще не выбрана"
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

// HandlePhone PUT /api/v1/drafts/{draftId}/phone
func (h *Handler) HandlePhone(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req SetPhoneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{draftId}/phone - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.service.SetPhone(r.Context(), draftID, req.Phone)
	if err != nil {
		h.respondError(w, "PUT /drafts/{draftId}/phone", draftID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draftview.FromDomain(draft))
}

// HandlePet PUT /api/v1/drafts/{draftId}/pet
func (h *Handler) HandlePet(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req SetPetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{draftId}/pet - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	input, err := req.ToPetInput()
	if err != nil {
		h.logger.Warn("PUT /drafts/{draftId}/pet - Invalid birth date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBirth)
		return
	}

	draft, err := h.service.SetPet(r.Context(), draftID, input)
	if err != nil {
		h.respondError(w, "PUT /drafts/{draftId}/pet", draftID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draftview.FromDomain(draft))
}

// HandleDateTime PUT /api/v1/drafts/{draftId}/datetime
func (h *Handler) HandleDateTime(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req SetDateTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{draftId}/datetime - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.service.SetDateTime(r.Context(), draftID, req.ToDateTimeInput())
	if err != nil {
		h.respondError(w, "PUT /drafts/{draftId}/datetime", draftID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draftview.FromDomain(draft))
}

// HandleServices PUT /api/v1/drafts/{draftId}/services
func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var req SetServicesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{draftId}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.service.SetServices(r.Context(), draftID, req.ToServicesInput())
	if err != nil {
		h.respondError(w, "PUT /drafts/{draftId}/services", draftID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draftview.FromDomain(draft))
}

// HandleToggleOption POST /api/v1/drafts/{draftId}/options/{optionId}/toggle
func (h *Handler) HandleToggleOption(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID := vars["draftId"]

	optionID, err := strconv.ParseInt(vars["optionId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /drafts/{draftId}/options/{optionId}/toggle - Invalid optionId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOptionID)
		return
	}

	draft, err := h.service.ToggleOption(r.Context(), draftID, optionID)
	if err != nil {
		h.respondError(w, "POST /drafts/{draftId}/options/{optionId}/toggle", draftID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draftview.FromDomain(draft))
}

// respondError общая обработка ошибок сервиса черновиков
func (h *Handler) respondError(w http.ResponseWriter, route, draftID string, err error) {
	switch {
	case errors.Is(err, draftsService.ErrDraftNotFound):
		h.logger.Warn("%s - Draft not found: draft_id=%s", route, draftID)
		handlers.RespondNotFound(w, msgDraftNotFound)

	case errors.Is(err, draftsService.ErrPetNotFound):
		h.logger.Warn("%s - Pet not found: draft_id=%s", route, draftID)
		handlers.RespondNotFound(w, msgPetNotFound)

	case errors.Is(err, draftsService.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: draft_id=%s", route, draftID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, draftsService.ErrOptionNotFound):
		h.logger.Warn("%s - Option not found: draft_id=%s", route, draftID)
		handlers.RespondBadRequest(w, msgOptionNotFound)

	case errors.Is(err, domain.ErrDraftStepOutOfOrder):
		h.logger.Warn("%s - Step out of order: draft_id=%s", route, draftID)
		handlers.RespondError(w, http.StatusConflict, msgStepOutOfOrder)

	case errors.Is(err, domain.ErrDraftMissingService):
		h.logger.Warn("%s - No main service selected: draft_id=%s", route, draftID)
		handlers.RespondError(w, http.StatusConflict, msgNoMainService)

	case errors.Is(err, draftsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: draft_id=%s, error=%v", route, draftID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Internal error: draft_id=%s, error=%v", route, draftID, err)
		handlers.RespondInternalError(w)
	}
}
