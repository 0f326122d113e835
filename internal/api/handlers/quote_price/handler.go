package quote_price

import (
	"errors"
	"net/http"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	quotePrice "github.com/easerve/Grooming-BookingService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры расчета цены"
	msgServiceNotFound    = "услуга не найдена"
	msgOptionNotFound     = "опция не принадлежит выбранной услуге"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/price/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuotePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /price/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, quotePrice.ErrServiceNotFound):
			h.logger.Warn("POST /price/quote - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, quotePrice.ErrOptionNotFound):
			h.logger.Warn("POST /price/quote - Option not found: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgOptionNotFound)

		default:
			h.logger.Error("POST /price/quote - Failed to quote price: service_id=%d, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
