package list_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	"github.com/easerve/Grooming-BookingService/internal/api/handlers/reservationview"
	"github.com/easerve/Grooming-BookingService/internal/domain"
	reservationsService "github.com/easerve/Grooming-BookingService/internal/service/reservations"
	"github.com/easerve/Grooming-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidParams = "некорректные параметры фильтра"
	msgInvalidStatus = "некорректный статус бронирования"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListResponse HTTP response model
type ListResponse struct {
	Reservations []*reservationview.ReservationView `json:"reservations"`
}

// Handle GET /api/v1/admin/reservations?from=2025-11-01&to=2025-11-30&status=waiting&includeCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	views, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidStatus):
			h.logger.Warn("GET /admin/reservations - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ListResponse{
		Reservations: reservationview.FromViews(views),
	})
}

// parseFilter разбирает query-параметры фильтра
func parseFilter(r *http.Request) (models.ListFilter, error) {
	query := r.URL.Query()

	var filter models.ListFilter

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return models.ListFilter{}, err
		}
		filter.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return models.ListFilter{}, err
		}
		filter.To = &to
	}

	if raw := query.Get("status"); raw != "" {
		status := domain.ReservationStatus(raw)
		filter.Status = &status
	}

	if raw := query.Get("includeCancelled"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return models.ListFilter{}, err
		}
		filter.IncludeCancelled = include
	}

	return filter, nil
}
