package export_reservations

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
	"github.com/easerve/Grooming-BookingService/internal/domain"
	reservationsService "github.com/easerve/Grooming-BookingService/internal/service/reservations"
	"github.com/easerve/Grooming-BookingService/internal/service/reservations/models"
)

const msgInvalidParams = "некорректные параметры фильтра"

type Handler struct {
	service   ReservationsService
	exportDir string
	logger    Logger
}

func NewHandler(service ReservationsService, exportDir string, logger Logger) *Handler {
	return &Handler{
		service:   service,
		exportDir: exportDir,
		logger:    logger,
	}
}

// Handle GET /api/v1/admin/reservations/export?from=2025-11-01&to=2025-11-30&status=waiting
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /admin/reservations/export - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	path, err := h.service.ExportToExcel(r.Context(), filter, h.exportDir)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations/export - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /admin/reservations/export - Failed to export: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations/export - Exported: file=%s", path)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filepath.Base(path)+"\"")
	http.ServeFile(w, r, path)
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
