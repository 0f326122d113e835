package update_reservation_status

import "github.com/easerve/Grooming-BookingService/internal/service/reservations/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// StatusChangeResponse HTTP response model
type StatusChangeResponse struct {
	ReservationID int64  `json:"reservationId"`
	OldStatus     string `json:"oldStatus"`
	NewStatus     string `json:"newStatus"`
}

// FromStatusChange конвертирует результат сервиса в HTTP response
func FromStatusChange(change *models.StatusChange) *StatusChangeResponse {
	return &StatusChangeResponse{
		ReservationID: change.ReservationID,
		OldStatus:     string(change.OldStatus),
		NewStatus:     string(change.NewStatus),
	}
}
