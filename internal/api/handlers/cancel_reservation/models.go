package cancel_reservation

import "github.com/easerve/Grooming-BookingService/internal/service/reservations/models"

// CancelRequest тело запроса отмены бронирования.
type CancelRequest struct {
	Memo *string `json:"memo,omitempty"`
}

// CancelResponse ответ на отмену бронирования.
type CancelResponse struct {
	ReservationID int64  `json:"reservationId"`
	OldStatus     string `json:"oldStatus"`
	NewStatus     string `json:"newStatus"`
}

func FromStatusChange(change *models.StatusChange) *CancelResponse {
	return &CancelResponse{
		ReservationID: change.ReservationID,
		OldStatus:     string(change.OldStatus),
		NewStatus:     string(change.NewStatus),
	}
}
