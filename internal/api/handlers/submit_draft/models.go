package submit_draft

import (
	"time"

	submitDraft "github.com/easerve/Grooming-BookingService/internal/usecase/submit_draft"
)

// SubmitDraftResponse HTTP response model
type SubmitDraftResponse struct {
	ReservationID int64  `json:"reservationId"`
	PetID         string `json:"petId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	ServiceName   string `json:"serviceName"`
	TotalPrice    int    `json:"totalPrice"`
	CreatedAt     string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitDraft.Response) *SubmitDraftResponse {
	return &SubmitDraftResponse{
		ReservationID: resp.ReservationID,
		PetID:         resp.PetID,
		Date:          resp.Date,
		Time:          resp.Time,
		Status:        resp.Status,
		ServiceName:   resp.ServiceName,
		TotalPrice:    resp.TotalPrice,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
