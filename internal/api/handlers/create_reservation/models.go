package create_reservation

import (
	"time"

	createReservation "github.com/easerve/Grooming-BookingService/internal/usecase/create_reservation"
	"github.com/easerve/Grooming-BookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	PetID                string  `json:"petId"`
	Date                 string  `json:"date"` // "2025-11-29"
	Time                 string  `json:"time"` // "10:00"
	ServiceID            int64   `json:"serviceId"`
	OptionIDs            []int64 `json:"optionIds,omitempty"`
	AdditionalServiceIDs []int64 `json:"additionalServiceIds,omitempty"`
	Memo                 *string `json:"memo,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID                 int64   `json:"id"`
	PetID              string  `json:"petId"`
	Date               string  `json:"date"`
	Time               string  `json:"time"`
	Status             string  `json:"status"`
	ServiceName        string  `json:"serviceName"`
	AdditionalServices *string `json:"additionalServices,omitempty"`
	TotalPrice         int     `json:"totalPrice"`
	AdditionalPrice    int     `json:"additionalPrice"`
	CreatedAt          string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом времени)
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		PetID:                r.PetID,
		Date:                 r.Date,
		Time:                 slotTime,
		ServiceID:            r.ServiceID,
		OptionIDs:            r.OptionIDs,
		AdditionalServiceIDs: r.AdditionalServiceIDs,
		Memo:                 r.Memo,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                 resp.ID,
		PetID:              resp.PetID,
		Date:               resp.Date,
		Time:               resp.Time.String(),
		Status:             resp.Status,
		ServiceName:        resp.ServiceName,
		AdditionalServices: resp.AdditionalServices,
		TotalPrice:         resp.TotalPrice,
		AdditionalPrice:    resp.AdditionalPrice,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
	}
}
