package get_day_slots

import (
	getDaySlots "github.com/easerve/Grooming-BookingService/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date        string   `json:"date"`
	FreeSlots   []string `json:"freeSlots"`
	FullyBooked bool     `json:"fullyBooked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	return &DaySlotsResponse{
		Date:        resp.Date,
		FreeSlots:   resp.FreeSlots,
		FullyBooked: resp.FullyBooked,
	}
}
