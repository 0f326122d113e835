package create_time_slot

import (
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/infra/storage/timeslot"
)

// CreateSlotRequest тело запроса создания слота.
type CreateSlotRequest struct {
	Date string  `json:"date"`
	Time string  `json:"time"`
	Note *string `json:"note,omitempty"`
}

// SlotResponse созданный слот.
type SlotResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

func FromSlot(slot *timeslot.AdditionalSlot) *SlotResponse {
	return &SlotResponse{
		ID:        slot.ID,
		Date:      slot.Date.Format(domain.DateFormat),
		Time:      string(slot.Time),
		Note:      slot.Note,
		CreatedAt: slot.CreatedAt.Format(time.RFC3339),
	}
}
