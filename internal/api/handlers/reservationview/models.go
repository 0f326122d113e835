// Package reservationview содержит общий HTTP response бронирования,
// используемый ручками просмотра и админки
package reservationview

import (
	"time"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/internal/service/reservations/models"
)

// ReservationView HTTP response model бронирования с данными питомца
type ReservationView struct {
	ID                 int64   `json:"id"`
	PetID              string  `json:"petId"`
	PetName            string  `json:"petName,omitempty"`
	OwnerPhone         string  `json:"ownerPhone,omitempty"`
	Date               string  `json:"date"`
	Time               string  `json:"time"`
	Status             string  `json:"status"`
	ServiceName        string  `json:"serviceName"`
	AdditionalServices *string `json:"additionalServices,omitempty"`
	TotalPrice         int     `json:"totalPrice"`
	AdditionalPrice    int     `json:"additionalPrice"`
	Memo               *string `json:"memo,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromView конвертирует модель сервиса в HTTP response
func FromView(v *models.ReservationView) *ReservationView {
	res := v.Reservation
	return &ReservationView{
		ID:                 res.ID,
		PetID:              res.PetID,
		PetName:            v.PetName,
		OwnerPhone:         v.OwnerPhone,
		Date:               res.Date.Format(domain.DateFormat),
		Time:               res.Time.String(),
		Status:             string(res.Status),
		ServiceName:        res.ServiceName,
		AdditionalServices: res.AdditionalServices,
		TotalPrice:         res.TotalPrice,
		AdditionalPrice:    res.AdditionalPrice,
		Memo:               res.Memo,
		CreatedAt:          res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          res.UpdatedAt.Format(time.RFC3339),
	}
}

// FromViews конвертирует список моделей сервиса в HTTP response
func FromViews(views []*models.ReservationView) []*ReservationView {
	out := make([]*ReservationView, 0, len(views))
	for _, v := range views {
		out = append(out, FromView(v))
	}
	return out
}
