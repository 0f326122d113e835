package submit_draft

import "time"

// Request модель запроса отправки черновика
type Request struct {
	DraftID string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ReservationID int64
	PetID         string
	Date          string
	Time          string
	Status        string
	ServiceName   string
	TotalPrice    int
	CreatedAt     time.Time
}
