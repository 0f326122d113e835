package get_booked_dates

import (
	getBookedDates "github.com/easerve/Grooming-BookingService/internal/usecase/get_booked_dates"
)

// BookedDateResponse занятые времена одной даты
type BookedDateResponse struct {
	Date        string   `json:"date"`
	Times       []string `json:"times"`
	FullyBooked bool     `json:"fullyBooked"`
}

// BookedDatesResponse HTTP response model
type BookedDatesResponse struct {
	ScopeMonths int                  `json:"scopeMonths"`
	Dates       []BookedDateResponse `json:"dates"`
	FullyBooked []string             `json:"fullyBookedDates"`
	WeekendOnly bool                 `json:"weekendOnly"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookedDates.Response) *BookedDatesResponse {
	dates := make([]BookedDateResponse, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, BookedDateResponse{
			Date:        d.Date,
			Times:       d.Times,
			FullyBooked: d.FullyBooked,
		})
	}
	return &BookedDatesResponse{
		ScopeMonths: resp.ScopeMonths,
		Dates:       dates,
		FullyBooked: resp.FullyBooked,
		WeekendOnly: resp.WeekendOnly,
	}
}
