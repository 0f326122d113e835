package quote_price

import (
	quotePrice "github.com/easerve/Grooming-BookingService/internal/usecase/quote_price"
)

// QuotePriceRequest HTTP request model
type QuotePriceRequest struct {
	ServiceID            int64   `json:"serviceId"`
	OptionIDs            []int64 `json:"optionIds,omitempty"`
	AdditionalServiceIDs []int64 `json:"additionalServiceIds,omitempty"`
	PetWeight            float64 `json:"petWeight"`
}

// QuotePriceResponse HTTP response model
type QuotePriceResponse struct {
	ServiceID       int64  `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	PriceMin        int    `json:"priceMin"`
	PriceMax        int    `json:"priceMax"`
	Display         string `json:"display"`
	AdditionalTotal int    `json:"additionalTotal"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuotePriceRequest) ToUseCaseRequest() *quotePrice.Request {
	return &quotePrice.Request{
		ServiceID:            r.ServiceID,
		OptionIDs:            r.OptionIDs,
		AdditionalServiceIDs: r.AdditionalServiceIDs,
		PetWeight:            r.PetWeight,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuotePriceResponse {
	return &QuotePriceResponse{
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		PriceMin:        resp.PriceMin,
		PriceMax:        resp.PriceMax,
		Display:         resp.Display,
		AdditionalTotal: resp.AdditionalTotal,
	}
}
