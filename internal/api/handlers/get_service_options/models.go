package get_service_options

import "github.com/easerve/Grooming-BookingService/internal/domain"

// OptionResponse HTTP response model
type OptionResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	AddPrice int    `json:"addPrice"`
	Variable bool   `json:"variable"`
}

// OptionGroupResponse опции одной категории
type OptionGroupResponse struct {
	Category    string           `json:"category"`
	MultiSelect bool             `json:"multiSelect"`
	Options     []OptionResponse `json:"options"`
}

// OptionsResponse группы опций услуги
type OptionsResponse struct {
	Groups []OptionGroupResponse `json:"groups"`
}

// FromDomain конвертирует группы опций в HTTP response
func FromDomain(groups []domain.OptionGroup) *OptionsResponse {
	out := make([]OptionGroupResponse, 0, len(groups))
	for _, g := range groups {
		options := make([]OptionResponse, 0, len(g.Options))
		for _, opt := range g.Options {
			options = append(options, OptionResponse{
				ID:       opt.ID,
				Name:     opt.Name,
				AddPrice: opt.AddPrice,
				Variable: opt.Variable,
			})
		}
		out = append(out, OptionGroupResponse{
			Category:    g.Category,
			MultiSelect: g.MultiSelect,
			Options:     options,
		})
	}
	return &OptionsResponse{Groups: out}
}
