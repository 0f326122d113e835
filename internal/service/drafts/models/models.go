package models

import "time"

// PetInput данные шага выбора питомца.
// Либо PetID существующего питомца, либо параметры нового.
type PetInput struct {
	PetID   *string
	Name    string
	Weight  float64
	Birth   *time.Time
	BreedID *int64
}

// DateTimeInput данные шага даты и времени
type DateTimeInput struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ServicesInput данные шага выбора услуг
type ServicesInput struct {
	ServiceID            int64
	OptionIDs            []int64
	AdditionalServiceIDs []int64
	Inquiry              string
}
