package get_owner_pets

import (
	"context"

	petsService "github.com/easerve/Grooming-BookingService/internal/service/pets"
)

type PetsService interface {
	ListByPhone(ctx context.Context, phone string) ([]*petsService.PetProfile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
