package create_pet

import (
	"context"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	petsService "github.com/easerve/Grooming-BookingService/internal/service/pets"
)

type PetsService interface {
	Create(ctx context.Context, p *domain.Pet) (*petsService.PetProfile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
