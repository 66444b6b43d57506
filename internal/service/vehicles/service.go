package vehicles

import (
	"context"
	"errors"
	"fmt"

	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/internal/service/vehicles/models"
)

// Service сервис каталога автомобилей
type Service struct {
	repo   VehicleRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo VehicleRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает каталог автомобилей
func (s *Service) List(ctx context.Context) (*models.ListVehiclesResponse, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list vehicles: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainVehicles(vehicles), nil
}

// GetByID возвращает автомобиль каталога по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VehicleResponse, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetByID: failed to get vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainVehicle(v), nil
}
