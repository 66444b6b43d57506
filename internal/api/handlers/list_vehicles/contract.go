package list_vehicles

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/vehicles/models"
)

type VehicleService interface {
	List(ctx context.Context) (*models.ListVehiclesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
