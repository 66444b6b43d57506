package vehicles

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// VehicleRepository интерфейс репозитория каталога автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
