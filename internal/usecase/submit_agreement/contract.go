package submit_agreement

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// DraftStore интерфейс хранилища черновиков
type DraftStore interface {
	GetByID(id string) (*domain.Draft, error)
	Save(d *domain.Draft) error
	Delete(id string) error
}

// RentalRepository интерфейс репозитория договоров
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
}

// VehicleRepository интерфейс репозитория каталога автомобилей
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
