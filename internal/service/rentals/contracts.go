package rentals

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RentalRepository интерфейс репозитория договоров
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context, filter domain.RentalsFilter) ([]*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
