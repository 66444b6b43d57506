package list_rentals

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

type RentalService interface {
	List(ctx context.Context, userID int64, filter models.ListRentalsFilter) (*models.ListRentalsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
