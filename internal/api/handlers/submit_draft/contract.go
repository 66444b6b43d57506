package submit_draft

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

type SubmitAgreementUseCase interface {
	Execute(ctx context.Context, draftID string, userID int64) (*models.RentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
