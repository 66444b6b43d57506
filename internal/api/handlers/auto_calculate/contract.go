package auto_calculate

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/drafts/models"
)

type DraftService interface {
	AutoCalculate(ctx context.Context, draftID string, userID int64) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
