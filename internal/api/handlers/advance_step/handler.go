package advance_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/drafts"
)

const (
	msgUnauthorized         = "требуется аутентификация"
	msgNotFound             = "черновик не найден"
	msgForbidden            = "доступ запрещен"
	msgClientIncomplete     = "заполните все обязательные поля клиента"
	msgInvalidClientCNIC    = "некорректный формат CNIC клиента, ожидается 12345-1234567-1"
	msgVehicleIncomplete    = "заполните все данные автомобиля"
	msgPeriodIncomplete     = "заполните даты и время выдачи и возврата"
	msgReturnBeforeDelivery = "возврат должен быть позже выдачи"
	msgWitnessIncomplete    = "заполните все данные свидетеля"
	msgInvalidWitnessCNIC   = "некорректный формат CNIC свидетеля, ожидается 12345-1234567-1"
	msgNegativeAdvance      = "аванс не может быть отрицательным"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/advance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	draftID := mux.Vars(r)["draftId"]

	result, err := h.service.Advance(r.Context(), draftID, userID)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/advance - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drafts.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/advance - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrClientIncomplete):
			handlers.RespondUnprocessable(w, msgClientIncomplete)

		case errors.Is(err, domain.ErrInvalidClientCNIC):
			handlers.RespondUnprocessable(w, msgInvalidClientCNIC)

		case errors.Is(err, domain.ErrVehicleIncomplete):
			handlers.RespondUnprocessable(w, msgVehicleIncomplete)

		case errors.Is(err, domain.ErrPeriodIncomplete):
			handlers.RespondUnprocessable(w, msgPeriodIncomplete)

		case errors.Is(err, domain.ErrReturnNotAfterDelivery):
			handlers.RespondUnprocessable(w, msgReturnBeforeDelivery)

		case errors.Is(err, domain.ErrWitnessIncomplete):
			handlers.RespondUnprocessable(w, msgWitnessIncomplete)

		case errors.Is(err, domain.ErrInvalidWitnessCNIC):
			handlers.RespondUnprocessable(w, msgInvalidWitnessCNIC)

		case errors.Is(err, domain.ErrNegativeAdvance):
			handlers.RespondUnprocessable(w, msgNegativeAdvance)

		default:
			h.logger.Error("POST /drafts/{id}/advance - Failed: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/advance - Step advanced: draft_id=%s, step=%d", draftID, result.Step)
	handlers.RespondJSON(w, http.StatusOK, result)
}
