package submit_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	submitAgreement "github.com/m04kA/SMC-RentalService/internal/usecase/submit_agreement"
)

const (
	msgUnauthorized         = "требуется аутентификация"
	msgNotFound             = "черновик не найден"
	msgForbidden            = "доступ запрещен"
	msgSubmitInProgress     = "черновик уже отправляется"
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
	useCase SubmitAgreementUseCase
	logger  Logger
}

func NewHandler(useCase SubmitAgreementUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	draftID := mux.Vars(r)["draftId"]

	result, err := h.useCase.Execute(r.Context(), draftID, userID)
	if err != nil {
		switch {
		case errors.Is(err, submitAgreement.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, submitAgreement.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/submit - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitAgreement.ErrSubmitInProgress):
			h.logger.Warn("POST /drafts/{id}/submit - Submit already in progress: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgSubmitInProgress)

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
			h.logger.Error("POST /drafts/{id}/submit - Failed to submit draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/submit - Agreement created: draft_id=%s, rental_id=%d, user_id=%d",
		draftID, result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
