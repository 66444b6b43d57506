package update_rental

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRentalID    = "некорректный ID договора"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyUpdate        = "запрос не меняет ни одного поля"
	msgInvalidInput       = "некорректные данные"
	msgNotFound           = "договор не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service RentalService
	logger  Logger
}

func NewHandler(service RentalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rentals/{rentalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	rentalID, err := strconv.ParseInt(mux.Vars(r)["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /rentals/{id} - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	var req models.UpdateRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rentals/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), rentalID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrRentalNotFound):
			h.logger.Warn("PATCH /rentals/{id} - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rentals.ErrAccessDenied):
			h.logger.Warn("PATCH /rentals/{id} - Access denied: rental_id=%d, user_id=%d", rentalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rentals.ErrEmptyUpdate):
			h.logger.Warn("PATCH /rentals/{id} - Empty update: rental_id=%d", rentalID)
			handlers.RespondBadRequest(w, msgEmptyUpdate)

		case errors.Is(err, rentals.ErrInvalidInput):
			h.logger.Warn("PATCH /rentals/{id} - Invalid input: rental_id=%d, error=%v", rentalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /rentals/{id} - Failed to update rental: rental_id=%d, error=%v", rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rentals/{id} - Rental updated successfully: rental_id=%d, user_id=%d", rentalID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
