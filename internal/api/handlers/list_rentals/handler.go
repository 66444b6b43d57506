package list_rentals

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

const (
	msgUnauthorized  = "требуется аутентификация"
	msgInvalidStatus = "некорректный статус оплаты"
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

// Handle GET /api/v1/rentals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Фильтр по статусу оплаты из query параметров (опционально)
	var filter models.ListRentalsFilter
	if status := r.URL.Query().Get("paymentStatus"); status != "" {
		filter.PaymentStatus = &status
	}

	result, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, rentals.ErrInvalidInput) {
			h.logger.Warn("GET /rentals - Invalid payment status filter: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /rentals - Failed to list rentals: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rentals - Rentals retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Rentals))
	handlers.RespondJSON(w, http.StatusOK, result)
}
