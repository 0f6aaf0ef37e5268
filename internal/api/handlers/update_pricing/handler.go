package update_pricing

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidPricing     = "ставка и минимальная плата должны быть положительными, валюта - код ISO 4217"
	msgForbidden          = "менять тариф может только администратор"
	msgAccountNotFound    = "профиль пользователя не найден"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdatePricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /pricing - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPricing)
		case errors.Is(err, pricing.ErrAccessDenied):
			h.logger.Warn("PUT /pricing - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, pricing.ErrAccountNotFound):
			handlers.RespondForbidden(w, msgAccountNotFound)
		default:
			h.logger.Error("PUT /pricing - Failed to update pricing: user_id=%s, error=%v", userID, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("PUT /pricing - Pricing updated: rate=%s, minimum=%s, user_id=%s",
		result.HourlyRateDisplay, result.MinimumChargeDisplay, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
