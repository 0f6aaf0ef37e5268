package reset_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "освобождать все места может только администратор"
	msgAccountNotFound = "профиль пользователя не найден"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Reset(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("POST /slots/reset - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, slots.ErrAccountNotFound):
			handlers.RespondForbidden(w, msgAccountNotFound)
		default:
			h.logger.Error("POST /slots/reset - Failed to reset slots: error=%v", err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /slots/reset - Slots released: count=%d, user_id=%s", result.Released, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
