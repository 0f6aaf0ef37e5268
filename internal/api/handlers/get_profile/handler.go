package get_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/accounts"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "профиль пользователя не найден"
)

type Handler struct {
	service AccountService
	logger  Logger
}

func NewHandler(service AccountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /users/me - Failed to get profile: user_id=%s, error=%v", userID, err)
		handlers.RespondServiceUnavailable(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
