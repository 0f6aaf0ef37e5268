package delete_all_images

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/images"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "очищать журнал фотографий может только администратор"
	msgAccountNotFound = "профиль пользователя не найден"
)

type Handler struct {
	service ImageService
	logger  Logger
}

func NewHandler(service ImageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/images
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.DeleteAll(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, images.ErrAccessDenied):
			h.logger.Warn("DELETE /images - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, images.ErrAccountNotFound):
			handlers.RespondForbidden(w, msgAccountNotFound)
		default:
			h.logger.Error("DELETE /images - Failed to delete images: error=%v", err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("DELETE /images - Images deleted: count=%d, user_id=%s", result.Deleted, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
