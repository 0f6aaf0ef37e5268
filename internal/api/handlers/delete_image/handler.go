package delete_image

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/images"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidName     = "некорректное имя фотографии"
	msgNotFound        = "фотография не найдена"
	msgForbidden       = "удалять фотографии может только администратор"
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

// Handle DELETE /api/v1/images/{name}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	name := mux.Vars(r)["name"]

	if err := h.service.Delete(r.Context(), userID, name); err != nil {
		switch {
		case errors.Is(err, images.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidName)
		case errors.Is(err, images.ErrImageNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, images.ErrAccessDenied):
			h.logger.Warn("DELETE /images/%s - Access denied: user_id=%s", name, userID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, images.ErrAccountNotFound):
			handlers.RespondForbidden(w, msgAccountNotFound)
		default:
			h.logger.Error("DELETE /images/%s - Failed to delete image: error=%v", name, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("DELETE /images/%s - Image deleted: user_id=%s", name, userID)
	w.WriteHeader(http.StatusNoContent)
}
