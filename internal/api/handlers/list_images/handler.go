package list_images

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/images"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "журнал фотографий доступен только администратору"
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

// Handle GET /api/v1/images
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, images.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, images.ErrAccountNotFound):
			handlers.RespondForbidden(w, msgAccountNotFound)
		default:
			h.logger.Error("GET /images - Failed to list images: error=%v", err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
