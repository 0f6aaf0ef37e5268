package add_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidSlotNumber  = "номер места должен быть положительным числом"
	msgSlotNumberTaken    = "место с таким номером уже существует"
	msgForbidden          = "доступ запрещен"
	msgAccountNotFound    = "профиль пользователя не найден"
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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), &models.AddSlotRequest{
		UserID:     userID,
		SlotNumber: req.SlotNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlotNumber)
		case errors.Is(err, slots.ErrSlotNumberTaken):
			h.logger.Warn("POST /slots - Slot number taken: slot_number=%d", req.SlotNumber)
			handlers.RespondConflict(w, msgSlotNumberTaken)
		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("POST /slots - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, slots.ErrAccountNotFound):
			handlers.RespondForbidden(w, msgAccountNotFound)
		default:
			h.logger.Error("POST /slots - Failed to add slot: slot_number=%d, error=%v", req.SlotNumber, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot added: id=%s, slot_number=%d", result.ID, result.SlotNumber)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
