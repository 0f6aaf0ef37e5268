package list_slots

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
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

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: error=%v", err)
		handlers.RespondServiceUnavailable(w)
		return
	}

	h.logger.Info("GET /slots - Listed slots: count=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
