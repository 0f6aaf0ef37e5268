package quote_slot

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing"
)

const (
	msgInvalidSlotID   = "некорректный ID места"
	msgSlotNotFound    = "место не найдено"
	msgSlotNotOccupied = "место свободно"
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

// Handle GET /api/v1/slots/{slotId}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := strings.TrimSpace(mux.Vars(r)["slotId"])
	if slotID == "" {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.service.Quote(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlotID)
		case errors.Is(err, pricing.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, pricing.ErrSlotNotOccupied):
			handlers.RespondConflict(w, msgSlotNotOccupied)
		default:
			h.logger.Error("GET /slots/%s/quote - Failed to quote: error=%v", slotID, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
