package settle_slot

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	settleSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/settle_slot"
)

const (
	msgInvalidSlotID       = "некорректный ID места"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgSlotNotFound        = "место не найдено"
	msgSlotNotOccupied     = "место уже свободно"
	msgAccountNotFound     = "профиль пользователя не найден"
	msgForbidden           = "оплатить стоянку может только владелец автомобиля"
	msgInsufficientBalance = "недостаточно средств на балансе"
)

type Handler struct {
	useCase SettleSlotUseCase
	logger  Logger
}

func NewHandler(useCase SettleSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/settle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := strings.TrimSpace(mux.Vars(r)["slotId"])
	if slotID == "" {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &settleSlot.Request{SlotID: slotID, PayerID: userID})
	if err != nil {
		switch {
		case errors.Is(err, settleSlot.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlotID)
		case errors.Is(err, settleSlot.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, settleSlot.ErrSlotNotOccupied):
			handlers.RespondConflict(w, msgSlotNotOccupied)
		case errors.Is(err, settleSlot.ErrAccountNotFound):
			handlers.RespondNotFound(w, msgAccountNotFound)
		case errors.Is(err, settleSlot.ErrAccessDenied):
			h.logger.Warn("POST /slots/%s/settle - Access denied: user_id=%s", slotID, userID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, settleSlot.ErrInsufficientBalance):
			h.logger.Warn("POST /slots/%s/settle - Insufficient balance: user_id=%s", slotID, userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientBalance)
		default:
			h.logger.Error("POST /slots/%s/settle - Failed to settle slot: user_id=%s, error=%v", slotID, userID, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /slots/%s/settle - Slot settled: plate=%s, fee=%s, charged=%t",
		slotID, result.VehiclePlate, result.FeeDisplay, result.Charged)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
