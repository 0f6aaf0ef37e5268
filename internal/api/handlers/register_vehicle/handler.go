package register_vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	registerVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/register_vehicle"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotNumber  = "некорректный номер места"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные автомобиля: укажите госномер, тип и время въезда в формате H:MM AM|PM"
	msgSlotNotFound       = "место не найдено"
	msgSlotOccupied       = "место уже занято"
)

type Handler struct {
	useCase RegisterVehicleUseCase
	logger  Logger
}

func NewHandler(useCase RegisterVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotNumber}/vehicle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotNumber, err := strconv.Atoi(mux.Vars(r)["slotNumber"])
	if err != nil || slotNumber <= 0 {
		h.logger.Warn("POST /slots/{slotNumber}/vehicle - Invalid slot number: %s", mux.Vars(r)["slotNumber"])
		handlers.RespondBadRequest(w, msgInvalidSlotNumber)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RegisterVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/%d/vehicle - Invalid request body: %v", slotNumber, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, slotNumber))
	if err != nil {
		switch {
		case errors.Is(err, registerVehicle.ErrInvalidInput):
			h.logger.Warn("POST /slots/%d/vehicle - Invalid input: %v", slotNumber, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, registerVehicle.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, registerVehicle.ErrSlotAlreadyOccupied):
			h.logger.Warn("POST /slots/%d/vehicle - Slot already occupied: user_id=%s", slotNumber, userID)
			handlers.RespondConflict(w, msgSlotOccupied)
		default:
			h.logger.Error("POST /slots/%d/vehicle - Failed to register vehicle: user_id=%s, error=%v", slotNumber, userID, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /slots/%d/vehicle - Vehicle registered: slot_id=%s, plate=%s, user_id=%s",
		slotNumber, result.SlotID, result.VehiclePlate, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
