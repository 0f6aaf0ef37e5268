package deposit

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/accounts"
	"github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidAmount      = "сумма пополнения должна быть положительной и не превышать лимит"
	msgNotFound           = "профиль пользователя не найден"
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

// Handle POST /api/v1/users/me/deposit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req DepositRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/me/deposit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Deposit(r.Context(), &models.DepositRequest{UserID: userID, Amount: req.Amount})
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidAmount), errors.Is(err, accounts.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAmount)
		case errors.Is(err, accounts.ErrAccountNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("POST /users/me/deposit - Failed to deposit: user_id=%s, error=%v", userID, err)
			handlers.RespondServiceUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /users/me/deposit - Deposited: user_id=%s, amount=%s, balance=%s",
		userID, result.Deposited, result.Balance)
	handlers.RespondJSON(w, http.StatusOK, result)
}
