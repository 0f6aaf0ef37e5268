package accounts

import "errors"

var (
	// ErrAccountNotFound возвращается, когда профиль пользователя не найден
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAmount возвращается, когда сумма пополнения или новый баланс вне допустимого диапазона
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAccessDenied возвращается, когда баланс меняет не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackendUnavailable возвращается, когда хранилище недоступно или вернуло ошибку
	ErrBackendUnavailable = errors.New("service: backend unavailable")
)
