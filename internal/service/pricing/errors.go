package pricing

import "errors"

var (
	// ErrAccessDenied возвращается, когда тариф меняет не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrAccountNotFound возвращается, когда профиль пользователя не найден
	ErrAccountNotFound = errors.New("account not found")

	// ErrSlotNotFound возвращается, когда место не найдено
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotNotOccupied возвращается при расчете платы для свободного места
	ErrSlotNotOccupied = errors.New("slot is not occupied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackendUnavailable возвращается, когда хранилище недоступно или вернуло ошибку
	ErrBackendUnavailable = errors.New("service: backend unavailable")
)
