package slots

import "errors"

var (
	// ErrSlotNumberTaken возвращается при добавлении места с существующим номером
	ErrSlotNumberTaken = errors.New("slot number already taken")

	// ErrAccessDenied возвращается, когда административную операцию вызывает не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrAccountNotFound возвращается, когда профиль пользователя не найден
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackendUnavailable возвращается, когда хранилище недоступно или вернуло ошибку
	ErrBackendUnavailable = errors.New("service: backend unavailable")
)
