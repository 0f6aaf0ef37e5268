package images

import "errors"

var (
	// ErrImageNotFound возвращается, когда фотография не найдена
	ErrImageNotFound = errors.New("image not found")

	// ErrAccessDenied возвращается, когда журнал запрашивает не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrAccountNotFound возвращается, когда профиль пользователя не найден
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidInput возвращается при некорректном имени фотографии
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackendUnavailable возвращается, когда хранилище недоступно или вернуло ошибку
	ErrBackendUnavailable = errors.New("service: backend unavailable")
)
