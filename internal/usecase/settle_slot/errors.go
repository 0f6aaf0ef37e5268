package settle_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда место не найдено
	ErrSlotNotFound = errors.New("settle_slot: slot not found")

	// ErrSlotNotOccupied возвращается, когда место уже свободно
	ErrSlotNotOccupied = errors.New("settle_slot: slot is not occupied")

	// ErrAccountNotFound возвращается, когда профиль плательщика не найден
	ErrAccountNotFound = errors.New("settle_slot: account not found")

	// ErrAccessDenied возвращается, когда плательщик не владелец автомобиля и не администратор
	ErrAccessDenied = errors.New("settle_slot: access denied")

	// ErrInsufficientBalance возвращается, когда баланса не хватает на оплату
	ErrInsufficientBalance = errors.New("settle_slot: insufficient balance")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("settle_slot: invalid input data")

	// ErrBackendUnavailable возвращается, когда хранилище недоступно
	ErrBackendUnavailable = errors.New("settle_slot: backend unavailable")
)
