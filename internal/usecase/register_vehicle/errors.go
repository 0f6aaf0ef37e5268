package register_vehicle

import "errors"

var (
	// ErrSlotNotFound возвращается, когда места с таким номером нет
	ErrSlotNotFound = errors.New("register_vehicle: slot not found")

	// ErrSlotAlreadyOccupied возвращается, когда место уже занято
	ErrSlotAlreadyOccupied = errors.New("register_vehicle: slot already occupied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_vehicle: invalid input data")

	// ErrBackendUnavailable возвращается, когда хранилище мест недоступно
	ErrBackendUnavailable = errors.New("register_vehicle: backend unavailable")
)
