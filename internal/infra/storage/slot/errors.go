package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда место не найдено
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotOccupied возвращается, когда условное занятие не сработало: место уже занято
	ErrSlotOccupied = errors.New("slot.repository: slot already occupied")

	// ErrSlotNotOccupied возвращается при попытке освободить свободное место
	ErrSlotNotOccupied = errors.New("slot.repository: slot is not occupied")

	// ErrDuplicateSlotNumber возвращается при попытке создать место с существующим номером
	ErrDuplicateSlotNumber = errors.New("slot.repository: duplicate slot number")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
