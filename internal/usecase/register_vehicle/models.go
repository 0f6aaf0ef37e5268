package register_vehicle

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Результаты регистрации для метрик
const (
	resultSuccess  = "success"
	resultOccupied = "occupied"
	resultNotFound = "not_found"
	resultInvalid  = "invalid"
	resultBackend  = "backend_error"
)

// Request модель запроса на регистрацию автомобиля
type Request struct {
	UserID       string          // ID владельца автомобиля
	SlotNumber   int             // Номер места
	VehiclePlate string          // Госномер
	VehicleType  string          // Тип автомобиля ("Sedan", "SUV", ...)
	EntryTime    types.ClockTime // Время въезда "9:30 AM"; пусто - текущее время
	Image        []byte          // Фотография номера (опционально)
}

// Response модель ответа с занятым местом
type Response struct {
	SlotID       string
	SlotNumber   int
	VehiclePlate string
	VehicleType  string
	EntryTime    types.ClockTime
	EnteredAt    time.Time
	ImageURL     *string
	OwnerID      string
	UpdatedAt    time.Time
}
