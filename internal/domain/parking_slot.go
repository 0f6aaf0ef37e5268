package domain

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// SlotState состояние парковочного места
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotOccupied  SlotState = "occupied"
)

// ParkingSlot парковочное место
// Поля занятости хранятся вместе в Occupancy: либо заполнены все, либо ни одного
type ParkingSlot struct {
	ID         string
	SlotNumber int
	Occupancy  *Occupancy
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Occupancy данные о припаркованном автомобиле
type Occupancy struct {
	VehiclePlate string
	VehicleType  string
	EntryTime    types.ClockTime // время въезда в том виде, в котором его ввел оператор
	EnteredAt    time.Time       // абсолютный момент въезда, фиксируется при регистрации
	ImageURL     *string
	OwnerID      string
}

// Occupied возвращает true, если место занято
func (s *ParkingSlot) Occupied() bool {
	return s.Occupancy != nil
}

// State возвращает состояние места
func (s *ParkingSlot) State() SlotState {
	if s.Occupied() {
		return SlotOccupied
	}
	return SlotAvailable
}

// IsOwnedBy возвращает true, если место занято автомобилем пользователя userID
func (s *ParkingSlot) IsOwnedBy(userID string) bool {
	return s.Occupancy != nil && s.Occupancy.OwnerID == userID
}

// Release очищает все поля занятости
func (s *ParkingSlot) Release() {
	s.Occupancy = nil
}

// EntryInstant момент въезда: абсолютное время, если оно сохранено, иначе разбор строки относительно now
func (o *Occupancy) EntryInstant(now time.Time) (time.Time, error) {
	if !o.EnteredAt.IsZero() {
		return o.EnteredAt, nil
	}
	return o.EntryTime.On(now)
}
