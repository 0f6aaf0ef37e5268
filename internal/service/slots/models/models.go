package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// AddSlotRequest запрос на добавление места
type AddSlotRequest struct {
	UserID     string `json:"userId"`
	SlotNumber int    `json:"slotNumber"`
}

// Response модели

// SlotResponse ответ с данными места
type SlotResponse struct {
	ID           string     `json:"id"`
	SlotNumber   int        `json:"slotNumber"`
	State        string     `json:"state"` // available | occupied
	Occupied     bool       `json:"occupied"`
	VehiclePlate *string    `json:"vehiclePlate,omitempty"`
	VehicleType  *string    `json:"vehicleType,omitempty"`
	EntryTime    *string    `json:"entryTime,omitempty"` // "9:30 AM"
	EnteredAt    *time.Time `json:"enteredAt,omitempty"`
	ImageURL     *string    `json:"imageUrl,omitempty"`
	OwnerID      *string    `json:"ownerId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// SlotListResponse ответ со списком мест
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// ResetResponse результат освобождения всех мест
type ResetResponse struct {
	Released int64 `json:"released"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.ParkingSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	resp := &SlotResponse{
		ID:         s.ID,
		SlotNumber: s.SlotNumber,
		State:      string(s.State()),
		Occupied:   s.Occupied(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}

	if occ := s.Occupancy; occ != nil {
		entry := occ.EntryTime.String()
		resp.VehiclePlate = &occ.VehiclePlate
		resp.VehicleType = &occ.VehicleType
		resp.EntryTime = &entry
		resp.ImageURL = occ.ImageURL
		resp.OwnerID = &occ.OwnerID
		if !occ.EnteredAt.IsZero() {
			enteredAt := occ.EnteredAt
			resp.EnteredAt = &enteredAt
		}
	}

	return resp
}

// FromDomainSlots конвертирует список мест
func FromDomainSlots(slots []*domain.ParkingSlot) *SlotListResponse {
	resp := &SlotListResponse{Slots: make([]SlotResponse, 0, len(slots))}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, *FromDomainSlot(s))
	}
	return resp
}
