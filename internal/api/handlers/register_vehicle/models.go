package register_vehicle

import (
	"time"

	registerVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/register_vehicle"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// RegisterVehicleRequest HTTP модель запроса на регистрацию автомобиля
type RegisterVehicleRequest struct {
	VehiclePlate string `json:"vehiclePlate"`
	VehicleType  string `json:"vehicleType"`
	EntryTime    string `json:"entryTime,omitempty"` // "9:30 AM"; пусто - текущее время
	Image        []byte `json:"image,omitempty"`     // JPEG в base64
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterVehicleRequest) ToUseCaseRequest(userID string, slotNumber int) *registerVehicle.Request {
	return &registerVehicle.Request{
		UserID:       userID,
		SlotNumber:   slotNumber,
		VehiclePlate: r.VehiclePlate,
		VehicleType:  r.VehicleType,
		EntryTime:    types.ClockTime(r.EntryTime),
		Image:        r.Image,
	}
}

// RegisterVehicleResponse HTTP модель ответа
type RegisterVehicleResponse struct {
	SlotID       string    `json:"slotId"`
	SlotNumber   int       `json:"slotNumber"`
	VehiclePlate string    `json:"vehiclePlate"`
	VehicleType  string    `json:"vehicleType"`
	EntryTime    string    `json:"entryTime"`
	EnteredAt    time.Time `json:"enteredAt"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	OwnerID      string    `json:"ownerId"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *registerVehicle.Response) *RegisterVehicleResponse {
	return &RegisterVehicleResponse{
		SlotID:       resp.SlotID,
		SlotNumber:   resp.SlotNumber,
		VehiclePlate: resp.VehiclePlate,
		VehicleType:  resp.VehicleType,
		EntryTime:    resp.EntryTime.String(),
		EnteredAt:    resp.EnteredAt,
		ImageURL:     resp.ImageURL,
		OwnerID:      resp.OwnerID,
		UpdatedAt:    resp.UpdatedAt,
	}
}
