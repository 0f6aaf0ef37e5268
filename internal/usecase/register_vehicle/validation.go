package register_vehicle

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// normalizeRequest приводит госномер к верхнему регистру и убирает пробелы по краям
func normalizeRequest(req *Request) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.VehiclePlate = strings.ToUpper(strings.TrimSpace(req.VehiclePlate))
	req.VehicleType = strings.TrimSpace(req.VehicleType)
	req.EntryTime = types.ClockTime(strings.TrimSpace(req.EntryTime.String()))
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.SlotNumber <= 0 {
		return fmt.Errorf("%w: slotNumber must be positive", ErrInvalidInput)
	}

	if req.VehiclePlate == "" {
		return fmt.Errorf("%w: vehiclePlate is required", ErrInvalidInput)
	}
	if len(req.VehiclePlate) > domain.MaxPlateLength {
		return fmt.Errorf("%w: vehiclePlate is longer than %d characters", ErrInvalidInput, domain.MaxPlateLength)
	}
	// Госномер попадает в имя объекта фотографии
	if strings.ContainsAny(req.VehiclePlate, "/\\") {
		return fmt.Errorf("%w: vehiclePlate contains forbidden characters", ErrInvalidInput)
	}

	if req.VehicleType == "" {
		return fmt.Errorf("%w: vehicleType is required", ErrInvalidInput)
	}
	if len(req.VehicleType) > domain.MaxVehicleTypeLength {
		return fmt.Errorf("%w: vehicleType is longer than %d characters", ErrInvalidInput, domain.MaxVehicleTypeLength)
	}

	if !req.EntryTime.IsZero() {
		if err := req.EntryTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid entryTime: %v", ErrInvalidInput, err)
		}
	}

	if len(req.Image) > domain.MaxImageSizeBytes {
		return fmt.Errorf("%w: image is larger than %d bytes", ErrInvalidInput, domain.MaxImageSizeBytes)
	}

	return nil
}

// resolveEntry возвращает строку времени въезда и абсолютный момент въезда.
// Пустое время означает "сейчас". Время, опережающее now больше чем на EntryClockSkew,
// относится к предыдущему дню (въезд до полуночи); небольшое опережение обрезается до now.
func resolveEntry(entry types.ClockTime, now time.Time) (types.ClockTime, time.Time, error) {
	if entry.IsZero() {
		return types.NewClockTime(now), now, nil
	}

	enteredAt, err := entry.On(now)
	if err != nil {
		return "", time.Time{}, err
	}

	if enteredAt.After(now) {
		if enteredAt.Sub(now) > domain.EntryClockSkew {
			enteredAt = enteredAt.AddDate(0, 0, -1)
		} else {
			enteredAt = now
		}
	}

	return entry, enteredAt, nil
}
