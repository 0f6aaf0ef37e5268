package domain

import "time"

// Значения по умолчанию
const (
	DefaultInitialSlots  = 6
	DefaultCurrency      = "USD"
	DefaultHourlyRate    = "5.00"
	DefaultMinimumCharge = "2.00"
	SystemActor          = "system"
)

// Бизнес-ограничения
const (
	MaxDepositAmount     = "1000"
	MaxPlateLength       = 16
	MaxVehicleTypeLength = 32
	MaxImageSizeBytes    = 10 << 20

	// EntryClockSkew допустимое опережение введенного времени въезда относительно часов сервера
	EntryClockSkew = 15 * time.Minute
)
