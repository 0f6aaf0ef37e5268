package domain

import "time"

// ImageMetadata метаданные фотографии номера, которые сохраняются вместе с объектом
type ImageMetadata struct {
	LicensePlate string
	VehicleType  string
	SlotNumber   int
}

// StoredImage фотография из журнала
type StoredImage struct {
	Name         string
	URL          string
	LicensePlate string
	VehicleType  string
	SlotNumber   string
	CapturedAt   time.Time
}
