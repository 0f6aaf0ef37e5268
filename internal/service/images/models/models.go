package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ImageResponse фотография из журнала
type ImageResponse struct {
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	LicensePlate string    `json:"licensePlate,omitempty"`
	VehicleType  string    `json:"vehicleType,omitempty"`
	SlotNumber   string    `json:"slotNumber,omitempty"`
	CapturedAt   time.Time `json:"capturedAt"`
}

// ImageListResponse журнал фотографий, новые первыми
type ImageListResponse struct {
	Images []ImageResponse `json:"images"`
}

// DeleteAllResponse результат очистки журнала
type DeleteAllResponse struct {
	Deleted int `json:"deleted"`
}

// FromDomainImages конвертирует список фотографий
func FromDomainImages(images []domain.StoredImage) *ImageListResponse {
	resp := &ImageListResponse{Images: make([]ImageResponse, 0, len(images))}
	for _, img := range images {
		resp.Images = append(resp.Images, ImageResponse{
			Name:         img.Name,
			URL:          img.URL,
			LicensePlate: img.LicensePlate,
			VehicleType:  img.VehicleType,
			SlotNumber:   img.SlotNumber,
			CapturedAt:   img.CapturedAt,
		})
	}
	return resp
}
