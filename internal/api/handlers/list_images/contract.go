package list_images

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/images/models"
)

type ImageService interface {
	List(ctx context.Context, userID string) (*models.ImageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
