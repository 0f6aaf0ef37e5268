package delete_all_images

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/images/models"
)

type ImageService interface {
	DeleteAll(ctx context.Context, userID string) (*models.DeleteAllResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
