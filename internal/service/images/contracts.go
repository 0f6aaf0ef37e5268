package images

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ImageStore интерфейс хранилища фотографий
type ImageStore interface {
	List(ctx context.Context) ([]domain.StoredImage, error)
	Delete(ctx context.Context, name string) error
	DeleteAll(ctx context.Context) (int, error)
}

// AccountRepository интерфейс репозитория профилей (проверка роли)
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
