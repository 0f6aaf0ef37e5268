package register_vehicle

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/imagestore"
)

// SlotRepository интерфейс репозитория парковочных мест
type SlotRepository interface {
	Occupy(ctx context.Context, slotNumber int, occ domain.Occupancy) (*domain.ParkingSlot, error)
}

// ImageStore интерфейс хранилища фотографий номеров
type ImageStore interface {
	UploadWithGracefulDegradation(ctx context.Context, data []byte, meta domain.ImageMetadata) (*imagestore.UploadResult, error)
	DeleteKey(ctx context.Context, key string) error
}

// MetricsRecorder интерфейс для доменных метрик
type MetricsRecorder interface {
	RecordRegistration(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
// Время возвращается в часовом поясе парковки
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
