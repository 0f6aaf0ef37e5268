package pricing

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// PricingRepository интерфейс репозитория тарифа
type PricingRepository interface {
	Get(ctx context.Context, id string) (*domain.PricingConfig, error)
	CreateIfAbsent(ctx context.Context, cfg domain.PricingConfig) error
	Update(ctx context.Context, cfg domain.PricingConfig) error
}

// AccountRepository интерфейс репозитория профилей (проверка роли)
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

// SlotRepository интерфейс репозитория мест (расчет текущей платы)
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ParkingSlot, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
