package settle_slot

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotRepository интерфейс репозитория парковочных мест
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ParkingSlot, error)
	Release(ctx context.Context, id string) error
}

// AccountRepository интерфейс репозитория профилей
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Debit(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error)
}

// PricingProvider источник действующего тарифа
type PricingProvider interface {
	Current(ctx context.Context) (*domain.PricingConfig, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для доменных метрик
type MetricsRecorder interface {
	RecordSettlement(result string, fee float64, currency string)
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
