package slots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotRepository интерфейс репозитория парковочных мест
type SlotRepository interface {
	List(ctx context.Context) ([]*domain.ParkingSlot, error)
	ListAvailable(ctx context.Context) ([]*domain.ParkingSlot, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, slot *domain.ParkingSlot) (*domain.ParkingSlot, error)
	ReleaseAll(ctx context.Context) (int64, error)
}

// AccountRepository интерфейс репозитория профилей (проверка роли)
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
