package accounts

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// AccountRepository интерфейс репозитория профилей
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Credit(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error)
	SetBalance(ctx context.Context, id string, balance decimal.Decimal) error
}

// PricingProvider источник действующего тарифа (валюта баланса)
type PricingProvider interface {
	Current(ctx context.Context) (*domain.PricingConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
