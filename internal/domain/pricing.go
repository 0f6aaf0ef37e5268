package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPricingID идентификатор единственной записи тарифа
const DefaultPricingID = "default"

// PricingConfig тариф парковки
type PricingConfig struct {
	ID            string
	HourlyRate    decimal.Decimal // стоимость часа
	MinimumCharge decimal.Decimal // минимальная плата за любую сессию
	Currency      string          // ISO 4217
	UpdatedAt     time.Time
	UpdatedBy     string
}

// IsValid проверяет, что ставка и минимальная плата положительны
func (p *PricingConfig) IsValid() bool {
	return p.HourlyRate.IsPositive() && p.MinimumCharge.IsPositive() && p.Currency != ""
}
