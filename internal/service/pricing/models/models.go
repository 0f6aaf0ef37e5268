package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/fee"
)

// Request модели

// UpdatePricingRequest запрос на изменение тарифа
type UpdatePricingRequest struct {
	UserID        string          `json:"userId"`
	HourlyRate    decimal.Decimal `json:"hourlyRate"`
	MinimumCharge decimal.Decimal `json:"minimumCharge"`
	Currency      *string         `json:"currency,omitempty"` // nil - оставить текущую
}

// Response модели

// PricingResponse ответ с текущим тарифом
type PricingResponse struct {
	HourlyRate           string    `json:"hourlyRate"`
	MinimumCharge        string    `json:"minimumCharge"`
	Currency             string    `json:"currency"`
	HourlyRateDisplay    string    `json:"hourlyRateDisplay"`    // "$5.00"
	MinimumChargeDisplay string    `json:"minimumChargeDisplay"` // "$2.00"
	UpdatedAt            time.Time `json:"updatedAt"`
	UpdatedBy            string    `json:"updatedBy"`
}

// QuoteResponse текущая плата за занятое место без освобождения
type QuoteResponse struct {
	SlotID       string    `json:"slotId"`
	SlotNumber   int       `json:"slotNumber"`
	VehiclePlate string    `json:"vehiclePlate"`
	EntryTime    string    `json:"entryTime"`
	Duration     string    `json:"duration"` // "2h 30m"
	Fee          string    `json:"fee"`
	FeeDisplay   string    `json:"feeDisplay"`
	Currency     string    `json:"currency"`
	QuotedAt     time.Time `json:"quotedAt"`
}

// Методы конвертации

// FromDomainPricing конвертирует domain модель в DTO
func FromDomainPricing(p *domain.PricingConfig) *PricingResponse {
	if p == nil {
		return nil
	}

	scale := fee.Scale(p.Currency)

	return &PricingResponse{
		HourlyRate:           p.HourlyRate.StringFixed(scale),
		MinimumCharge:        p.MinimumCharge.StringFixed(scale),
		Currency:             p.Currency,
		HourlyRateDisplay:    fee.FormatCurrency(p.HourlyRate, p.Currency),
		MinimumChargeDisplay: fee.FormatCurrency(p.MinimumCharge, p.Currency),
		UpdatedAt:            p.UpdatedAt,
		UpdatedBy:            p.UpdatedBy,
	}
}
